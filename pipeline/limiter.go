// QRcode - scan QR codes from a camera and record what they contain
//  Copyright (C) 2026, Zhb-source
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package pipeline

import (
	"log"
	"regexp"
	"time"
)

// URLOpener launches a URL in the operator's browser.
type URLOpener interface {
	Open(url string) error
}

var urlPattern = regexp.MustCompile(`^https?://`)

// IsURL reports whether a payload looks like a web address.
func IsURL(payload string) bool {
	return urlPattern.MatchString(payload)
}

// OpenLimiter rate limits browser launches so a burst of freshly
// scanned URL codes can't open a tab for each one. The launch itself
// runs on its own goroutine; a browser that is slow to start never
// stalls the scan loop, and launch failures are logged rather than
// reported to the tick that triggered them.
type OpenLimiter struct {
	opener   URLOpener
	interval time.Duration
	lastOpen time.Time
	nowFunc  func() time.Time
}

func NewOpenLimiter(opener URLOpener, interval time.Duration) *OpenLimiter {
	return &OpenLimiter{
		opener:   opener,
		interval: interval,
		nowFunc:  time.Now,
	}
}

// TryOpen dispatches the URL if strictly more than the configured
// interval has passed since the previous dispatch, and reports whether
// it did. The zero last-open time means the first dispatch always goes
// through.
func (limiter *OpenLimiter) TryOpen(url string) bool {
	now := limiter.nowFunc()
	if now.Sub(limiter.lastOpen) <= limiter.interval {
		return false
	}
	limiter.lastOpen = now

	go func() {
		if err := limiter.opener.Open(url); err != nil {
			log.Printf("failed to open browser for %s: %v", url, err)
			return
		}
		log.Printf("opened browser for %s", url)
	}()
	return true
}
