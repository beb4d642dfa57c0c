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

// DedupFilter decides whether a decoded payload is new. A payload is
// new only if it differs from the most recently accepted payload and
// has never been accepted during this run. The first check stops a
// code held steadily in frame from being re-announced; the second
// stops a code from being re-announced when it reappears after the
// frame briefly held something else.
//
// The history grows for the life of the process. Scan sessions are
// short, so no eviction is done.
type DedupFilter struct {
	lastSeen string
	haveLast bool
	seen     map[string]bool
}

func NewDedupFilter() *DedupFilter {
	return &DedupFilter{seen: make(map[string]bool)}
}

// Accept records the payload if it is new and reports whether it was.
// Payloads that are not new leave the filter unchanged.
func (filter *DedupFilter) Accept(payload string) bool {
	if filter.haveLast && payload == filter.lastSeen {
		return false
	}
	if filter.seen[payload] {
		return false
	}

	filter.seen[payload] = true
	filter.lastSeen = payload
	filter.haveLast = true
	return true
}

// LastSeen returns the most recently accepted payload, if any.
func (filter *DedupFilter) LastSeen() (string, bool) {
	return filter.lastSeen, filter.haveLast
}
