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

package throttle

import "time"

// FPSEstimator reports frame throughput as a whole frames-per-second
// count refreshed once a second. Callers must tolerate the value being
// stale by up to a second; it is a display figure, not a smoothed rate.
type FPSEstimator struct {
	frames      int
	windowStart time.Time
	fps         int
}

func NewFPSEstimator() *FPSEstimator {
	return new(FPSEstimator)
}

// RecordFrame counts one processed frame at the given time and returns
// the current estimate. The estimate only changes when at least a
// second has passed since the current window started.
func (est *FPSEstimator) RecordFrame(now time.Time) int {
	if est.windowStart.IsZero() {
		est.windowStart = now
	}
	est.frames++
	if now.Sub(est.windowStart) >= time.Second {
		est.fps = est.frames
		est.frames = 0
		est.windowStart = now
	}
	return est.fps
}
