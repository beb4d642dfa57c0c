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

// FrameSkipper reduces decode workload by letting through only one of
// every skip+1 ticks. The choice is made by a cyclic counter, not the
// wall clock, so the pattern is deterministic.
type FrameSkipper struct {
	skip    int
	counter int
}

func NewFrameSkipper(skip int) *FrameSkipper {
	if skip < 0 {
		skip = 0
	}
	return &FrameSkipper{skip: skip}
}

// Next advances the counter and reports whether the current tick
// should be processed. With skip set to 0 every tick is processed.
func (skipper *FrameSkipper) Next() bool {
	skipper.counter = (skipper.counter + 1) % (skipper.skip + 1)
	return skipper.counter == 0
}
