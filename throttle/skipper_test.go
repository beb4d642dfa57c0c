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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipZeroProcessesEveryTick(t *testing.T) {
	skipper := NewFrameSkipper(0)
	for i := 0; i < 10; i++ {
		assert.True(t, skipper.Next())
	}
}

func TestSkipTwoProcessesOneInThree(t *testing.T) {
	skipper := NewFrameSkipper(2)

	processed := 0
	for i := 1; i <= 30; i++ {
		if skipper.Next() {
			processed++
			// Only every third tick gets through.
			assert.Equal(t, 0, i%3)
		}
	}
	assert.Equal(t, 10, processed)
}

func TestFirstProcessedTickIsSkipPlusOne(t *testing.T) {
	skipper := NewFrameSkipper(4)

	assert.False(t, skipper.Next())
	assert.False(t, skipper.Next())
	assert.False(t, skipper.Next())
	assert.False(t, skipper.Next())
	assert.True(t, skipper.Next())
}

func TestNegativeSkipTreatedAsZero(t *testing.T) {
	skipper := NewFrameSkipper(-3)
	assert.True(t, skipper.Next())
	assert.True(t, skipper.Next())
}
