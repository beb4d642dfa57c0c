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

package camera

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// QR decoding doesn't benefit from bigger frames, so the capture size
// is fixed rather than configurable.
const (
	frameWidth  = 640
	frameHeight = 480
)

// Camera reads frames from a local video capture device.
type Camera struct {
	capture *gocv.VideoCapture
}

// Open opens the capture device and fixes the frame size. An error
// here is fatal to startup; there is nothing to scan without a camera.
func Open(deviceIndex int) (*Camera, error) {
	capture, err := gocv.OpenVideoCapture(deviceIndex)
	if err != nil {
		return nil, fmt.Errorf("opening camera %d: %v", deviceIndex, err)
	}
	capture.Set(gocv.VideoCaptureFrameWidth, frameWidth)
	capture.Set(gocv.VideoCaptureFrameHeight, frameHeight)
	return &Camera{capture: capture}, nil
}

// NextFrame reads one frame into mat.
func (cam *Camera) NextFrame(mat *gocv.Mat) error {
	if ok := cam.capture.Read(mat); !ok {
		return errors.New("failed to read camera frame")
	}
	if mat.Empty() {
		return errors.New("camera returned an empty frame")
	}
	return nil
}

// Close releases the capture device.
func (cam *Camera) Close() error {
	return cam.capture.Close()
}
