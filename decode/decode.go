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

package decode

import (
	"image"

	"gocv.io/x/gocv"
)

// Region is one QR code found in a frame. The payload is the raw
// decoded bytes; callers decide whether it is usable text.
type Region struct {
	Payload []byte
	Bounds  image.Rectangle
}

// Decoder finds QR codes in a frame, returning one Region per code
// found, possibly none.
type Decoder interface {
	Decode(frame gocv.Mat) []Region
}

// QRDetector decodes QR codes using OpenCV's built-in detector.
type QRDetector struct {
	detector gocv.QRCodeDetector
}

func NewQRDetector() *QRDetector {
	return &QRDetector{detector: gocv.NewQRCodeDetector()}
}

func (d *QRDetector) Decode(frame gocv.Mat) []Region {
	decoded := []string{}
	points := gocv.NewMat()
	defer points.Close()
	codes := []gocv.Mat{}

	found := d.detector.DetectAndDecodeMulti(frame, &decoded, &points, &codes)
	for i := range codes {
		codes[i].Close()
	}
	if !found {
		return nil
	}

	regions := make([]Region, 0, len(decoded))
	for i, text := range decoded {
		// OpenCV reports a detected-but-undecodable code as an empty
		// string; that is not a decoded region.
		if text == "" {
			continue
		}
		regions = append(regions, Region{
			Payload: []byte(text),
			Bounds:  boundsAt(points, i),
		})
	}
	return regions
}

func (d *QRDetector) Close() error {
	return d.detector.Close()
}

// boundsAt converts the detector's corner points for code i into an
// axis-aligned bounding rectangle.
func boundsAt(points gocv.Mat, i int) image.Rectangle {
	if points.Empty() || i >= points.Rows() {
		return image.Rectangle{}
	}

	var bounds image.Rectangle
	for j := 0; j < points.Cols(); j++ {
		vec := points.GetVecfAt(i, j)
		if len(vec) < 2 {
			continue
		}
		pt := image.Pt(int(vec[0]), int(vec[1]))
		corner := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}
		if bounds.Empty() {
			bounds = corner
		} else {
			bounds = bounds.Union(corner)
		}
	}
	return bounds
}
