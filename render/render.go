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

package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Action is an operator request read from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionSnapshot
	ActionDumpConfig
)

// Longer payloads run off the edge of a 640 pixel frame.
const maxPayloadChars = 40

var (
	boxColour    = color.RGBA{R: 200, B: 200}
	textColour   = color.RGBA{R: 255}
	fpsColour    = color.RGBA{G: 255}
	statusColour = color.RGBA{R: 255, G: 255, B: 255}
)

// Window displays the annotated camera feed and surfaces key presses.
type Window struct {
	win *gocv.Window
}

func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// DrawRegion outlines one decoded QR code and prints its payload above
// the box, truncated so long payloads stay on screen.
func (w *Window) DrawRegion(frame *gocv.Mat, bounds image.Rectangle, payload string) {
	gocv.Rectangle(frame, bounds, boxColour, 2)

	text := payload
	if runes := []rune(text); len(runes) > maxPayloadChars {
		text = string(runes[:maxPayloadChars]) + "..."
	}
	origin := image.Pt(bounds.Min.X, bounds.Min.Y-10)
	gocv.PutText(frame, text, origin, gocv.FontHersheySimplex, 0.6, textColour, 2)
}

// DrawStatus prints the FPS estimate and the save directory in the
// top-left corner.
func (w *Window) DrawStatus(frame *gocv.Mat, fps int, saveDir string) {
	gocv.PutText(frame, fmt.Sprintf("FPS: %d", fps),
		image.Pt(10, 30), gocv.FontHersheySimplex, 0.7, fpsColour, 2)
	gocv.PutText(frame, fmt.Sprintf("save dir: %s", saveDir),
		image.Pt(10, 60), gocv.FontHersheySimplex, 0.5, statusColour, 1)
}

// Show displays the frame and polls for a single key press without
// blocking the tick.
func (w *Window) Show(frame *gocv.Mat) Action {
	w.win.IMShow(*frame)
	switch w.win.WaitKey(1) {
	case 'q':
		return ActionQuit
	case 's':
		return ActionSnapshot
	case 'd':
		return ActionDumpConfig
	}
	return ActionNone
}

func (w *Window) Close() error {
	return w.win.Close()
}
