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
	"errors"
	"image"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"gocv.io/x/gocv"

	"github.com/Zhb-source/QRcode/decode"
	"github.com/Zhb-source/QRcode/loglimiter"
	"github.com/Zhb-source/QRcode/render"
	"github.com/Zhb-source/QRcode/scanstore"
	"github.com/Zhb-source/QRcode/snapshot"
	"github.com/Zhb-source/QRcode/throttle"
)

const minLogInterval = time.Minute

// ErrQuit is returned by Process when the operator asks to stop
// through the GUI.
var ErrQuit = errors.New("quit requested")

// FrameSource supplies frames to the processor.
type FrameSource interface {
	NextFrame(*gocv.Mat) error
}

// Renderer draws the GUI and surfaces operator key presses. It is nil
// when the scanner runs headless.
type Renderer interface {
	DrawRegion(frame *gocv.Mat, bounds image.Rectangle, payload string)
	DrawStatus(frame *gocv.Mat, fps int, saveDir string)
	Show(frame *gocv.Mat) render.Action
}

// Config carries the settings the processor needs per tick.
type Config struct {
	SkipFrames   int
	OpenInterval time.Duration
	BaseDir      string
	ShowGUI      bool
}

// Processor runs the per-tick scan pipeline: throttle, decode, dedup,
// persist, rate-limited browser launch, optional rendering. The host
// drives it from a single goroutine; ticks never overlap. The only
// state shared with other goroutines is the recent-frame copy kept for
// on-demand snapshots, which has its own lock.
type Processor struct {
	source   FrameSource
	decoder  decode.Decoder
	store    *scanstore.Store
	renderer Renderer
	conf     Config

	skipper *throttle.FrameSkipper
	fps     *throttle.FPSEstimator
	filter  *DedupFilter
	limiter *OpenLimiter

	nowFunc func() time.Time
	log     *loglimiter.LogLimiter
	frame   gocv.Mat

	mu         sync.Mutex
	recent     gocv.Mat
	haveRecent bool
}

func New(
	source FrameSource,
	decoder decode.Decoder,
	store *scanstore.Store,
	opener URLOpener,
	renderer Renderer,
	conf Config,
) *Processor {
	return &Processor{
		source:   source,
		decoder:  decoder,
		store:    store,
		renderer: renderer,
		conf:     conf,
		skipper:  throttle.NewFrameSkipper(conf.SkipFrames),
		fps:      throttle.NewFPSEstimator(),
		filter:   NewDedupFilter(),
		limiter:  NewOpenLimiter(opener, conf.OpenInterval),
		nowFunc:  time.Now,
		log:      loglimiter.New(minLogInterval),
		frame:    gocv.NewMat(),
		recent:   gocv.NewMat(),
	}
}

// Process runs one tick. It returns ErrQuit when the operator requests
// shutdown; every other problem is handled within the tick.
func (p *Processor) Process() error {
	if !p.skipper.Next() {
		return nil
	}

	if err := p.source.NextFrame(&p.frame); err != nil {
		p.log.Printf("failed to read camera frame: %v", err)
		return nil
	}

	now := p.nowFunc()
	fps := p.fps.RecordFrame(now)

	for _, region := range p.decoder.Decode(p.frame) {
		// A detected code with no payload was never decoded.
		if len(region.Payload) == 0 {
			continue
		}
		if !utf8.Valid(region.Payload) {
			p.log.Print("QR payload is not valid UTF-8, skipped")
			continue
		}
		payload := string(region.Payload)
		p.handlePayload(payload, now)
		if p.renderer != nil {
			p.renderer.DrawRegion(&p.frame, region.Bounds, payload)
		}
	}

	p.keepRecent()

	if p.renderer == nil {
		return nil
	}
	p.renderer.DrawStatus(&p.frame, fps, p.conf.BaseDir)
	switch p.renderer.Show(&p.frame) {
	case render.ActionQuit:
		return ErrQuit
	case render.ActionSnapshot:
		p.saveSnapshot()
	case render.ActionDumpConfig:
		p.LogConfig()
	}
	return nil
}

func (p *Processor) handlePayload(payload string, now time.Time) {
	if !p.filter.Accept(payload) {
		return
	}
	log.Printf("decoded QR content: %s", payload)

	if err := p.store.Append(scanstore.Record{Time: now, Content: payload}); err != nil {
		// The payload stays in the dedup history anyway; keeping the
		// scan loop alive matters more than guaranteed persistence.
		log.Printf("failed to append scan history: %v", err)
	}

	if !IsURL(payload) {
		log.Print("non-URL content")
		return
	}
	if !p.limiter.TryOpen(payload) {
		log.Print("open requested too frequently, ignored")
	}
}

func (p *Processor) saveSnapshot() {
	path, err := snapshot.Save(p.frame, p.conf.BaseDir, p.nowFunc())
	if err != nil {
		log.Printf("failed to save snapshot: %v", err)
		return
	}
	log.Printf("snapshot saved to %s", path)
}

// LogConfig logs the scanner's effective configuration.
func (p *Processor) LogConfig() {
	log.Printf("current config: show GUI=%t, skip frames=%d, open interval=%s",
		p.conf.ShowGUI, p.conf.SkipFrames, p.conf.OpenInterval)
	log.Printf("save dir: %s", p.conf.BaseDir)
}

// keepRecent stores a copy of the current frame for on-demand
// snapshots requested from outside the tick loop.
func (p *Processor) keepRecent() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frame.CopyTo(&p.recent)
	p.haveRecent = true
}

// RecentFrame returns a copy of the most recently processed frame, or
// false when no frame has been processed yet. The caller owns the copy
// and must close it. Safe to call from any goroutine.
func (p *Processor) RecentFrame() (gocv.Mat, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.haveRecent {
		return gocv.Mat{}, false
	}
	return p.recent.Clone(), true
}

// Close releases the processor's frame buffers.
func (p *Processor) Close() {
	p.frame.Close()
	p.mu.Lock()
	p.recent.Close()
	p.mu.Unlock()
}
