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

package main

import (
	"errors"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/coreos/go-systemd/daemon"

	"github.com/Zhb-source/QRcode/camera"
	"github.com/Zhb-source/QRcode/decode"
	"github.com/Zhb-source/QRcode/pipeline"
	"github.com/Zhb-source/QRcode/render"
	"github.com/Zhb-source/QRcode/scanstore"
)

const (
	deviceIndex  = 0
	tickInterval = 50 * time.Millisecond // 20 ticks/s before frame skipping

	historyFileName = "scan_history.csv"
	windowTitle     = "QRCode Scanner"

	ticksPerSdNotify = 100 // watchdog ping every ~5s
)

var version = "<not set>"

type Args struct {
	ConfigFile string `arg:"-c,--config" help:"path to configuration file"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	args.ConfigFile = "/etc/qrscanner.yaml"
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	log.Printf("running version: %s", version)
	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	baseDir, err := conf.ExpandedBaseDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return err
	}

	logConfig(conf, baseDir)

	log.Print("opening camera")
	cam, err := camera.Open(deviceIndex)
	if err != nil {
		return err
	}
	defer cam.Close()

	detector := decode.NewQRDetector()
	defer detector.Close()

	store := scanstore.New(filepath.Join(baseDir, historyFileName))

	var renderer pipeline.Renderer
	if conf.ShowGUI {
		window := render.NewWindow(windowTitle)
		defer window.Close()
		renderer = window
	}

	processor := pipeline.New(cam, detector, store, browserOpener{}, renderer, pipeline.Config{
		SkipFrames:   conf.SkipFrames,
		OpenInterval: time.Duration(conf.OpenInterval * float64(time.Second)),
		BaseDir:      baseDir,
		ShowGUI:      conf.ShowGUI,
	})
	defer processor.Close()

	log.Print("starting D-Bus service")
	if err := startService(processor, baseDir); err != nil {
		return err
	}

	log.Print("camera opened, press 'q' to quit, 's' for a snapshot")
	daemon.SdNotify(false, "READY=1")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	notifyTicks := 0
	for {
		select {
		case <-sigs:
			log.Print("interrupted, releasing camera")
			return nil
		case <-ticker.C:
			if err := processor.Process(); err != nil {
				if errors.Is(err, pipeline.ErrQuit) {
					log.Print("quit requested, releasing camera")
					return nil
				}
				return err
			}
			if notifyTicks++; notifyTicks >= ticksPerSdNotify {
				notifyTicks = 0
				daemon.SdNotify(false, "WATCHDOG=1")
			}
		}
	}
}

func logConfig(conf *Config, baseDir string) {
	log.Printf("save dir: %s", baseDir)
	log.Printf("show GUI: %t", conf.ShowGUI)
	log.Printf("skip frames: %d", conf.SkipFrames)
	log.Printf("open interval: %.1fs", conf.OpenInterval)
}

// browserOpener hands URLs to the desktop's default browser.
type browserOpener struct{}

func (browserOpener) Open(url string) error {
	return exec.Command("xdg-open", url).Start()
}
