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
	"time"

	"github.com/godbus/dbus"
	"github.com/godbus/dbus/introspect"
	"github.com/juju/ratelimit"

	"github.com/Zhb-source/QRcode/pipeline"
	"github.com/Zhb-source/QRcode/snapshot"
)

const (
	dbusName = "org.qrscan.qrscanner"
	dbusPath = "/org/qrscan/qrscanner"

	// Minimum period between on-demand snapshots.
	snapshotMinPeriod = 500 * time.Millisecond
)

type service struct {
	processor *pipeline.Processor
	baseDir   string
	bucket    *ratelimit.Bucket
}

func startService(processor *pipeline.Processor, baseDir string) error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return err
	}
	reply, err := conn.RequestName(dbusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return errors.New("name already taken")
	}

	s := &service{
		processor: processor,
		baseDir:   baseDir,
		bucket:    ratelimit.NewBucket(snapshotMinPeriod, 1),
	}
	conn.Export(s, dbusPath, dbusName)
	conn.Export(genIntrospectable(s), dbusPath, "org.freedesktop.DBus.Introspectable")

	return nil
}

func genIntrospectable(v interface{}) introspect.Introspectable {
	node := &introspect.Node{
		Interfaces: []introspect.Interface{{
			Name:    dbusName,
			Methods: introspect.Methods(v),
		}},
	}
	return introspect.NewIntrospectable(node)
}

// TakeSnapshot saves the most recently processed frame as a JPEG and
// returns where it was written.
func (s *service) TakeSnapshot() (string, *dbus.Error) {
	if s.bucket.TakeAvailable(1) == 0 {
		return "", s.methodErr("TakeSnapshot", "snapshot requested too frequently")
	}

	frame, ok := s.processor.RecentFrame()
	if !ok {
		return "", s.methodErr("TakeSnapshot", "no frames processed yet")
	}
	defer frame.Close()

	path, err := snapshot.Save(frame, s.baseDir, time.Now())
	if err != nil {
		return "", s.methodErr("TakeSnapshot", err.Error())
	}
	log.Printf("snapshot saved to %s", path)
	return path, nil
}

// DumpConfig logs the scanner's effective configuration.
func (s *service) DumpConfig() *dbus.Error {
	s.processor.LogConfig()
	return nil
}

func (s *service) methodErr(method, msg string) *dbus.Error {
	return &dbus.Error{
		Name: dbusName + "." + method,
		Body: []interface{}{msg},
	}
}
