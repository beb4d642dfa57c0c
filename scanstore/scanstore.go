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

package scanstore

import (
	"encoding/csv"
	"os"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// The header matches what the scan history has always used, so logs
// from older installs keep appending to the same file.
var header = []string{"时间", "二维码内容"}

// Record is one newly observed QR payload.
type Record struct {
	Time    time.Time
	Content string
}

// Store appends newly observed payloads to a CSV file. Rows are never
// rewritten or deleted. Each append opens the file, writes one row and
// closes it again, so an interrupted run never loses more than the row
// being written.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the CSV file.
func (store *Store) Path() string {
	return store.path
}

// Append writes a single record, writing a header row first if the
// file doesn't exist yet.
func (store *Store) Append(rec Record) error {
	_, err := os.Stat(store.path)
	writeHeader := os.IsNotExist(err)

	f, err := os.OpenFile(store.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.Write([]string{rec.Time.Format(timeLayout), rec.Content}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
