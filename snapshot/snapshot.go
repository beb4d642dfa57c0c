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

package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gocv.io/x/gocv"
)

const dateLayout = "2006-01-02"

// Path returns the date-partitioned location for a snapshot taken at
// now, creating the directory if needed. Snapshots taken within the
// same second share a name and overwrite each other.
func Path(baseDir string, now time.Time) (string, error) {
	dir := filepath.Join(baseDir, "screenshots", now.Format(dateLayout))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("screenshot_%d.jpg", now.Unix())), nil
}

// Save writes the frame as a JPEG under baseDir and returns where it
// ended up.
func Save(frame gocv.Mat, baseDir string, now time.Time) (string, error) {
	path, err := Path(baseDir, now)
	if err != nil {
		return "", err
	}
	if ok := gocv.IMWrite(path, frame); !ok {
		return "", fmt.Errorf("failed to write snapshot to %s", path)
	}
	return path, nil
}
