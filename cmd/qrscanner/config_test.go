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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllDefaults(t *testing.T) {
	conf, err := ParseConfig([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, Config{
		ShowGUI:      false,
		SkipFrames:   2,
		BaseSaveDir:  "~/qrcode_scans",
		OpenInterval: 5.0,
	}, *conf)
}

func TestAllSet(t *testing.T) {
	// All config set at non-default values.
	config := []byte(`
show_gui: true
skip_frames: 4
base_save_dir: "/srv/scans"
open_interval: 2.5
`)

	conf, err := ParseConfig(config)
	require.NoError(t, err)

	assert.Equal(t, Config{
		ShowGUI:      true,
		SkipFrames:   4,
		BaseSaveDir:  "/srv/scans",
		OpenInterval: 2.5,
	}, *conf)
}

func TestInvalidValuesRejected(t *testing.T) {
	_, err := ParseConfig([]byte("skip_frames: -1"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("open_interval: -0.5"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`base_save_dir: ""`))
	assert.Error(t, err)
}

func TestMissingConfigFileUsesDefaults(t *testing.T) {
	conf, err := ParseConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *conf)
}

func TestExpandedBaseDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	conf := Config{BaseSaveDir: "~/qrcode_scans"}
	dir, err := conf.ExpandedBaseDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "qrcode_scans"), dir)

	conf = Config{BaseSaveDir: "~"}
	dir, err = conf.ExpandedBaseDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	conf = Config{BaseSaveDir: "/absolute/path"}
	dir, err = conf.ExpandedBaseDir()
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", dir)
}
