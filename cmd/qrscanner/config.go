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
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	ShowGUI      bool    `yaml:"show_gui"`
	SkipFrames   int     `yaml:"skip_frames"`
	BaseSaveDir  string  `yaml:"base_save_dir"`
	OpenInterval float64 `yaml:"open_interval"`
}

var defaultConfig = Config{
	ShowGUI:      false,
	SkipFrames:   2,
	BaseSaveDir:  "~/qrcode_scans",
	OpenInterval: 5.0,
}

func (conf *Config) Validate() error {
	if conf.SkipFrames < 0 {
		return errors.New("skip_frames should not be negative")
	}
	if conf.OpenInterval < 0 {
		return errors.New("open_interval should not be negative")
	}
	if conf.BaseSaveDir == "" {
		return errors.New("base_save_dir should not be empty")
	}
	return nil
}

// ExpandedBaseDir returns base_save_dir with a leading "~" expanded to
// the current user's home directory.
func (conf *Config) ExpandedBaseDir() (string, error) {
	dir := conf.BaseSaveDir
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir[1:], "/"))
	}
	return dir, nil
}

// ParseConfigFile loads the configuration, falling back to the
// defaults when no config file exists.
func ParseConfigFile(filename string) (*Config, error) {
	buf, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		conf := defaultConfig
		return &conf, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	conf := defaultConfig
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
