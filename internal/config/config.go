// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads the ankideck configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DictName is the name of the dictionary file in an input directory.
	DictName = "dict.xdxf"

	// AudioDirName is the name of the audio directory in an input directory.
	AudioDirName = "audio"
)

// ErrInvalid is returned when the configuration is invalid.
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration.
type Config struct {
	Input InputConfig `yaml:"input"`
	Log   LogConfig   `yaml:"log"`
}

// InputConfig holds the locations of the input files.
type InputConfig struct {
	Dir   string `yaml:"dir"   env:"ANKIDECK_INPUT_DIR"`
	Dict  string `yaml:"dict"  env:"ANKIDECK_DICT"`
	Audio string `yaml:"audio" env:"ANKIDECK_AUDIO"`
	Words string `yaml:"words" env:"ANKIDECK_WORDS" env-default:"words.txt"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"ANKIDECK_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"ANKIDECK_LOG_FORMAT" env-default:"text"`
}

// Resolve fills in the dictionary and audio locations from the input directory
// when they are not set.
func (c *InputConfig) Resolve() {
	if c.Dir == "" {
		return
	}
	if c.Dict == "" {
		c.Dict = filepath.Join(c.Dir, DictName)
	}
	if c.Audio == "" {
		c.Audio = filepath.Join(c.Dir, AudioDirName)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level))
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format))
	}

	if c.Input.Words == "" {
		errs = append(errs, fmt.Errorf("%w: no word list", ErrInvalid))
	}

	return errors.Join(errs...)
}
