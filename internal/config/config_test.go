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


package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yaml")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// isolate points the configuration search at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("APPDATA", filepath.Join(dir, "appdata"))
	for _, k := range []string{
		"ANKIDECK_INPUT_DIR",
		"ANKIDECK_DICT",
		"ANKIDECK_AUDIO",
		"ANKIDECK_WORDS",
		"ANKIDECK_LOG_LEVEL",
		"ANKIDECK_LOG_FORMAT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

const testYAML = `
input:
  dir: /data/english
  words: mywords.txt
log:
  level: debug
  format: json
`

func TestLoad_file(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, testYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Config{
		Input: InputConfig{
			Dir:   "/data/english",
			Words: "mywords.txt",
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "json",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected config (-want, +got):\n%s", diff)
	}
}

func TestLoad_envOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, testYAML)
	t.Setenv("ANKIDECK_LOG_LEVEL", "warn")
	t.Setenv("ANKIDECK_DICT", "/data/other.xdxf")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Log.Level, "warn"; got != want {
		t.Errorf("log level: got %q, want %q", got, want)
	}
	if got, want := cfg.Input.Dict, "/data/other.xdxf"; got != want {
		t.Errorf("dict: got %q, want %q", got, want)
	}
}

func TestLoad_defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Config{
		Input: InputConfig{Words: "words.txt"},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected config (-want, +got):\n%s", diff)
	}
}

func TestLoad_location(t *testing.T) {
	dir := isolate(t)
	writeYAML(t, filepath.Join(dir, "xdg", "ankideck"), testYAML)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Input.Words, "mywords.txt"; got != want {
		t.Errorf("words: got %q, want %q", got, want)
	}
}

func TestLoad_missingFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("unexpected error, got: %v, want: %v", err, fs.ErrNotExist)
	}
}

func TestLoad_invalid(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, "log:\n  level: loud\n  format: xml\n")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("unexpected error, got: %v, want: %v", err, ErrInvalid)
	}
}

func TestInputConfig_Resolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    InputConfig
		expected InputConfig
	}{
		{
			name:  "dir",
			input: InputConfig{Dir: "in"},
			expected: InputConfig{
				Dir:   "in",
				Dict:  filepath.Join("in", DictName),
				Audio: filepath.Join("in", AudioDirName),
			},
		},
		{
			name:     "explicit paths win",
			input:    InputConfig{Dir: "in", Dict: "d.xdxf", Audio: "sounds"},
			expected: InputConfig{Dir: "in", Dict: "d.xdxf", Audio: "sounds"},
		},
		{
			name:     "no dir",
			input:    InputConfig{Dict: "d.xdxf"},
			expected: InputConfig{Dict: "d.xdxf"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.input
			got.Resolve()
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("unexpected config (-want, +got):\n%s", diff)
			}
		})
	}
}
