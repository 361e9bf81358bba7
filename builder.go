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


package ankideck

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-ankideck/markup"
	"github.com/ianlewis/go-ankideck/xdxf"
)

// BuilderOptions are options for a Builder.
type BuilderOptions struct {
	// AudioDir is the directory containing audio files named <word>.ogg. If
	// set, cards only reference audio files that exist in it. If empty, every
	// card references its audio file without checking that it exists.
	AudioDir string

	// OmitSound disables audio references.
	OmitSound bool

	// Logger is the logger to use. If nil, [slog.Default] is used.
	Logger *slog.Logger
}

// Builder builds cards from dictionary entries.
type Builder struct {
	audioDir  string
	omitSound bool
	logger    *slog.Logger
}

// NewBuilder returns a new Builder.
func NewBuilder(opts *BuilderOptions) *Builder {
	if opts == nil {
		opts = &BuilderOptions{}
	}
	b := &Builder{
		audioDir:  opts.AudioDir,
		omitSound: opts.OmitSound,
		logger:    opts.Logger,
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Build returns the card for a dictionary entry.
func (b *Builder) Build(entry *xdxf.Entry) *Card {
	r := markup.Normalize(entry.Lines)
	return NewCard(entry.Word, r.Definition, r.Transcription, b.sound(entry.Word))
}

// sound returns the audio file name for word or an empty string if the card
// should not have audio.
func (b *Builder) sound(word string) string {
	if b.omitSound {
		return ""
	}

	name := word + SoundExt
	if b.audioDir == "" {
		return name
	}

	path := filepath.Join(b.audioDir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn("no audio file for word", "word", word, "path", path)
		} else {
			b.logger.Warn("skipping audio file for word", "word", word, "path", path, "err", err)
		}
		return ""
	}
	return name
}
