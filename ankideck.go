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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ianlewis/go-ankideck/xdxf"
)

// Report summarizes a run.
type Report struct {
	// Cards is the number of cards handled by the sink.
	Cards int

	// Unmatched are the requested words that had no dictionary entry, sorted.
	Unmatched []string
}

// Options are options for Generate.
type Options struct {
	// AudioDir is the directory containing audio files. See
	// [BuilderOptions.AudioDir].
	AudioDir string

	// OmitSound disables audio references.
	OmitSound bool

	// Scanner are options for scanning the dictionary. If nil,
	// [xdxf.DefaultScannerOptions] are used.
	Scanner *xdxf.ScannerOptions

	// Logger is the logger to use. If nil, [slog.Default] is used.
	Logger *slog.Logger
}

// Generate makes a card for each word in words from the dictionary at
// dictPath and passes them to sink. Matched words are removed from words.
//
// The dictionary is opened before the sink is started so that no output is
// produced if it cannot be read. Words without a dictionary entry are logged
// as a single warning.
func Generate(ctx context.Context, dictPath string, words *xdxf.WordSet, sink CardSink, opts *Options) (*Report, error) {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s, err := xdxf.NewScannerFromPath(dictPath, words, opts.Scanner)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Debug("closing dictionary", "path", dictPath, "err", err)
		}
	}()

	b := NewBuilder(&BuilderOptions{
		AudioDir:  opts.AudioDir,
		OmitSound: opts.OmitSound,
		Logger:    logger,
	})

	report, err := Run(ctx, s, b, sink)
	if err != nil {
		return nil, err
	}

	if len(report.Unmatched) > 0 {
		logger.Warn("words not found in dictionary", "words", report.Unmatched)
	}
	logger.Info("generated cards",
		"cards", report.Cards,
		"unmatched", len(report.Unmatched),
	)
	return report, nil
}

// Run builds a card for every entry returned by s and passes it to sink. The
// sink is started before the first entry is read and finished after the last
// one. If an error occurs the sink is closed, if it implements [io.Closer],
// instead of being finished.
func Run(ctx context.Context, s *xdxf.Scanner, b *Builder, sink CardSink) (report *Report, err error) {
	if err := sink.Start(); err != nil {
		return nil, fmt.Errorf("starting output: %w", err)
	}
	defer func() {
		if err != nil {
			if c, ok := sink.(io.Closer); ok {
				err = errors.Join(err, c.Close())
			}
		}
	}()

	report = &Report{}
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := sink.Handle(b.Build(s.Entry())); err != nil {
			return nil, fmt.Errorf("writing card: %w", err)
		}
		report.Cards++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	if err := sink.Finish(); err != nil {
		return nil, fmt.Errorf("finishing output: %w", err)
	}

	report.Unmatched = s.Remaining()
	return report, nil
}
