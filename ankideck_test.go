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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-ankideck/internal/testutil"
	"github.com/ianlewis/go-ankideck/xdxf"
)

var errTest = errors.New("test error")

// recordingSink records the calls made to it.
type recordingSink struct {
	calls     []string
	cards     []*Card
	handleErr error
}

func (s *recordingSink) Start() error {
	s.calls = append(s.calls, "start")
	return nil
}

func (s *recordingSink) Handle(c *Card) error {
	s.calls = append(s.calls, "handle")
	if s.handleErr != nil {
		return s.handleErr
	}
	s.cards = append(s.cards, c)
	return nil
}

func (s *recordingSink) Finish() error {
	s.calls = append(s.calls, "finish")
	return nil
}

func (s *recordingSink) Close() error {
	s.calls = append(s.calls, "close")
	return nil
}

var cardCmp = cmp.AllowUnexported(Card{})

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var b bytes.Buffer
	return slog.New(slog.NewTextHandler(&b, nil)), &b
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	audioDir := testutil.MakeAudioDir(t, "apple")

	testCases := []struct {
		name     string
		opts     *BuilderOptions
		entry    *xdxf.Entry
		expected *Card
	}{
		{
			name: "audio found",
			opts: &BuilderOptions{AudioDir: audioDir},
			entry: &xdxf.Entry{
				Word:  "apple",
				Lines: []string{"[ˈæp.əl]<blockquote>fruit<ex>an apple a day</ex></blockquote></ar>\n"},
			},
			expected: NewCard("apple", "<blockquote>fruit</blockquote>", "[ˈæp.əl]", "apple.ogg"),
		},
		{
			name: "audio missing",
			opts: &BuilderOptions{AudioDir: audioDir},
			entry: &xdxf.Entry{
				Word:  "word",
				Lines: []string{"[wɜːrd]a unit of language\n", "</ar>\n"},
			},
			expected: NewCard("word", "a unit of language", "[wɜːrd]", ""),
		},
		{
			name: "audio not checked",
			opts: &BuilderOptions{},
			entry: &xdxf.Entry{
				Word:  "word",
				Lines: []string{"a unit of language</ar>\n"},
			},
			expected: NewCard("word", "a unit of language", "", "word.ogg"),
		},
		{
			name: "audio omitted",
			opts: &BuilderOptions{AudioDir: audioDir, OmitSound: true},
			entry: &xdxf.Entry{
				Word:  "apple",
				Lines: []string{"fruit</ar>\n"},
			},
			expected: NewCard("apple", "fruit", "", ""),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger, _ := newTestLogger()
			tc.opts.Logger = logger
			got := NewBuilder(tc.opts).Build(tc.entry)
			if diff := cmp.Diff(tc.expected, got, cardCmp); diff != "" {
				t.Errorf("unexpected card (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestBuilder_missingAudioWarning(t *testing.T) {
	t.Parallel()

	logger, logs := newTestLogger()
	b := NewBuilder(&BuilderOptions{AudioDir: t.TempDir(), Logger: logger})
	b.Build(&xdxf.Entry{Word: "apple", Lines: []string{"fruit</ar>\n"}})

	if got := logs.String(); !strings.Contains(got, "level=WARN") || !strings.Contains(got, "apple.ogg") {
		t.Errorf("expected missing audio warning, got: %q", got)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dict := testutil.MakeTempDict(t, testutil.MakeDict([]testutil.Entry{
		{Headword: "banana", Body: []string{"<blockquote>yellow fruit</blockquote>"}},
		{Headword: "apple", Body: []string{"<blockquote>fruit</blockquote>"}},
	}), nil)
	audioDir := t.TempDir()

	logger, logs := newTestLogger()
	words := xdxf.NewWordSet("apple", "qwxyz")
	sink := &recordingSink{}

	report, err := Generate(context.Background(), dict, words, sink, &Options{
		AudioDir: audioDir,
		Logger:   logger,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if diff := cmp.Diff([]string{"start", "handle", "finish"}, sink.calls); diff != "" {
		t.Errorf("unexpected sink calls (-want, +got):\n%s", diff)
	}
	want := []*Card{NewCard("apple", "<blockquote>fruit</blockquote>", "", "")}
	if diff := cmp.Diff(want, sink.cards, cardCmp); diff != "" {
		t.Errorf("unexpected cards (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(&Report{Cards: 1, Unmatched: []string{"qwxyz"}}, report); diff != "" {
		t.Errorf("unexpected report (-want, +got):\n%s", diff)
	}

	out := logs.String()
	if got, want := strings.Count(out, "words not found in dictionary"), 1; got != want {
		t.Errorf("unmatched warnings: got %d, want %d\n%s", got, want, out)
	}
	if !strings.Contains(out, "qwxyz") {
		t.Errorf("warning does not list unmatched word:\n%s", out)
	}
}

func TestGenerate_unique(t *testing.T) {
	t.Parallel()

	dict := testutil.MakeTempDict(t, testutil.MakeDict([]testutil.Entry{
		{Headword: "Apple", Body: []string{"first"}},
		{Headword: "APPLE", Body: []string{"second"}},
		{Headword: "apple", Body: []string{"third"}},
		{Headword: "Don&apos;t", Body: []string{"do not"}},
	}), &testutil.MakeDictOptions{Compression: testutil.Gzip})

	logger, _ := newTestLogger()
	sink := &recordingSink{}
	report, err := Generate(context.Background(), dict, xdxf.NewWordSet("APPLE", "apple", "don't"), sink, &Options{
		OmitSound: true,
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := []*Card{
		NewCard("apple", "first", "", ""),
		NewCard("don't", "do not", "", ""),
	}
	if diff := cmp.Diff(want, sink.cards, cardCmp); diff != "" {
		t.Errorf("unexpected cards (-want, +got):\n%s", diff)
	}
	if len(report.Unmatched) != 0 {
		t.Errorf("unexpected unmatched words: %q", report.Unmatched)
	}
}

func TestGenerate_noCards(t *testing.T) {
	t.Parallel()

	dict := testutil.MakeTempDict(t, testutil.MakeDict([]testutil.Entry{
		{Headword: "apple", Body: []string{"fruit"}},
	}), nil)

	logger, _ := newTestLogger()
	sink := &recordingSink{}
	report, err := Generate(context.Background(), dict, xdxf.NewWordSet("qwxyz"), sink, &Options{Logger: logger})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if diff := cmp.Diff([]string{"start", "finish"}, sink.calls); diff != "" {
		t.Errorf("unexpected sink calls (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(&Report{Unmatched: []string{"qwxyz"}}, report); diff != "" {
		t.Errorf("unexpected report (-want, +got):\n%s", diff)
	}
}

func TestGenerate_sinkError(t *testing.T) {
	t.Parallel()

	dict := testutil.MakeTempDict(t, testutil.MakeDict([]testutil.Entry{
		{Headword: "apple", Body: []string{"fruit"}},
	}), nil)

	logger, _ := newTestLogger()
	sink := &recordingSink{handleErr: errTest}
	_, err := Generate(context.Background(), dict, xdxf.NewWordSet("apple"), sink, &Options{Logger: logger})
	if !errors.Is(err, errTest) {
		t.Fatalf("unexpected error, got: %v, want: %v", err, errTest)
	}
	if diff := cmp.Diff([]string{"start", "handle", "close"}, sink.calls); diff != "" {
		t.Errorf("unexpected sink calls (-want, +got):\n%s", diff)
	}
}

func TestGenerate_canceled(t *testing.T) {
	t.Parallel()

	dict := testutil.MakeTempDict(t, testutil.MakeDict([]testutil.Entry{
		{Headword: "apple", Body: []string{"fruit"}},
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger, _ := newTestLogger()
	sink := &recordingSink{}
	_, err := Generate(ctx, dict, xdxf.NewWordSet("apple"), sink, &Options{Logger: logger})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error, got: %v, want: %v", err, context.Canceled)
	}
	if diff := cmp.Diff([]string{"start", "close"}, sink.calls); diff != "" {
		t.Errorf("unexpected sink calls (-want, +got):\n%s", diff)
	}
}

func TestGenerate_missingDictionary(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	_, err := Generate(context.Background(), filepath.Join(t.TempDir(), "dict.xdxf"), xdxf.NewWordSet("apple"), sink, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected error, got: %v, want: %v", err, os.ErrNotExist)
	}
	if len(sink.calls) != 0 {
		t.Errorf("sink should not be used, got calls: %q", sink.calls)
	}
}
