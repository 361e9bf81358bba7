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

package xdxf_test

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-ankideck/internal/testutil"
	"github.com/ianlewis/go-ankideck/xdxf"
)

func scanAll(t *testing.T, s *xdxf.Scanner) []*xdxf.Entry {
	t.Helper()

	var entries []*xdxf.Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	return entries
}

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dict      string
		words     []string
		expected  []*xdxf.Entry
		remaining []string
	}{
		{
			name: "single entry",
			dict: testutil.MakeDict([]testutil.Entry{
				{Headword: "apple", Body: []string{"<blockquote>fruit</blockquote>"}},
			}),
			words: []string{"apple"},
			expected: []*xdxf.Entry{
				{Word: "apple", Lines: []string{"<blockquote>fruit</blockquote></ar>\n"}},
			},
			remaining: []string{},
		},
		{
			name: "unmatched words remain",
			dict: testutil.MakeDict([]testutil.Entry{
				{Headword: "apple", Body: []string{"fruit"}},
				{Headword: "pear", Body: []string{"another fruit"}},
			}),
			words: []string{"apple", "qwxyz"},
			expected: []*xdxf.Entry{
				{Word: "apple", Lines: []string{"fruit</ar>\n"}},
			},
			remaining: []string{"qwxyz"},
		},
		{
			name: "multi-line body",
			dict: testutil.MakeDict([]testutil.Entry{
				{Headword: "word", Body: []string{"[wɜːrd]a unit of language", "<ex>a word</ex>"}},
			}),
			words: []string{"word"},
			expected: []*xdxf.Entry{
				{Word: "word", Lines: []string{"[wɜːrd]a unit of language\n", "<ex>a word</ex></ar>\n"}},
			},
			remaining: []string{},
		},
		{
			name: "case-insensitive headword",
			dict: testutil.MakeDict([]testutil.Entry{
				{Headword: "Apple", Body: []string{"fruit"}},
			}),
			words: []string{"APPLE"},
			expected: []*xdxf.Entry{
				{Word: "apple", Lines: []string{"fruit</ar>\n"}},
			},
			remaining: []string{},
		},
		{
			name: "apostrophe entity headword",
			dict: testutil.MakeDict([]testutil.Entry{
				{Headword: "don&apos;t", Body: []string{"do not"}},
			}),
			words: []string{"Don't"},
			expected: []*xdxf.Entry{
				{Word: "don't", Lines: []string{"do not</ar>\n"}},
			},
			remaining: []string{},
		},
		{
			name: "first entry wins",
			dict: testutil.MakeDict([]testutil.Entry{
				{Headword: "bank", Body: []string{"river side"}},
				{Headword: "bank", Body: []string{"money"}},
			}),
			words: []string{"bank"},
			expected: []*xdxf.Entry{
				{Word: "bank", Lines: []string{"river side</ar>\n"}},
			},
			remaining: []string{},
		},
		{
			name:      "unterminated entry consumes the rest",
			dict:      "<ar><k>apple</k>\nfruit\n<ar><k>pear</k>\nanother fruit\n",
			words:     []string{"apple", "pear"},
			expected:  nil,
			remaining: []string{"pear"},
		},
		{
			name:  "crlf line endings",
			dict:  "<ar><k>apple</k>\r\nfruit</ar>\r\n",
			words: []string{"apple"},
			expected: []*xdxf.Entry{
				{Word: "apple", Lines: []string{"fruit</ar>\r\n"}},
			},
			remaining: []string{},
		},
		{
			name:  "closing line without newline",
			dict:  "<ar><k>apple</k>\nfruit</ar>",
			words: []string{"apple"},
			expected: []*xdxf.Entry{
				{Word: "apple", Lines: []string{"fruit</ar>"}},
			},
			remaining: []string{},
		},
		{
			name:      "opening line without headword close",
			dict:      "<ar><k>apple\nfruit</ar>\n",
			words:     []string{"apple"},
			expected:  nil,
			remaining: []string{"apple"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			words := xdxf.NewWordSet(test.words...)
			s := xdxf.NewScanner(io.NopCloser(strings.NewReader(test.dict)), words, nil)
			defer s.Close()

			if diff := cmp.Diff(test.expected, scanAll(t, s)); diff != "" {
				t.Errorf("entries (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.remaining, words.Words()); diff != "" {
				t.Errorf("remaining words (-want, +got):\n%s", diff)
			}
		})
	}
}

// countingReader counts the lines handed out by the reader.
type countingReader struct {
	lines []string
	read  int
}

func (r *countingReader) Read(p []byte) (int, error) {
	if r.read >= len(r.lines) {
		return 0, io.EOF
	}
	// Hand out one line per call so the scanner cannot read ahead.
	n := copy(p, r.lines[r.read])
	r.read++
	return n, nil
}

func (*countingReader) Close() error { return nil }

func TestScanner_earlyTermination(t *testing.T) {
	t.Parallel()

	r := &countingReader{lines: []string{
		"<ar><k>apple</k>\n",
		"fruit</ar>\n",
		"<ar><k>pear</k>\n",
		"another fruit</ar>\n",
	}}
	s := xdxf.NewScanner(r, xdxf.NewWordSet("apple"), nil)

	entries := scanAll(t, s)
	if got, want := len(entries), 1; got != want {
		t.Fatalf("unexpected # of entries; want: %d, got: %d", want, got)
	}
	if got, want := r.read, 2; got != want {
		t.Errorf("unexpected # of lines read; want: %d, got: %d", want, got)
	}
}

func TestScanner_lineTooLong(t *testing.T) {
	t.Parallel()

	dict := "<ar><k>apple</k>\n" + strings.Repeat("x", 1024) + "</ar>\n"
	s := xdxf.NewScanner(io.NopCloser(strings.NewReader(dict)), xdxf.NewWordSet("apple"), &xdxf.ScannerOptions{
		MaxLineSize: 64,
	})
	for s.Scan() {
		t.Fatalf("unexpected entry: %v", s.Entry())
	}
	if err := s.Err(); !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("Err: want %v, got %v", bufio.ErrTooLong, err)
	}
}

func TestNewScannerFromPath(t *testing.T) {
	t.Parallel()

	dict := testutil.MakeDict([]testutil.Entry{
		{Headword: "apple", Body: []string{"fruit"}},
		{Headword: "pear", Body: []string{"another fruit"}},
	})
	expected := []*xdxf.Entry{
		{Word: "apple", Lines: []string{"fruit</ar>\n"}},
		{Word: "pear", Lines: []string{"another fruit</ar>\n"}},
	}

	tests := []struct {
		name        string
		compression testutil.Compression
	}{
		{name: "plain", compression: testutil.None},
		{name: "gzip", compression: testutil.Gzip},
		{name: "dictzip", compression: testutil.DictZip},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.MakeTempDict(t, dict, &testutil.MakeDictOptions{Compression: test.compression})
			s, err := xdxf.NewScannerFromPath(path, xdxf.NewWordSet("apple", "pear"), nil)
			if err != nil {
				t.Fatalf("NewScannerFromPath: %v", err)
			}

			if diff := cmp.Diff(expected, scanAll(t, s)); diff != "" {
				t.Errorf("entries (-want, +got):\n%s", diff)
			}
			if err := s.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
	}
}

func TestOpen_notFound(t *testing.T) {
	t.Parallel()

	if _, err := xdxf.Open("/does/not/exist.xdxf"); err == nil {
		t.Fatal("expected error")
	}
}
