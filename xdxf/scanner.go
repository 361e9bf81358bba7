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

package xdxf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-ankideck/internal/folding"
)

const (
	// entryOpen starts an entry line. The headword follows it and is
	// terminated by headwordClose.
	entryOpen     = "<ar><k>"
	headwordClose = "</k>"

	// entryClose ends the last line of an entry body.
	entryClose = "</ar>"
)

// Entry is a dictionary entry for a requested word.
type Entry struct {
	// Word is the folded headword.
	Word string

	// Lines are the lines of the entry body including their line
	// terminators. The opening line is not included. The closing line is.
	Lines []string
}

// ScannerOptions are options for scanning a dictionary.
type ScannerOptions struct {
	// MaxLineSize is the longest line the scanner accepts. Longer lines stop
	// the scan with [bufio.ErrTooLong].
	MaxLineSize int

	// Folder folds headwords before they are looked up in the word set. The
	// word set is always folded with [folding.Word] so a custom Folder must
	// produce compatible output.
	Folder func(string) string
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	MaxLineSize: 16 * 1024 * 1024,
	Folder:      folding.Word,
}

type scanState int

const (
	// outside is the state between entries.
	outside scanState = iota

	// inside is the state while accumulating the body of a matched entry.
	inside
)

// Scanner scans a dictionary from start to end and returns the entries for the
// words in a [WordSet]. Each matched word is removed from the set, and the scan
// stops as soon as the set is empty.
//
// An entry that is never closed consumes the remainder of the dictionary
// without being returned.
type Scanner struct {
	r      io.ReadCloser
	s      *bufio.Scanner
	words  *WordSet
	folder func(string) string

	state scanState
	cur   *Entry
	entry *Entry
}

// NewScanner returns a new Scanner that reads the dictionary from r and
// returns entries for words in the given set. The Scanner assumes ownership of
// the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser, words *WordSet, options *ScannerOptions) *Scanner {
	if options == nil {
		options = DefaultScannerOptions
	}
	maxLine := options.MaxLineSize
	if maxLine <= 0 {
		maxLine = DefaultScannerOptions.MaxLineSize
	}
	folder := options.Folder
	if folder == nil {
		folder = folding.Word
	}

	s := &Scanner{
		r:      r,
		s:      bufio.NewScanner(r),
		words:  words,
		folder: folder,
	}
	s.s.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	s.s.Split(splitLine)
	return s
}

// NewScannerFromPath opens the dictionary at path with [Open] and returns a
// Scanner for it.
func NewScannerFromPath(path string, words *WordSet, options *ScannerOptions) (*Scanner, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewScanner(r, words, options), nil
}

// Scan advances to the next matched entry. It returns false when the word set
// is empty, the end of the dictionary is reached or an error occurs.
func (s *Scanner) Scan() bool {
	s.entry = nil
	if s.words.Len() == 0 && s.state == outside {
		return false
	}

	for s.s.Scan() {
		line := s.s.Text()

		switch s.state {
		case outside:
			word, ok := s.headword(line)
			if !ok || !s.words.take(word) {
				continue
			}
			s.cur = &Entry{Word: word}
			s.state = inside

		case inside:
			s.cur.Lines = append(s.cur.Lines, line)
			if closesEntry(line) {
				s.entry = s.cur
				s.cur = nil
				s.state = outside
				return true
			}
		}
	}

	return false
}

// Entry returns the entry found by the most recent call to Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing dictionary: %w", err)
	}
	return nil
}

// headword returns the folded headword if line opens an entry.
func (s *Scanner) headword(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, entryOpen)
	if !ok {
		return "", false
	}
	word, _, ok := strings.Cut(rest, headwordClose)
	if !ok {
		return "", false
	}
	word = s.folder(word)
	return word, word != ""
}

// closesEntry reports whether line is the last line of an entry.
func closesEntry(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, "\r\n"), entryClose)
}

// splitLine splits the input into lines. Unlike [bufio.ScanLines] the line
// terminator is kept as part of the token.
func splitLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

// Remaining returns the requested words that have not been matched yet in
// sorted order.
func (s *Scanner) Remaining() []string {
	return s.words.Words()
}
