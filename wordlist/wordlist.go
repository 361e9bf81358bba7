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


// Package wordlist reads lists of words to make flashcards for.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ianlewis/go-ankideck/internal/folding"
	"github.com/ianlewis/go-ankideck/xdxf"
)

// ErrEmpty is returned when a word list contains no words.
var ErrEmpty = errors.New("word list is empty")

// Read reads a word list from r. The list has one word per line. Words are
// folded to lower case with surrounding whitespace removed and blank lines are
// ignored.
func Read(r io.Reader) (*xdxf.WordSet, error) {
	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if w := folding.Word(s.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	set := xdxf.NewWordSet(words...)
	if set.Len() == 0 {
		return nil, ErrEmpty
	}
	return set, nil
}

// Open reads the word list at path.
func Open(path string) (*xdxf.WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	set, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return set, nil
}
