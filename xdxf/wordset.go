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
	"sort"

	"github.com/ianlewis/go-ankideck/internal/folding"
)

// WordSet is the set of words still waiting for a dictionary entry. Words are
// folded on insertion so membership is case-insensitive.
type WordSet struct {
	words map[string]struct{}
}

// NewWordSet returns a set containing the folded form of each of words. Words
// that fold to the empty string are dropped.
func NewWordSet(words ...string) *WordSet {
	s := &WordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if f := folding.Word(w); f != "" {
			s.words[f] = struct{}{}
		}
	}
	return s
}

// Len returns the number of words in the set.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Has reports whether the set contains the folded form of word.
func (s *WordSet) Has(word string) bool {
	_, ok := s.words[folding.Word(word)]
	return ok
}

// Words returns the words remaining in the set in sorted order.
func (s *WordSet) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// take removes an already folded word from the set and reports whether it was
// present.
func (s *WordSet) take(folded string) bool {
	if _, ok := s.words[folded]; !ok {
		return false
	}
	delete(s.words, folded)
	return true
}
