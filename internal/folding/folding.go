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

// Package folding normalizes words so that entries from a word list and
// dictionary headwords compare equal.
package folding

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// aposEntity is how dictionaries escape apostrophes in headwords.
const aposEntity = "&apos;"

// Word returns the folded form of s. The apostrophe entity is unescaped,
// leading and trailing whitespace is dropped, internal whitespace runs become
// a single ASCII space and letters are lowercased.
func Word(s string) string {
	s = strings.ReplaceAll(s, aposEntity, "'")
	folded, _, err := transform.String(transform.Chain(&Whitespace{}, cases.Lower(language.Und)), s)
	if err != nil {
		// Transform only fails on invalid state; fall back to the simple form.
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// Whitespace is a [transform.Transformer] that trims whitespace from both ends
// of the input and collapses every internal whitespace span to one space.
type Whitespace struct {
	// seenText is set once the first non-space rune has been written.
	seenText bool

	// pending is set while inside a whitespace span that follows text.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			nSrc += size
			w.pending = w.seenText
			continue
		}

		need := utf8.RuneLen(r)
		if need < 0 {
			need = len(string(utf8.RuneError))
		}
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.seenText = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	w.seenText = false
	w.pending = false
}
