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


// Package ankideck implements a library for making Anki flashcards from XDXF
// dictionaries in pure Go.
//
// Cards are made in a single pass over the dictionary:
//  1. An [xdxf.Scanner] finds the entry for each requested word.
//  2. A [Builder] normalizes the entry's markup into a definition and a
//     transcription and adds the word's audio file.
//  3. A [CardSink] writes the cards. The flashcards package writes a tab
//     separated text file and the apkg package writes an Anki package.
//
// More info on the XDXF format can be found at this URL:
// https://github.com/soshial/xdxf_makedict/blob/master/format_standard/xdxf_description.md
package ankideck
