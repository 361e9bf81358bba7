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

// Package xdxf implements streaming extraction of entries from XDXF-style
// dictionaries.
//
// XDXF dictionaries are line oriented. Each entry (article) starts on a line
// of the form
//
//	<ar><k>headword</k>
//
// and ends with a line that ends in the closing article tag:
//
//	... </ar>
//
// Only individual entries are expected to be well-formed markup, so entries
// are located by scanning lines rather than by parsing the whole file. The
// lines between the opening and closing line form the entry body, which may
// contain arbitrary, possibly malformed, nested markup.
//
// Dictionaries may be stored plain, gzip compressed (.gz) or dictzip
// compressed (.dz).
package xdxf
