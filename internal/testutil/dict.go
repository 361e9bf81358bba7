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

// Package testutil contains helpers for writing test dictionaries, word lists
// and audio directories.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/klauspost/compress/gzip"
)

// Entry is a test dictionary entry.
type Entry struct {
	// Headword is written verbatim into the opening line.
	Headword string

	// Body is the entry body. The closing tag is appended to its last line.
	Body []string
}

// Compression selects how a temporary dictionary is stored.
type Compression int

const (
	// None writes a plain dictionary.
	None Compression = iota

	// Gzip writes a gzip compressed dictionary with a .gz extension.
	Gzip

	// DictZip writes a dictzip compressed dictionary with a .dz extension.
	DictZip
)

// MakeDictOptions are options for writing a temporary dictionary.
type MakeDictOptions struct {
	// Compression is the compression of the written file.
	Compression Compression
}

// GetExt returns the file extension for the dictionary file.
func (o *MakeDictOptions) GetExt() string {
	if o != nil {
		switch o.Compression {
		case Gzip:
			return ".xdxf.gz"
		case DictZip:
			return ".xdxf.dz"
		}
	}
	return ".xdxf"
}

// MakeDict returns the text of a dictionary containing entries. Entries are
// surrounded by XDXF header and footer lines that must be skipped by readers.
func MakeDict(entries []Entry) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	b.WriteString(`<xdxf lang_from="ENG" lang_to="RUS" format="visual">` + "\n")
	b.WriteString("<full_name>Test</full_name>\n")
	for _, e := range entries {
		b.WriteString("<ar><k>" + e.Headword + "</k>\n")
		for i, line := range e.Body {
			b.WriteString(line)
			if i == len(e.Body)-1 {
				b.WriteString("</ar>")
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("</xdxf>\n")
	return b.String()
}

// MakeTempDict writes contents to a dictionary file in a temporary directory
// and returns its path.
func MakeTempDict(t *testing.T, contents string, opts *MakeDictOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dict"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	compression := None
	if opts != nil {
		compression = opts.Compression
	}

	switch compression {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(contents); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// MakeWordsFile writes a word list file with one line per element of lines
// and returns its path.
func MakeWordsFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// MakeAudioDir creates a directory containing a small fake .ogg file for
// each word and returns its path.
func MakeAudioDir(t *testing.T, words ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, w := range words {
		if err := os.WriteFile(filepath.Join(dir, w+".ogg"), []byte("OggS"+w), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
