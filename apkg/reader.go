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


package apkg

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/klauspost/compress/zip"
)

// ErrInvalidPackage is returned when a package cannot be read.
var ErrInvalidPackage = errors.New("invalid package")

// Note is a note read from a package.
type Note struct {
	ID       int64
	GUID     string
	ModelID  int64
	Fields   []string
	Sort     string
	Checksum int64
}

// Field returns the value of the named field or an empty string if the note
// has no such field.
func (n *Note) Field(name string) string {
	i := slices.Index(FieldNames, name)
	if i < 0 || i >= len(n.Fields) {
		return ""
	}
	return n.Fields[i]
}

// CardRecord is a card read from a package.
type CardRecord struct {
	ID     int64
	NoteID int64
	DeckID int64
	Due    int64
}

// Package is the contents of an Anki package.
type Package struct {
	// Decks are the names of the decks in the collection, sorted.
	Decks []string

	// Notes are the notes in the collection in identifier order.
	Notes []*Note

	// Cards are the cards in the collection in identifier order.
	Cards []*CardRecord

	// Media is the media manifest.
	Media Manifest

	// Files are the names of the files in the archive.
	Files []string
}

// Open reads the package at path.
func Open(path string) (*Package, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer zr.Close()

	p := &Package{}
	for _, f := range zr.File {
		p.Files = append(p.Files, f.Name)
	}

	b, err := fs.ReadFile(zr, manifestName)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrInvalidPackage, manifestName, err)
	}
	if err := json.Unmarshal(b, &p.Media); err != nil {
		return nil, err
	}

	// SQLite needs the collection on disk.
	dir, err := os.MkdirTemp("", "ankideck-")
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, collectionName)
	if err := extract(zr, collectionName, dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", collectionName, err)
	}
	defer db.Close()

	if p.Decks, err = readDecks(db); err != nil {
		return nil, err
	}
	if p.Notes, err = readNotes(db); err != nil {
		return nil, err
	}
	if p.Cards, err = readCards(db); err != nil {
		return nil, err
	}

	return p, nil
}

func extract(zr *zip.ReadCloser, name, dst string) (err error) {
	in, err := zr.Open(name)
	if err != nil {
		return fmt.Errorf("%w: reading %q: %w", ErrInvalidPackage, name, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %q: %w", dst, err)
	}
	defer func() {
		if clsErr := out.Close(); clsErr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", dst, clsErr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("%w: reading %q: %w", ErrInvalidPackage, name, err)
	}
	return nil
}

func readDecks(db *sql.DB) ([]string, error) {
	var raw string
	if err := sq.Select("decks").
		From(colTable).
		Where(sq.Eq{"id": 1}).
		RunWith(db).
		QueryRow().
		Scan(&raw); err != nil {
		return nil, fmt.Errorf("%w: reading collection: %w", ErrInvalidPackage, err)
	}

	var decks map[string]deck
	if err := json.Unmarshal([]byte(raw), &decks); err != nil {
		return nil, fmt.Errorf("%w: reading decks: %w", ErrInvalidPackage, err)
	}

	names := make([]string, 0, len(decks))
	for _, d := range decks {
		names = append(names, d.Name)
	}
	slices.Sort(names)
	return names, nil
}

func readNotes(db *sql.DB) ([]*Note, error) {
	rows, err := sq.Select("id", "guid", "mid", "flds", "sfld", "csum").
		From(notesTable).
		OrderBy("id").
		RunWith(db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("%w: reading notes: %w", ErrInvalidPackage, err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		var n Note
		var flds string
		if err := rows.Scan(&n.ID, &n.GUID, &n.ModelID, &flds, &n.Sort, &n.Checksum); err != nil {
			return nil, fmt.Errorf("%w: reading notes: %w", ErrInvalidPackage, err)
		}
		n.Fields = strings.Split(flds, fieldSep)
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading notes: %w", ErrInvalidPackage, err)
	}
	return notes, nil
}

func readCards(db *sql.DB) ([]*CardRecord, error) {
	rows, err := sq.Select("id", "nid", "did", "due").
		From(cardsTable).
		OrderBy("id").
		RunWith(db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("%w: reading cards: %w", ErrInvalidPackage, err)
	}
	defer rows.Close()

	var cards []*CardRecord
	for rows.Next() {
		var c CardRecord
		if err := rows.Scan(&c.ID, &c.NoteID, &c.DeckID, &c.Due); err != nil {
			return nil, fmt.Errorf("%w: reading cards: %w", ErrInvalidPackage, err)
		}
		cards = append(cards, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading cards: %w", ErrInvalidPackage, err)
	}
	return cards, nil
}
