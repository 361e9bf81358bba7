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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jonboulle/clockwork"
	"github.com/klauspost/compress/zip"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/ianlewis/go-ankideck"
)

// Ext is the file extension of Anki packages.
const Ext = ".apkg"

var (
	// ErrNotStarted is returned when a Writer is used before Start.
	ErrNotStarted = ankideck.ErrNotStarted

	// ErrAlreadyStarted is returned when Start is called more than once.
	ErrAlreadyStarted = ankideck.ErrAlreadyStarted

	// ErrFinished is returned when a Writer is used after Finish or Close.
	ErrFinished = ankideck.ErrFinished
)

// WriterOptions are options for a Writer.
type WriterOptions struct {
	// DeckName is the name of the deck. If empty, the base name of the output
	// path without its extension is used.
	DeckName string

	// AudioDir is the directory containing the audio files referenced by
	// cards.
	AudioDir string

	// Clock is used for timestamps. If nil, the real clock is used.
	Clock clockwork.Clock

	// IDs is the source of the note type and deck identifiers. Note and card
	// identifiers follow the deck identifier. If nil, a ClockIDs using Clock is
	// used.
	IDs IDSource

	// Logger is the logger to use. If nil, [slog.Default] is used.
	Logger *slog.Logger
}

// Writer writes cards to an Anki package. It implements [ankideck.CardSink].
//
// The collection is built in a temporary directory which is archived to the
// output path by Finish and then removed.
type Writer struct {
	path     string
	deckName string
	audioDir string
	clock    clockwork.Clock
	ids      IDSource
	logger   *slog.Logger

	state ankideck.SinkState

	// epoch is the creation time in seconds.
	epoch int64

	modelID     int64
	deckID      int64
	noteIDStart int64
	noteID      int64

	dir   string
	db    *sql.DB
	tx    *sql.Tx
	media Manifest
}

// NewWriter returns a new Writer that writes the package to path.
func NewWriter(path string, opts *WriterOptions) *Writer {
	if opts == nil {
		opts = &WriterOptions{}
	}

	w := &Writer{
		path:     path,
		deckName: opts.DeckName,
		audioDir: opts.AudioDir,
		clock:    opts.Clock,
		ids:      opts.IDs,
		logger:   opts.Logger,
	}
	if w.deckName == "" {
		w.deckName = DeckName(path)
	}
	if w.clock == nil {
		w.clock = clockwork.NewRealClock()
	}
	if w.ids == nil {
		w.ids = NewClockIDs(w.clock)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w
}

// DeckName returns the default deck name for a package path.
func DeckName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Path returns the output path of the package.
func (w *Writer) Path() string {
	return w.path
}

// Start removes any existing file at the output path and creates the
// collection.
func (w *Writer) Start() (err error) {
	if err := w.state.Start(); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			w.state = ankideck.Finished
			w.release()
		}
	}()

	if err := os.Remove(w.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", w.path, err)
	}

	w.epoch = w.clock.Now().Unix()
	w.modelID = w.ids.Next()
	w.deckID = w.modelID + 1
	w.noteIDStart = w.deckID + 1
	w.noteID = w.noteIDStart

	w.dir, err = os.MkdirTemp("", "ankideck-")
	if err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}

	dbPath := filepath.Join(w.dir, collectionName)
	w.db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", dbPath, err)
	}
	// The collection is written through a single transaction at a time.
	w.db.SetMaxOpenConns(1)

	if err := w.prepare(); err != nil {
		return err
	}

	w.tx, err = w.db.Begin()
	if err != nil {
		return fmt.Errorf("starting notes transaction: %w", err)
	}

	w.logger.Debug("started package",
		"path", w.path,
		"deck", w.deckName,
		"model_id", w.modelID,
		"deck_id", w.deckID,
	)
	return nil
}

// prepare creates the collection tables and stores the collection metadata.
func (w *Writer) prepare() error {
	cfg, err := newCollectionConfig(w.modelID, w.deckID, w.deckName, w.epoch)
	if err != nil {
		return err
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op.
	defer tx.Rollback()

	for _, stmt := range createTables {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("creating collection: %w", err)
		}
	}

	epochMS := w.epoch * 1000
	if _, err := sq.Insert(colTable).
		Values(1, w.epoch, epochMS, epochMS, schemaVersion, 0, 0, 0,
			cfg.conf, cfg.models, cfg.decks, "{}", "{}").
		RunWith(tx).
		Exec(); err != nil {
		return fmt.Errorf("storing collection metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}
	return nil
}

// Handle adds a note for the card to the collection. If the card has a sound
// its audio file is copied into the package.
func (w *Writer) Handle(card *ankideck.Card) error {
	if err := w.state.Check(); err != nil {
		return err
	}

	if card.Sound() != "" {
		if err := w.addMedia(card.Sound()); err != nil {
			return err
		}
	}

	flds := strings.Join([]string{
		card.Word(),
		card.Definition(),
		card.Transcription(),
		card.SoundTag(),
	}, fieldSep)

	if _, err := sq.Insert(notesTable).
		Values(w.noteID, GUID(), w.modelID, w.epoch, -1, "", flds,
			card.Word(), Checksum(card.Word()), 0, "").
		RunWith(w.tx).
		Exec(); err != nil {
		return fmt.Errorf("adding note %q: %w", card.Word(), err)
	}
	w.noteID++

	return nil
}

// addMedia copies the audio file into the workspace under its media file
// name.
func (w *Writer) addMedia(name string) error {
	src := filepath.Join(w.audioDir, name)
	key := w.media.Add(name)
	if err := copyFile(src, filepath.Join(w.dir, key)); err != nil {
		w.media = w.media[:len(w.media)-1]
		return err
	}
	return nil
}

// Finish adds a card for every note, writes the media manifest and archives
// the collection to the output path.
func (w *Writer) Finish() error {
	if err := w.state.Finish(); err != nil {
		return err
	}
	defer w.release()

	n := w.noteID - w.noteIDStart
	for i := range n {
		// id, nid, did, ord, mod, usn, type, queue, due, ivl, factor, reps,
		// lapses, left, odue, odid, flags, data
		if _, err := sq.Insert(cardsTable).
			Values(w.noteID+i, w.noteIDStart+i, w.deckID, 0, w.epoch, -1, 0, 0, i+1,
				0, 0, 0, 0, 0, 0, 0, 0, "").
			RunWith(w.tx).
			Exec(); err != nil {
			return fmt.Errorf("adding card: %w", err)
		}
	}
	if r, ok := w.ids.(reserver); ok {
		r.Reserve(w.noteID + n - 1)
	}

	for _, stmt := range createIndexes {
		if _, err := w.tx.Exec(stmt); err != nil {
			return fmt.Errorf("indexing collection: %w", err)
		}
	}

	tx := w.tx
	w.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing collection: %w", err)
	}
	db := w.db
	w.db = nil
	if err := db.Close(); err != nil {
		return fmt.Errorf("closing collection: %w", err)
	}

	if err := w.writeManifest(); err != nil {
		return err
	}

	if err := w.archive(); err != nil {
		return err
	}

	w.logger.Debug("finished package",
		"path", w.path,
		"notes", n,
		"media", len(w.media),
	)
	return nil
}

func (w *Writer) writeManifest() error {
	b, err := json.Marshal(w.media)
	if err != nil {
		return err
	}
	path := filepath.Join(w.dir, manifestName)
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("writing media manifest: %w", err)
	}
	return nil
}

// archive writes the contents of the workspace to the output path.
func (w *Writer) archive() (err error) {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", w.path, err)
	}
	defer func() {
		if clsErr := f.Close(); clsErr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", w.path, clsErr)
		}
	}()

	zw := zip.NewWriter(f)
	if err := zw.AddFS(os.DirFS(w.dir)); err != nil {
		return fmt.Errorf("archiving %q: %w", w.path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("archiving %q: %w", w.path, err)
	}
	return nil
}

// Close releases the Writer's resources. If the Writer was started but not
// finished no package is written. Close is safe to call after Finish.
func (w *Writer) Close() error {
	if w.state == ankideck.Started {
		w.state = ankideck.Finished
	}
	w.release()
	return nil
}

// release rolls back any open transaction, closes the database and removes
// the workspace. Errors are logged and otherwise ignored.
func (w *Writer) release() {
	if w.tx != nil {
		if err := w.tx.Rollback(); err != nil {
			w.logger.Debug("rolling back collection", "err", err)
		}
		w.tx = nil
	}
	if w.db != nil {
		if err := w.db.Close(); err != nil {
			w.logger.Debug("closing collection", "err", err)
		}
		w.db = nil
	}
	if w.dir != "" {
		// The workspace is temporary so failing to remove it is not an error.
		if err := os.RemoveAll(w.dir); err != nil {
			w.logger.Debug("removing workspace", "path", w.dir, "err", err)
		}
		w.dir = ""
	}
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %q: %w", src, err)
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
		return fmt.Errorf("copying %q: %w", src, err)
	}
	return nil
}
