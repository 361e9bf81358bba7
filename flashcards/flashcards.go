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


// Package flashcards writes flashcards as a tab separated text file that can
// be imported into Anki.
//
// Each line of the file holds the fields of one note:
//
//	<word> TAB <definition> TAB <transcription> TAB <sound>
//
// To import the file create a note type with the fields Front, Back,
// Transcription and Sound.
//
// Front Template:
//
//	{{Front}}
//	<br>
//	{{Transcription}}
//	<br>
//	{{Sound}}
//
// Back Template:
//
//	{{FrontSide}}
//	<hr id=answer>
//	{{Back}}
//
// Then go to File->Import, select the flashcards file and map the fields in
// order.
package flashcards

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-ankideck"
)

// Separator separates the fields of a line.
const Separator = "\t"

// WriterOptions are options for a Writer.
type WriterOptions struct {
	// Plain renders definitions as plain text instead of markup.
	Plain bool
}

// Writer writes cards as lines of a flashcards file. It implements
// [ankideck.CardSink].
type Writer struct {
	w     io.Writer
	plain bool

	// create opens the output on Start. It is nil if the output was given to
	// NewWriter.
	create func() (io.WriteCloser, error)
	out    io.WriteCloser
	bw     *bufio.Writer

	state ankideck.SinkState
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer, opts *WriterOptions) *Writer {
	fw := &Writer{w: w}
	if opts != nil {
		fw.plain = opts.Plain
	}
	return fw
}

// NewFileWriter returns a Writer that writes to the file at path. The file is
// created, or truncated, on Start.
func NewFileWriter(path string, opts *WriterOptions) *Writer {
	fw := NewWriter(nil, opts)
	fw.create = func() (io.WriteCloser, error) {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating %q: %w", path, err)
		}
		return f, nil
	}
	return fw
}

// Start opens the output.
func (w *Writer) Start() error {
	if err := w.state.Start(); err != nil {
		return err
	}

	out := w.w
	if w.create != nil {
		f, err := w.create()
		if err != nil {
			w.state = ankideck.Finished
			return err
		}
		w.out = f
		out = f
	}
	w.bw = bufio.NewWriter(out)
	return nil
}

// Handle writes a line for the card.
func (w *Writer) Handle(card *ankideck.Card) error {
	if err := w.state.Check(); err != nil {
		return err
	}

	definition := card.Definition()
	if w.plain {
		definition = PlainText(definition)
	}

	line := strings.Join([]string{
		card.Word(),
		definition,
		card.Transcription(),
		card.SoundTag(),
	}, Separator)
	if _, err := w.bw.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("writing flashcard %q: %w", card.Word(), err)
	}
	return nil
}

// Finish flushes the output and closes it if it was opened by the Writer.
func (w *Writer) Finish() error {
	if err := w.state.Finish(); err != nil {
		return err
	}

	if err := w.bw.Flush(); err != nil {
		_ = w.closeOutput()
		return fmt.Errorf("writing flashcards: %w", err)
	}
	return w.closeOutput()
}

// Close closes the output without flushing buffered lines.
func (w *Writer) Close() error {
	if w.state == ankideck.Started {
		w.state = ankideck.Finished
	}
	return w.closeOutput()
}

func (w *Writer) closeOutput() error {
	if w.out == nil {
		return nil
	}
	out := w.out
	w.out = nil
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing flashcards: %w", err)
	}
	return nil
}

// PlainText renders a definition as single-line plain text.
func PlainText(definition string) string {
	text := html2text.HTML2Text(definition)
	return strings.Join(strings.Fields(text), " ")
}
