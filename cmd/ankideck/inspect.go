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


package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ankideck/apkg"
	"github.com/ianlewis/go-ankideck/flashcards"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:         "inspect",
		Usage:        "print the notes of an Anki package",
		ArgsUsage:    "APKG",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return onUsageError(c, errUnexpectedArgs, true)
			}

			p, err := apkg.Open(c.Args().First())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAnkideck, err)
			}

			tbl := table.New("Word", "Definition", "Transcription", "Sound").
				WithWriter(c.App.Writer)
			for _, n := range p.Notes {
				tbl.AddRow(
					n.Field("Front"),
					flashcards.PlainText(n.Field("Back")),
					n.Field("Transcription"),
					n.Field("Sound"),
				)
			}
			tbl.Print()

			_, err = fmt.Fprintf(c.App.Writer, "\nDecks:  %v\nNotes:  %d\nCards:  %d\nMedia:  %d\n",
				p.Decks, len(p.Notes), len(p.Cards), len(p.Media))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAnkideck, err)
			}
			return nil
		},
	}
}
