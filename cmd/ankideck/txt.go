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
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ankideck/flashcards"
)

func txtCommand() *cli.Command {
	return &cli.Command{
		Name:  "txt",
		Usage: "generate a text flashcards file",
		Description: "Writes a tab separated flashcards file that can be imported into\n" +
			"Anki with a note type having Front, Back, Transcription and Sound fields.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Usage:   "write flashcards to `FILE`",
				Aliases: []string{"o"},
				Value:   "flashcards.txt",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "write definitions as plain text instead of HTML",
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 0 {
				return onUsageError(c, errUnexpectedArgs, true)
			}

			w := flashcards.NewFileWriter(c.String("out"), &flashcards.WriterOptions{
				Plain: c.Bool("plain"),
			})
			return generate(c, w, false)
		},
	}
}
