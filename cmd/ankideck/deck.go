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
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ankideck/apkg"
)

var errUnexpectedArgs = errors.New("unexpected number of arguments")

// deckPath validates the extension of a package path. A path without an
// extension gets the package extension.
func deckPath(path string) (string, error) {
	switch ext := filepath.Ext(path); ext {
	case "":
		return path + apkg.Ext, nil
	case apkg.Ext:
		return path, nil
	default:
		return "", fmt.Errorf("%w: %q, must be %s", ErrInvalidExtension, ext, apkg.Ext)
	}
}

func deckCommand() *cli.Command {
	return &cli.Command{
		Name:      "deck",
		Usage:     "generate an Anki package",
		ArgsUsage: "OUT",
		Description: "Writes an Anki package (.apkg) with a note for each word. Audio files\n" +
			"are copied into the package when an audio directory is given.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "deck-name",
				Usage:   "name the deck `NAME` (default: the output file name)",
				Aliases: []string{"n"},
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return onUsageError(c, errUnexpectedArgs, true)
			}

			out, err := deckPath(c.Args().First())
			if err != nil {
				return err
			}

			e := getEnv(c)
			w := apkg.NewWriter(out, &apkg.WriterOptions{
				DeckName: c.String("deck-name"),
				AudioDir: e.cfg.Input.Audio,
				Logger:   e.logger,
			})
			defer w.Close()

			// Cards can only reference audio files that are copied into the
			// package.
			return generate(c, w, e.cfg.Input.Audio == "")
		},
	}
}
