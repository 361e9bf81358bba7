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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ankideck/internal/config"
	"github.com/ianlewis/go-ankideck/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrAnkideck is a parent error for all command errors.
var ErrAnkideck = errors.New("ankideck")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrAnkideck)

// ErrNoDictionary indicates that no dictionary was given.
var ErrNoDictionary = fmt.Errorf("%w: no dictionary, use --dict or --input-dir", ErrAnkideck)

// ErrInvalidExtension indicates that a package path has the wrong extension.
var ErrInvalidExtension = fmt.Errorf("%w: invalid deck file extension", ErrAnkideck)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

// envKey is the App.Metadata key of the command environment.
const envKey = "env"

// env is the configuration and logger shared by all commands.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Use -V for the version so that -v is free.
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print version information and exit",
		Aliases:            []string{"V"},
		DisableDefaultText: true,
	}
	cli.VersionPrinter = func(c *cli.Context) {
		check(printVersion(c))
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// onUsageError wraps flag parsing errors so they produce the right exit code.
func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// getEnv returns the command environment created by loadEnv.
func getEnv(c *cli.Context) *env {
	//nolint:forcetypeassert // Always set by loadEnv.
	return c.App.Metadata[envKey].(*env)
}

// loadEnv loads the configuration, applies the global flags and creates the
// logger.
func loadEnv(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAnkideck, err)
	}

	// Flags override the configuration.
	for name, dst := range map[string]*string{
		"input-dir":  &cfg.Input.Dir,
		"dict":       &cfg.Input.Dict,
		"audio":      &cfg.Input.Audio,
		"words":      &cfg.Input.Words,
		"log-level":  &cfg.Log.Level,
		"log-format": &cfg.Log.Format,
	} {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	cfg.Input.Resolve()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	c.App.Metadata[envKey] = &env{
		cfg:    cfg,
		logger: logging.New(c.App.ErrWriter, cfg.Log),
	}
	return nil
}

func newAnkideckApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Make Anki flashcards from an XDXF dictionary.",
		Description: strings.Join([]string{
			"Generates flashcards for the words in a word list from an XDXF",
			"dictionary and writes them as a text file or an Anki package.",
			"http://github.com/ianlewis/go-ankideck",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input-dir",
				Usage:   "read '" + config.DictName + "' and '" + config.AudioDirName + "/' from `DIR`",
				Aliases: []string{"i"},
			},
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "dictionary `FILE` in XDXF format (.xdxf, .xdxf.gz or .xdxf.dz)",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:    "audio",
				Usage:   "`DIR` containing <word>.ogg audio files",
				Aliases: []string{"a"},
			},
			&cli.StringFlag{
				Name:    "words",
				Usage:   "word list `FILE` with one word per line",
				Aliases: []string{"w"},
				Value:   "words.txt",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log `FORMAT` (text, json)",
				Value: "text",
			},
		},
		Version:         versionString(),
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Before:          loadEnv,
		Action: func(c *cli.Context) error {
			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			txtCommand(),
			deckCommand(),
			inspectCommand(),
		},
	}
}
