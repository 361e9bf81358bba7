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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ankideck"
	"github.com/ianlewis/go-ankideck/wordlist"
)

// generate makes cards for the configured word list and dictionary and passes
// them to sink.
func generate(c *cli.Context, sink ankideck.CardSink, omitSound bool) error {
	e := getEnv(c)
	if e.cfg.Input.Dict == "" {
		return ErrNoDictionary
	}

	words, err := wordlist.Open(e.cfg.Input.Words)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAnkideck, err)
	}

	if _, err := ankideck.Generate(c.Context, e.cfg.Input.Dict, words, sink, &ankideck.Options{
		AudioDir:  e.cfg.Input.Audio,
		OmitSound: omitSound,
		Logger:    e.logger,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrAnkideck, err)
	}
	return nil
}
