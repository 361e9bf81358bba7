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


package ankideck

import "errors"

var (
	// ErrAlreadyStarted is returned when a sink is started more than once.
	ErrAlreadyStarted = errors.New("sink already started")

	// ErrNotStarted is returned when cards are handled or a sink is finished
	// before it was started.
	ErrNotStarted = errors.New("sink not started")

	// ErrFinished is returned when a sink is used after it was finished.
	ErrFinished = errors.New("sink finished")
)

// CardSink consumes cards. Start is called once before any cards are handled,
// Handle is called once per card in the order the cards were produced and
// Finish is called once after the last card, even if there were no cards.
//
// A sink that also implements [io.Closer] is closed instead of finished if
// card generation fails. Close releases its resources without producing any
// output.
type CardSink interface {
	// Start prepares the sink for cards.
	Start() error

	// Handle consumes a single card.
	Handle(card *Card) error

	// Finish completes the output.
	Finish() error
}

// SinkState tracks the lifecycle of a CardSink. The zero value is a sink that
// has not been started.
type SinkState int

const (
	// Created is the state of a sink before Start.
	Created SinkState = iota

	// Started is the state of a sink between Start and Finish.
	Started

	// Finished is the state of a sink after Finish or Close.
	Finished
)

// Start moves the state to Started.
func (s *SinkState) Start() error {
	if *s != Created {
		return ErrAlreadyStarted
	}
	*s = Started
	return nil
}

// Check returns an error if the sink is not Started.
func (s SinkState) Check() error {
	switch s {
	case Created:
		return ErrNotStarted
	case Finished:
		return ErrFinished
	default:
		return nil
	}
}

// Finish moves the state to Finished. It returns an error if the sink was
// not Started.
func (s *SinkState) Finish() error {
	if err := s.Check(); err != nil {
		return err
	}
	*s = Finished
	return nil
}
