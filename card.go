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

// SoundExt is the extension of audio files referenced by cards.
const SoundExt = ".ogg"

// Card is a flashcard for a single word.
type Card struct {
	word          string
	definition    string
	transcription string
	sound         string
}

// NewCard returns a new card. The word should already be folded with the same
// rules used for the word list.
func NewCard(word, definition, transcription, sound string) *Card {
	return &Card{
		word:          word,
		definition:    definition,
		transcription: transcription,
		sound:         sound,
	}
}

// Word returns the card's word.
func (c *Card) Word() string {
	return c.word
}

// Definition returns the card's definition as single-line markup. It may be
// empty.
func (c *Card) Definition() string {
	return c.definition
}

// Transcription returns the card's bracketed transcription or an empty
// string.
func (c *Card) Transcription() string {
	return c.transcription
}

// Sound returns the file name of the card's audio file relative to the audio
// directory or an empty string if the card has no audio.
func (c *Card) Sound() string {
	return c.sound
}

// SoundTag returns the Anki sound reference for the card's audio or an empty
// string if the card has no audio.
func (c *Card) SoundTag() string {
	if c.sound == "" {
		return ""
	}
	return "[sound:" + c.sound + "]"
}

// String returns a string representation of the Card.
func (c *Card) String() string {
	str := c.word + "\n"
	for _, s := range []string{c.transcription, c.definition, c.sound} {
		if s != "" {
			str += s + "\n"
		}
	}
	return str
}
