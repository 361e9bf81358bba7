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


package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-ankideck/internal/testutil"
)

func TestRead(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []string
		err      error
	}{
		{
			name:     "simple",
			input:    "apple\nbanana\n",
			expected: []string{"apple", "banana"},
		},
		{
			name:     "folded",
			input:    "  Apple \r\nBANANA\nice   cream\n",
			expected: []string{"apple", "banana", "ice cream"},
		},
		{
			name:     "blank lines",
			input:    "\n\napple\n   \n\nbanana",
			expected: []string{"apple", "banana"},
		},
		{
			name:     "duplicates",
			input:    "apple\nApple\nAPPLE\n",
			expected: []string{"apple"},
		},
		{
			name:     "apostrophe",
			input:    "don&apos;t\n",
			expected: []string{"don't"},
		},
		{
			name:  "empty",
			input: "",
			err:   ErrEmpty,
		},
		{
			name:  "only blank lines",
			input: "\n  \n\t\n",
			err:   ErrEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			set, err := Read(strings.NewReader(tc.input))
			if got, want := err, tc.err; !errors.Is(got, want) {
				t.Fatalf("unexpected error, got: %v, want: %v", got, want)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tc.expected, set.Words()); diff != "" {
				t.Errorf("unexpected words (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		set, err := Open(testutil.MakeWordsFile(t, "apple", "", "qwxyz"))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if diff := cmp.Diff([]string{"apple", "qwxyz"}, set.Words()); diff != "" {
			t.Errorf("unexpected words (-want, +got):\n%s", diff)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		_, err := Open(testutil.MakeWordsFile(t))
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("unexpected error, got: %v, want: %v", err, ErrEmpty)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, err := Open(filepath.Join(t.TempDir(), "words.txt"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("unexpected error, got: %v, want: %v", err, os.ErrNotExist)
		}
	})
}
