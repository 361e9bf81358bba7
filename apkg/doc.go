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


// Package apkg writes flashcards as Anki packages.
//
// An Anki package is a zip archive containing:
//  1. collection.anki2, an SQLite database holding the notes, cards, note
//     type (model) and deck of the collection.
//  2. media, a JSON object mapping the numbered media files in the archive to
//     their original file names.
//  3. The media files themselves, named 0, 1, 2, ...
//
// More info on the collection schema can be found at this URL:
// https://github.com/ankidroid/Anki-Android/wiki/Database-Structure
package apkg
