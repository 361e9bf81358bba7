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


package apkg

const (
	collectionName = "collection.anki2"
	manifestName   = "media"

	// schemaVersion is the version of the collection schema.
	schemaVersion = 11

	colTable   = "col"
	notesTable = "notes"
	cardsTable = "cards"

	// fieldSep separates note fields in the flds column.
	fieldSep = "\x1f"
)

var createTables = []string{
	`CREATE TABLE cards (
		id     integer primary key,
		nid    integer not null,
		did    integer not null,
		ord    integer not null,
		mod    integer not null,
		usn    integer not null,
		type   integer not null,
		queue  integer not null,
		due    integer not null,
		ivl    integer not null,
		factor integer not null,
		reps   integer not null,
		lapses integer not null,
		left   integer not null,
		odue   integer not null,
		odid   integer not null,
		flags  integer not null,
		data   text not null
	)`,
	`CREATE TABLE col (
		id     integer primary key,
		crt    integer not null,
		mod    integer not null,
		scm    integer not null,
		ver    integer not null,
		dty    integer not null,
		usn    integer not null,
		ls     integer not null,
		conf   text not null,
		models text not null,
		decks  text not null,
		dconf  text not null,
		tags   text not null
	)`,
	`CREATE TABLE graves (
		usn  integer not null,
		oid  integer not null,
		type integer not null
	)`,
	`CREATE TABLE notes (
		id    integer primary key,
		guid  text not null,
		mid   integer not null,
		mod   integer not null,
		usn   integer not null,
		tags  text not null,
		flds  text not null,
		sfld  integer not null,
		csum  integer not null,
		flags integer not null,
		data  text not null
	)`,
	`CREATE TABLE revlog (
		id      integer primary key,
		cid     integer not null,
		usn     integer not null,
		ease    integer not null,
		ivl     integer not null,
		lastIvl integer not null,
		factor  integer not null,
		time    integer not null,
		type    integer not null
	)`,
}

// createIndexes is run after all notes and cards are inserted.
var createIndexes = []string{
	"CREATE INDEX ix_cards_nid on cards (nid)",
	"CREATE INDEX ix_cards_sched on cards (did, queue, due)",
	"CREATE INDEX ix_cards_usn on cards (usn)",
	"CREATE INDEX ix_notes_csum on notes (csum)",
	"CREATE INDEX ix_notes_usn on notes (usn)",
	"CREATE INDEX ix_revlog_cid on revlog (cid)",
	"CREATE INDEX ix_revlog_usn on revlog (usn)",
	"ANALYZE",
}
