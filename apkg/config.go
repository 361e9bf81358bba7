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

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	cardCSS = `.card {
  font-family: arial;
  font-size: 20px;
  text-align: center;
  color: black;
  background-color: white;
}
`

	latexPre = `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}
`

	latexPost = `\end{document}`

	frontFormat = `{{Front}}
<br>
{{Transcription}}
<br>
{{Sound}}
`

	backFormat = `{{FrontSide}}
<hr id=answer>
{{Back}}
`
)

// FieldNames are the names of the note fields in the order they are stored.
var FieldNames = []string{"Front", "Back", "Transcription", "Sound"}

// collectionConf is the conf column of the col table.
type collectionConf struct {
	NextPos       int     `json:"nextPos"`
	EstTimes      bool    `json:"estTimes"`
	ActiveDecks   []int64 `json:"activeDecks"`
	SortType      string  `json:"sortType"`
	TimeLim       int     `json:"timeLim"`
	SortBackwards bool    `json:"sortBackwards"`
	AddToCur      bool    `json:"addToCur"`
	CurDeck       int64   `json:"curDeck"`
	NewBury       bool    `json:"newBury"`
	NewSpread     int     `json:"newSpread"`
	DueCounts     bool    `json:"dueCounts"`
	CollapseTime  int     `json:"collapseTime"`
	CurModel      string  `json:"curModel"`
}

// noteModel is a note type stored in the models column of the col table.
type noteModel struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	DeckID    int64          `json:"did"`
	Mod       int64          `json:"mod"`
	Vers      []int          `json:"vers"`
	Tags      []string       `json:"tags"`
	USN       int            `json:"usn"`
	Req       [][]any        `json:"req"`
	Type      int            `json:"type"`
	CSS       string         `json:"css"`
	SortField int            `json:"sortf"`
	LatexPre  string         `json:"latexPre"`
	LatexPost string         `json:"latexPost"`
	Templates []cardTemplate `json:"tmpls"`
	Fields    []modelField   `json:"flds"`
}

type cardTemplate struct {
	Name                string `json:"name"`
	QuestionFormat      string `json:"qfmt"`
	DeckID              *int64 `json:"did"`
	BrowserAnswerFormat string `json:"bafmt"`
	AnswerFormat        string `json:"afmt"`
	Ord                 int    `json:"ord"`
	BrowserQuestionFmt  string `json:"bqfmt"`
}

type modelField struct {
	Name   string   `json:"name"`
	Media  []string `json:"media"`
	Sticky bool     `json:"sticky"`
	RTL    bool     `json:"rtl"`
	Ord    int      `json:"ord"`
	Font   string   `json:"font"`
	Size   int      `json:"size"`
}

// deck is a deck stored in the decks column of the col table.
type deck struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Mod              int64  `json:"mod"`
	Desc             string `json:"desc"`
	ExtendRev        int    `json:"extendRev"`
	USN              int    `json:"usn"`
	Collapsed        bool   `json:"collapsed"`
	BrowserCollapsed bool   `json:"browserCollapsed"`
	NewToday         [2]int `json:"newToday"`
	TimeToday        [2]int `json:"timeToday"`
	Dyn              int    `json:"dyn"`
	ExtendNew        int    `json:"extendNew"`
	Conf             int    `json:"conf"`
	RevToday         [2]int `json:"revToday"`
	LrnToday         [2]int `json:"lrnToday"`
}

func newCollectionConf(modelID int64) *collectionConf {
	return &collectionConf{
		NextPos:       1,
		EstTimes:      true,
		ActiveDecks:   []int64{1},
		SortType:      "noteFld",
		TimeLim:       0,
		SortBackwards: false,
		AddToCur:      true,
		CurDeck:       1,
		NewBury:       true,
		NewSpread:     0,
		DueCounts:     true,
		CollapseTime:  1200,
		CurModel:      strconv.FormatInt(modelID, 10),
	}
}

func newNoteModel(modelID, deckID int64, deckName string, mod int64) *noteModel {
	fields := make([]modelField, 0, len(FieldNames))
	for i, name := range FieldNames {
		fields = append(fields, modelField{
			Name:  name,
			Media: []string{},
			Ord:   i,
			Font:  "Arial",
			Size:  20,
		})
	}

	return &noteModel{
		ID:     strconv.FormatInt(modelID, 10),
		Name:   fmt.Sprintf("AnkiDeck-%s-%d", deckName, mod),
		DeckID: deckID,
		Mod:    mod,
		Vers:   []int{},
		Tags:   []string{},
		USN:    -1,
		// The card is generated if any of Front, Transcription or Sound is
		// non-empty.
		Req:       [][]any{{0, "any", []int{0, 2, 3}}},
		Type:      0,
		CSS:       cardCSS,
		SortField: 0,
		LatexPre:  latexPre,
		LatexPost: latexPost,
		Templates: []cardTemplate{
			{
				Name:           "Card 1",
				QuestionFormat: frontFormat,
				AnswerFormat:   backFormat,
				Ord:            0,
			},
		},
		Fields: fields,
	}
}

func newDeck(deckID int64, name string, mod int64) *deck {
	return &deck{
		ID:               deckID,
		Name:             name,
		Mod:              mod,
		ExtendRev:        50,
		USN:              -1,
		BrowserCollapsed: true,
		ExtendNew:        10,
		Conf:             1,
	}
}

// collectionConfig holds the JSON encoded configuration columns of the col
// table.
type collectionConfig struct {
	conf   string
	models string
	decks  string
}

func newCollectionConfig(modelID, deckID int64, deckName string, mod int64) (*collectionConfig, error) {
	conf, err := json.Marshal(newCollectionConf(modelID))
	if err != nil {
		return nil, fmt.Errorf("encoding conf: %w", err)
	}

	models, err := json.Marshal(map[string]*noteModel{
		strconv.FormatInt(modelID, 10): newNoteModel(modelID, deckID, deckName, mod),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding models: %w", err)
	}

	decks, err := json.Marshal(map[string]*deck{
		strconv.FormatInt(deckID, 10): newDeck(deckID, deckName, mod),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding decks: %w", err)
	}

	return &collectionConfig{
		conf:   string(conf),
		models: string(models),
		decks:  string(decks),
	}, nil
}
