package model

import "time"

// NoteInput is a named note with an absolute midi pitch, the unit the
// identifier works on.
type NoteInput struct {
	Name  string `json:"name"`
	Pitch uint8  `json:"pitch"`
}

type ChordCandidate struct {
	Root         string  `json:"root"`
	Type         string  `json:"type"`
	Pitches      []uint8 `json:"pitches"`
	Bass         string  `json:"bass"`
	IsSlash      bool    `json:"is_slash"`
	IsSuggestion bool    `json:"is_suggestion"`
}

// Label renders the usual chord symbol, e.g. "Cmaj" or "Cmaj/G".
func (c ChordCandidate) Label() string {
	label := c.Root + c.Type
	if c.IsSlash {
		label += "/" + c.Bass
	}
	return label
}

type ChordRecord struct {
	ChordCandidate
	Count    int
	LastSeen time.Time
}
