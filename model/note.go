package model

import (
	"fmt"
	"time"
)

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// PitchEstimate is one frame's worth of fundamental-frequency estimation.
type PitchEstimate struct {
	Frequency  float64
	Confidence float64
}

// NoteEvent tracks one (name, octave) over repeated detections.
type NoteEvent struct {
	Name         string
	Octave       int
	Midi         uint8
	Confidence   float64
	FirstSeen    time.Time
	LastSeen     time.Time
	SustainCount int
}

func (n NoteEvent) Key() string {
	return fmt.Sprintf("%v%v", n.Name, n.Octave)
}
