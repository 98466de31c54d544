package key

import (
	"testing"

	"github.com/jsphweid/chordsense/chord"
	"github.com/jsphweid/chordsense/model"
	"github.com/stretchr/testify/assert"
)

func noteEvent(name string, midi int) model.NoteEvent {
	return model.NoteEvent{Name: name, Midi: uint8(midi), SustainCount: 3}
}

func TestSuggestDiatonicDegrees(t *testing.T) {
	dict := chord.DefaultDictionary()
	cMajor := Context{Root: "C", Type: "major"}

	cases := []struct {
		name     string
		midi     int
		expected string
	}{
		{"C", 60, "maj7"},
		{"D", 62, "min7"}, // the ii chord
		{"E", 64, "min7"},
		{"F", 65, "maj7"},
		{"G", 67, "7"},
		{"A", 69, "min7"},
		{"B", 71, "m7b5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert := assert.New(t)
			got := Suggest(noteEvent(c.name, c.midi), cMajor, dict)
			if got == nil {
				t.Fatalf("no suggestion for %v", c.name)
			}
			assert.Equal(c.expected, got.Type)
			assert.Equal(c.name, got.Root)
			assert.True(got.IsSuggestion)
		})
	}
}

func TestSuggestBuildsPitchesFromNote(t *testing.T) {
	assert := assert.New(t)

	got := Suggest(noteEvent("D", 62), Context{Root: "C", Type: "major"}, chord.DefaultDictionary())
	if got == nil {
		t.Fatal("no suggestion")
	}
	assert.Equal([]uint8{62, 65, 69, 72}, got.Pitches)
	assert.Equal("D", got.Bass)
	assert.False(got.IsSlash)
}

func TestSuggestNonScaleMemberFallsBackToDim7(t *testing.T) {
	assert := assert.New(t)

	got := Suggest(noteEvent("C#", 61), Context{Root: "C", Type: "major"}, chord.DefaultDictionary())
	if got == nil {
		t.Fatal("no suggestion")
	}
	assert.Equal("dim7", got.Type)
	assert.Equal("C#", got.Root)
	assert.True(got.IsSuggestion)
}

func TestSuggestMinorKey(t *testing.T) {
	assert := assert.New(t)
	dict := chord.DefaultDictionary()
	aMinor := Context{Root: "A", Type: "minor"}

	got := Suggest(noteEvent("A", 69), aMinor, dict)
	if got == nil {
		t.Fatal("no suggestion")
	}
	assert.Equal("min7", got.Type)

	got = Suggest(noteEvent("B", 71), aMinor, dict)
	if got == nil {
		t.Fatal("no suggestion")
	}
	assert.Equal("m7b5", got.Type)
}

func TestSuggestClampsPitchesToMidiCeiling(t *testing.T) {
	assert := assert.New(t)

	// F9 (midi 125): the maj7 on it would run past 127
	got := Suggest(noteEvent("F", 125), Context{Root: "C", Type: "major"}, chord.DefaultDictionary())
	if got == nil {
		t.Fatal("no suggestion")
	}
	assert.Equal("maj7", got.Type)
	for _, p := range got.Pitches {
		assert.LessOrEqual(p, uint8(127))
	}
	assert.Equal(uint8(125), got.Pitches[0])
}

func TestSuggestUnknownKeyTypeReturnsNil(t *testing.T) {
	assert := assert.New(t)
	got := Suggest(noteEvent("C", 60), Context{Root: "C", Type: "phrygian"}, chord.DefaultDictionary())
	assert.Nil(got)
}
