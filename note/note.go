package note

import "math"

// Names is the fixed sharps-only spelling of the 12 pitch classes.
var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchClass returns a note name's chromatic index (C=0 .. B=11).
func PitchClass(name string) (int, bool) {
	for i, n := range Names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

func NameForMidi(midi uint8) string {
	return Names[midi%12]
}

func OctaveForMidi(midi uint8) int {
	return int(midi)/12 - 1
}

// FromFrequency snaps a frequency to the nearest equal-tempered note
// (A4 = 440hz = midi 69).
func FromFrequency(freq float64) (name string, octave int, midi uint8) {
	m := int(math.Round(12*math.Log2(freq/440) + 69))
	if m < 0 {
		m = 0
	}
	if m > 127 {
		m = 127
	}
	midi = uint8(m)
	return NameForMidi(midi), OctaveForMidi(midi), midi
}
