package key

import (
	"github.com/jsphweid/chordsense/chord"
	"github.com/jsphweid/chordsense/model"
	"github.com/jsphweid/chordsense/note"
	"github.com/jsphweid/chordsense/util"
)

// Context is the read-only key the caller is playing in.
type Context struct {
	Root string
	Type string
}

var scaleIntervals = map[string][]int{
	"major": {0, 2, 4, 5, 7, 9, 11},
	"minor": {0, 2, 3, 5, 7, 8, 10},
}

// Seventh chord built on each scale degree, indexed by diatonic degree.
var diatonicSevenths = map[string][7]string{
	"major": {"maj7", "min7", "min7", "maj7", "7", "min7", "m7b5"},
	"minor": {"min7", "m7b5", "maj7", "min7", "min7", "maj7", "7"},
}

// Degree locates a pitch class's 0-based position in the key's scale,
// returning false for non-members and unknown key types.
func Degree(pitchClass int, kc Context) (int, bool) {
	rootClass, ok := note.PitchClass(kc.Root)
	if !ok {
		return 0, false
	}
	intervals, ok := scaleIntervals[kc.Type]
	if !ok {
		return 0, false
	}
	for degree, interval := range intervals {
		if (rootClass+interval)%12 == pitchClass {
			return degree, true
		}
	}
	return 0, false
}

// Suggest infers a chord from a single sustained note and the key context:
// the diatonic seventh on the note's degree, or a diminished seventh rooted
// at the note when it is outside the scale (the universal fallback). Unknown
// key or chord types return nil rather than erroring. The result is always
// marked as a suggestion.
func Suggest(n model.NoteEvent, kc Context, dict chord.Dictionary) *model.ChordCandidate {
	if _, ok := scaleIntervals[kc.Type]; !ok {
		return nil
	}

	chordType := "dim7"
	if degree, ok := Degree(int(n.Midi%12), kc); ok {
		chordType = diatonicSevenths[kc.Type][degree]
	}

	intervals, ok := dict[chordType]
	if !ok {
		return nil
	}

	pitches := make([]uint8, len(intervals))
	for i, interval := range intervals {
		// roots near the top of the midi range clamp rather than spill
		// past 127
		pitches[i] = uint8(util.Min(int(n.Midi)+interval, 127))
	}
	return &model.ChordCandidate{
		Root:         n.Name,
		Type:         chordType,
		Pitches:      pitches,
		Bass:         n.Name,
		IsSuggestion: true,
	}
}
