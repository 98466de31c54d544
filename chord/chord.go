package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordsense/model"
	"github.com/jsphweid/chordsense/util"
)

// CreateChordKey renders a pitch set as a stable registry key, e.g.
// "60-64-67".
func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, n := range notes {
		res += fmt.Sprintf("%v", n)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

// Identify matches one note set against the dictionary, trying every member
// as the root. Symmetric chords legitimately match under several roots and
// every reading is kept; the caller gets them ranked by commonness, most
// probable first. Returns nil when nothing matches or fewer than 2 notes are
// given.
func Identify(notes []model.NoteInput, dict Dictionary) []model.ChordCandidate {
	if len(notes) < 2 {
		return nil
	}

	bass := notes[0]
	for _, n := range notes[1:] {
		if n.Pitch < bass.Pitch {
			bass = n
		}
	}
	bassClass := int(bass.Pitch % 12)

	pitches := make([]uint8, len(notes))
	for i, n := range notes {
		pitches[i] = n.Pitch
	}
	sortedPitches := make([]uint8, len(pitches))
	copy(sortedPitches, pitches)
	sort.Slice(sortedPitches, func(i, j int) bool {
		return sortedPitches[i] < sortedPitches[j]
	})

	typeNames := util.SortedKeys(dict)

	var candidates []model.ChordCandidate
	for _, root := range notes {
		intervals := make([]int, len(notes))
		for i, n := range notes {
			intervals[i] = int((int(n.Pitch)-int(root.Pitch))%12+12) % 12
		}
		sort.Ints(intervals)

		for _, typeName := range typeNames {
			if !intervalsEqual(intervals, dict[typeName]) {
				continue
			}
			c := model.ChordCandidate{
				Root:    root.Name,
				Type:    typeName,
				Pitches: sortedPitches,
				Bass:    bass.Name,
			}
			// pitch class, not octave, decides slash: a root doubled an
			// octave down is still a plain chord
			if int(root.Pitch%12) != bassClass {
				c.IsSlash = true
			}
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return priorityOf(candidates[i].Type) < priorityOf(candidates[j].Type)
	})
	return candidates
}

// exact multiset equality; no subset or superset matching
func intervalsEqual(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
