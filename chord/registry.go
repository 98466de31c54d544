package chord

import (
	"fmt"
	"sort"
	"time"

	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/model"
	"github.com/jsphweid/chordsense/util"
)

// Registry owns the chord records of one detection session. Not safe for
// concurrent use; everything happens inside the session tick.
type Registry struct {
	dict    Dictionary
	records map[string]*model.ChordRecord
	now     func() time.Time
}

func NewRegistry(dict Dictionary) *Registry {
	return &Registry{
		dict:    dict,
		records: make(map[string]*model.ChordRecord),
		now:     time.Now,
	}
}

func recordKey(c model.ChordCandidate) string {
	pitches := make([]uint8, len(c.Pitches))
	copy(pitches, c.Pitches)
	return fmt.Sprintf("%v|%v|%v", c.Root, c.Type, CreateChordKey(pitches))
}

// IdentifyFromSustainedSet runs the combinatorial search over the given
// sustained notes: keep the top notes by count, try every 2-, 3- and 4-note
// subset independently, and fold each match into the registry. Larger
// subsets are deliberately skipped; past 4 notes the matches are mostly
// noise. Returns every record matched this pass plus the subset of records
// this pass created.
func (r *Registry) IdentifyFromSustainedSet(notes []model.NoteEvent) (matched []model.ChordRecord, created []model.ChordRecord) {
	if len(notes) < 2 {
		return nil, nil
	}

	ranked := make([]model.NoteEvent, len(notes))
	copy(ranked, notes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SustainCount > ranked[j].SustainCount
	})
	if len(ranked) > constants.MaxSustainedNotes {
		ranked = ranked[:constants.MaxSustainedNotes]
	}

	inputs := make([]model.NoteInput, len(ranked))
	for i, evt := range ranked {
		inputs[i] = model.NoteInput{Name: evt.Name, Pitch: evt.Midi}
	}

	now := r.now()
	seen := make(map[string]bool)
	var matchedKeys, createdKeys []string
	maxSize := util.Min(len(inputs), constants.MaxSubsetSize)
	for size := 2; size <= maxSize; size++ {
		for _, subset := range combinations(inputs, size) {
			for _, c := range Identify(subset, r.dict) {
				key := recordKey(c)
				rec, ok := r.records[key]
				if !ok {
					rec = &model.ChordRecord{ChordCandidate: c}
					r.records[key] = rec
					createdKeys = append(createdKeys, key)
				}
				rec.Count++
				rec.LastSeen = now
				if !seen[key] {
					seen[key] = true
					matchedKeys = append(matchedKeys, key)
				}
			}
		}
	}

	for _, key := range matchedKeys {
		matched = append(matched, *r.records[key])
	}
	for _, key := range createdKeys {
		created = append(created, *r.records[key])
	}
	return matched, created
}

func combinations(notes []model.NoteInput, size int) [][]model.NoteInput {
	var res [][]model.NoteInput
	var walk func(start int, curr []model.NoteInput)
	walk = func(start int, curr []model.NoteInput) {
		if len(curr) == size {
			subset := make([]model.NoteInput, size)
			copy(subset, curr)
			res = append(res, subset)
			return
		}
		for i := start; i < len(notes); i++ {
			walk(i+1, append(curr, notes[i]))
		}
	}
	walk(0, nil)
	return res
}

func (r *Registry) Records() []model.ChordRecord {
	var res []model.ChordRecord
	for _, key := range util.SortedKeys(r.records) {
		res = append(res, *r.records[key])
	}
	return res
}

func (r *Registry) Len() int {
	return len(r.records)
}

func (r *Registry) Clear() {
	r.records = make(map[string]*model.ChordRecord)
}
