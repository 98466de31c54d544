package note

import (
	"sort"
	"time"

	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/model"
)

// Tracker accumulates pitch estimates into note events keyed by
// (name, octave). It never evicts on its own; removal is always an explicit
// call by the owner.
type Tracker struct {
	ConfidenceThreshold float64

	events map[string]*model.NoteEvent
	now    func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		ConfidenceThreshold: constants.ObserveConfidenceThreshold,
		events:              make(map[string]*model.NoteEvent),
		now:                 time.Now,
	}
}

// Observe folds one estimate into the tracker. It returns a copy of the
// affected event and whether this call created it; estimates at or below the
// confidence threshold return nil.
func (t *Tracker) Observe(est model.PitchEstimate) (*model.NoteEvent, bool) {
	if est.Confidence <= t.ConfidenceThreshold {
		return nil, false
	}
	name, octave, midi := FromFrequency(est.Frequency)
	return t.observe(name, octave, midi, est.Confidence)
}

// ObserveMidi feeds the tracker from a source that already knows the pitch,
// like a MIDI keyboard.
func (t *Tracker) ObserveMidi(midi uint8, confidence float64) (*model.NoteEvent, bool) {
	return t.observe(NameForMidi(midi), OctaveForMidi(midi), midi, confidence)
}

func (t *Tracker) observe(name string, octave int, midi uint8, confidence float64) (*model.NoteEvent, bool) {
	now := t.now()
	key := model.NoteEvent{Name: name, Octave: octave}.Key()

	evt, ok := t.events[key]
	if !ok {
		evt = &model.NoteEvent{
			Name:         name,
			Octave:       octave,
			Midi:         midi,
			Confidence:   confidence,
			FirstSeen:    now,
			LastSeen:     now,
			SustainCount: 1,
		}
		t.events[key] = evt
		copied := *evt
		return &copied, true
	}

	evt.SustainCount++
	evt.LastSeen = now
	if confidence > evt.Confidence {
		evt.Confidence = confidence
	}
	copied := *evt
	return &copied, false
}

// Sustained returns events whose count exceeds threshold, ordered by count
// descending (midi ascending on ties, so the order is stable).
func (t *Tracker) Sustained(threshold int) []model.NoteEvent {
	var res []model.NoteEvent
	for _, evt := range t.events {
		if evt.SustainCount > threshold {
			res = append(res, *evt)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].SustainCount != res[j].SustainCount {
			return res[i].SustainCount > res[j].SustainCount
		}
		return res[i].Midi < res[j].Midi
	})
	return res
}

func (t *Tracker) Len() int {
	return len(t.events)
}

func (t *Tracker) Remove(name string, octave int) {
	delete(t.events, model.NoteEvent{Name: name, Octave: octave}.Key())
}

func (t *Tracker) RemoveMidi(midi uint8) {
	t.Remove(NameForMidi(midi), OctaveForMidi(midi))
}

// Evict drops events not seen within maxAge and reports how many went. The
// tracker never calls this itself; schedule it if stale notes are a problem.
func (t *Tracker) Evict(maxAge time.Duration) int {
	cutoff := t.now().Add(-maxAge)
	var evicted int
	for key, evt := range t.events {
		if evt.LastSeen.Before(cutoff) {
			delete(t.events, key)
			evicted++
		}
	}
	return evicted
}

func (t *Tracker) Clear() {
	t.events = make(map[string]*model.NoteEvent)
}
