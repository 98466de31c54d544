package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jsphweid/chordsense/audio"
	"github.com/jsphweid/chordsense/chord"
	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/key"
	"github.com/jsphweid/chordsense/model"
	"github.com/jsphweid/chordsense/note"
	"github.com/jsphweid/chordsense/pitch"
)

// Listener receives detection callbacks. All callbacks fire synchronously
// inside the tick, in registration order.
type Listener interface {
	OnNoteDetected(model.NoteEvent)
	OnChordDetected(model.ChordRecord)
	OnStatusUpdate(msg string, severity model.Severity)
}

// Session is one detection run over one capture source. It owns its tracker
// and registry; nothing here is process-global, and nothing here is safe to
// touch from a second goroutine.
type Session struct {
	Estimator        *pitch.Estimator
	Tracker          *note.Tracker
	Registry         *chord.Registry
	Dictionary       chord.Dictionary
	KeyContext       *key.Context
	SustainThreshold int

	capture   audio.Capture
	listeners []Listener
	suggested map[string]bool
	running   bool
}

func New(capture audio.Capture) *Session {
	dict := chord.DefaultDictionary()
	return &Session{
		Estimator:        pitch.NewEstimator(),
		Tracker:          note.NewTracker(),
		Registry:         chord.NewRegistry(dict),
		Dictionary:       dict,
		SustainThreshold: constants.SustainThreshold,
		capture:          capture,
		suggested:        make(map[string]bool),
	}
}

func (s *Session) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) status(msg string, severity model.Severity) {
	for _, l := range s.listeners {
		l.OnStatusUpdate(msg, severity)
	}
}

// Start acquires the capture source. Acquisition failure is reported once
// via the status callback and the session stays stopped; there is no retry.
func (s *Session) Start() error {
	if s.running {
		return nil
	}
	if err := s.capture.Start(); err != nil {
		s.status("could not start capture: "+err.Error(), model.SeverityError)
		return err
	}
	s.running = true
	s.status("listening", model.SeverityInfo)
	return nil
}

func (s *Session) Running() bool {
	return s.running
}

// Tick runs one synchronous estimation pass: read a frame, estimate,
// observe, and re-analyze when the note picture changed. A frame that fails
// any of the estimation gates is simply not an event.
func (s *Session) Tick() {
	if !s.running {
		return
	}

	frame, err := s.capture.Read()
	if err == io.EOF {
		s.status("capture drained", model.SeverityInfo)
		s.Stop()
		return
	}
	if err != nil {
		s.status("capture read failed: "+err.Error(), model.SeverityError)
		s.Stop()
		return
	}

	est := s.Estimator.Estimate(frame)
	if est == nil {
		return
	}

	evt, created := s.Tracker.Observe(*est)
	if evt == nil {
		return
	}
	if created {
		for _, l := range s.listeners {
			l.OnNoteDetected(*evt)
		}
	}
	// re-analyze when a note appears or becomes chord-eligible
	if created || evt.SustainCount == s.SustainThreshold+1 {
		s.analyze()
	}
}

func (s *Session) analyze() {
	sustained := s.Tracker.Sustained(s.SustainThreshold)

	if len(sustained) >= 2 {
		_, createdRecs := s.Registry.IdentifyFromSustainedSet(sustained)
		for _, rec := range createdRecs {
			for _, l := range s.listeners {
				l.OnChordDetected(rec)
			}
		}
		return
	}

	// a single sustained note with no possible match: fall back to the key
	// context, if the caller gave one
	if len(sustained) == 1 && s.KeyContext != nil {
		c := key.Suggest(sustained[0], *s.KeyContext, s.Dictionary)
		if c == nil {
			return
		}
		// like registry records, a suggestion is announced once
		suggestionKey := fmt.Sprintf("%v|%v", c.Label(), c.Pitches)
		if s.suggested[suggestionKey] {
			return
		}
		s.suggested[suggestionKey] = true
		rec := model.ChordRecord{ChordCandidate: *c, Count: 1, LastSeen: sustained[0].LastSeen}
		for _, l := range s.listeners {
			l.OnChordDetected(rec)
		}
	}
}

// Run drives Tick from a single loop until ctx is done or the source
// drains. One tick per interval stands in for the display-refresh callback
// of an interactive host.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	if !s.running {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return
		case <-ticker.C:
			s.Tick()
			if !s.running {
				return
			}
		}
	}
}

// Stop cancels further ticks and releases the capture source. Note and
// chord registries are left intact; clearing them is Clear's job.
func (s *Session) Stop() {
	if !s.running {
		return
	}
	s.running = false
	if err := s.capture.Stop(); err != nil {
		s.status("could not stop capture: "+err.Error(), model.SeverityError)
		return
	}
	s.status("stopped", model.SeverityInfo)
}

// Clear wipes the note and chord registries. Separate from Stop on purpose.
func (s *Session) Clear() {
	s.Tracker.Clear()
	s.Registry.Clear()
	s.suggested = make(map[string]bool)
}
