package note

import (
	"testing"
	"time"

	"github.com/jsphweid/chordsense/model"
	"github.com/stretchr/testify/assert"
)

func TestFromFrequency(t *testing.T) {
	assert := assert.New(t)

	name, octave, midi := FromFrequency(440)
	assert.Equal("A", name)
	assert.Equal(4, octave)
	assert.Equal(uint8(69), midi)

	name, octave, midi = FromFrequency(261.63)
	assert.Equal("C", name)
	assert.Equal(4, octave)
	assert.Equal(uint8(60), midi)

	// slightly flat still snaps to the nearest note
	name, _, _ = FromFrequency(435)
	assert.Equal("A", name)
}

func TestObserveBelowThresholdReturnsNil(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker()

	evt, created := tr.Observe(model.PitchEstimate{Frequency: 440, Confidence: 0.3})
	assert.Nil(evt)
	assert.False(created)
	assert.Equal(0, tr.Len())
}

func TestRepeatedObservationsIncrementAndKeepMaxConfidence(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker()

	evt, created := tr.Observe(model.PitchEstimate{Frequency: 440, Confidence: 0.8})
	assert.True(created)
	assert.Equal(1, evt.SustainCount)

	evt, created = tr.Observe(model.PitchEstimate{Frequency: 440, Confidence: 0.5})
	assert.False(created)
	assert.Equal(2, evt.SustainCount)
	assert.Equal(0.8, evt.Confidence)

	evt, created = tr.Observe(model.PitchEstimate{Frequency: 440, Confidence: 0.9})
	assert.False(created)
	assert.Equal(3, evt.SustainCount)
	assert.Equal(0.9, evt.Confidence)
}

func TestSameNameDifferentOctaveAreDistinct(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker()

	_, created := tr.Observe(model.PitchEstimate{Frequency: 220, Confidence: 0.9})
	assert.True(created)
	_, created = tr.Observe(model.PitchEstimate{Frequency: 440, Confidence: 0.9})
	assert.True(created)
	assert.Equal(2, tr.Len())
}

func TestSustainedFiltersAndOrders(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker()

	for i := 0; i < 4; i++ {
		tr.ObserveMidi(60, 0.9)
	}
	for i := 0; i < 2; i++ {
		tr.ObserveMidi(64, 0.9)
	}
	tr.ObserveMidi(67, 0.9)

	sustained := tr.Sustained(1)
	assert.Len(sustained, 2)
	assert.Equal(uint8(60), sustained[0].Midi)
	assert.Equal(uint8(64), sustained[1].Midi)
}

func TestEvictAndClear(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker()

	current := time.Now()
	tr.now = func() time.Time { return current }

	tr.ObserveMidi(60, 0.9)
	current = current.Add(time.Minute)
	tr.ObserveMidi(64, 0.9)

	assert.Equal(1, tr.Evict(30*time.Second))
	assert.Equal(1, tr.Len())

	tr.Clear()
	assert.Equal(0, tr.Len())
}

func TestRemoveMidi(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker()

	tr.ObserveMidi(60, 0.9)
	tr.RemoveMidi(60)
	assert.Equal(0, tr.Len())
}
