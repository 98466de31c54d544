package audio

import (
	"io"
	"math"

	"github.com/jsphweid/chordsense/constants"
)

// SineCapture generates frames of a pure tone. Handy for demos and for
// exercising the pipeline without a device.
type SineCapture struct {
	Frequency float64
	Rate      float64
	Amplitude float64
	MaxFrames int // 0 means no limit

	phase float64
	read  int
}

func NewSineCapture(frequency float64, maxFrames int) *SineCapture {
	return &SineCapture{
		Frequency: frequency,
		Rate:      44100,
		Amplitude: 0.5,
		MaxFrames: maxFrames,
	}
}

func (s *SineCapture) Start() error {
	return nil
}

func (s *SineCapture) Read() (Frame, error) {
	if s.MaxFrames > 0 && s.read >= s.MaxFrames {
		return Frame{}, io.EOF
	}
	s.read++

	samples := make([]float64, constants.FrameSize)
	step := 2 * math.Pi * s.Frequency / s.Rate
	for i := range samples {
		samples[i] = s.Amplitude * math.Sin(s.phase)
		s.phase += step
	}
	return Frame{Samples: samples, SampleRate: s.Rate}, nil
}

func (s *SineCapture) SampleRate() float64 {
	return s.Rate
}

func (s *SineCapture) Stop() error {
	return nil
}
