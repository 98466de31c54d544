package audio

// Frame is one fixed-size slice of time-domain samples.
type Frame struct {
	Samples    []float64
	SampleRate float64
}

// Capture is the microphone-shaped boundary. Start acquires the device (or
// opens the source), Read hands out one frame per call, and Stop must always
// release the underlying resource — skipping it leaks the device and leaves
// the OS recording indicator on.
type Capture interface {
	Start() error
	Read() (Frame, error)
	SampleRate() float64
	Stop() error
}
