package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordsense/constants"
)

// WavCapture streams fixed-size frames out of a 16-bit PCM WAV file, so a
// recording can be run through the same pipeline as a live device.
type WavCapture struct {
	path       string
	f          *os.File
	sampleRate float64
	channels   int
	remaining  uint32
}

func NewWavCapture(path string) *WavCapture {
	return &WavCapture{path: path}
}

func (w *WavCapture) Start() error {
	f, err := os.Open(w.path)
	if err != nil {
		return err
	}

	if err := w.readHeader(f); err != nil {
		f.Close()
		return err
	}
	w.f = f
	return nil
}

func (w *WavCapture) readHeader(f *os.File) error {
	var riff [12]byte
	if _, err := io.ReadFull(f, riff[:]); err != nil {
		return errors.New("could not read RIFF header: " + err.Error())
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return errors.New("not a WAVE file")
	}

	// walk chunks until fmt and data have both been seen
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(f, hdr[:]); err != nil {
			return errors.New("could not read chunk header: " + err.Error())
		}
		id := string(hdr[0:4])
		size := binary.LittleEndian.Uint32(hdr[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return fmt.Errorf("fmt chunk too small (%v bytes)", size)
			}
			buf := make([]byte, size)
			if _, err := io.ReadFull(f, buf); err != nil {
				return errors.New("could not read fmt chunk: " + err.Error())
			}
			format := binary.LittleEndian.Uint16(buf[0:2])
			bits := binary.LittleEndian.Uint16(buf[14:16])
			if format != 1 || bits != 16 {
				return fmt.Errorf("only 16-bit PCM supported (format=%v bits=%v)", format, bits)
			}
			w.channels = int(binary.LittleEndian.Uint16(buf[2:4]))
			w.sampleRate = float64(binary.LittleEndian.Uint32(buf[4:8]))
		case "data":
			if w.sampleRate == 0 {
				return errors.New("data chunk before fmt chunk")
			}
			w.remaining = size
			return nil
		default:
			if _, err := f.Seek(int64(size), io.SeekCurrent); err != nil {
				return err
			}
		}
	}
}

// Read returns the next full frame, mixing stereo down to mono. A trailing
// partial frame is dropped and Read reports io.EOF.
func (w *WavCapture) Read() (Frame, error) {
	bytesPerSample := 2 * w.channels
	need := constants.FrameSize * bytesPerSample
	if int(w.remaining) < need {
		return Frame{}, io.EOF
	}

	buf := make([]byte, need)
	if _, err := io.ReadFull(w.f, buf); err != nil {
		return Frame{}, io.EOF
	}
	w.remaining -= uint32(need)

	samples := make([]float64, constants.FrameSize)
	for i := 0; i < constants.FrameSize; i++ {
		var sum float64
		for c := 0; c < w.channels; c++ {
			off := (i*w.channels + c) * 2
			v := int16(binary.LittleEndian.Uint16(buf[off : off+2]))
			sum += float64(v) / 32768.0
		}
		samples[i] = sum / float64(w.channels)
	}
	return Frame{Samples: samples, SampleRate: w.sampleRate}, nil
}

func (w *WavCapture) SampleRate() float64 {
	return w.sampleRate
}

func (w *WavCapture) Stop() error {
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}
