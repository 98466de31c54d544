package audio_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordsense/audio"
	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/pitch"
	"github.com/stretchr/testify/assert"
)

func writeTestWav(t *testing.T, freq float64, numSamples int, channels int) string {
	t.Helper()

	rate := uint32(44100)
	dataSize := uint32(numSamples * channels * 2)

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, rate)
	binary.Write(buf, binary.LittleEndian, rate*uint32(channels)*2)
	binary.Write(buf, binary.LittleEndian, uint16(channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for i := 0; i < numSamples; i++ {
		v := int16(0.5 * 32767 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
		for c := 0; c < channels; c++ {
			binary.Write(buf, binary.LittleEndian, v)
		}
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWavCaptureStreamsFrames(t *testing.T) {
	assert := assert.New(t)

	// 2 full frames plus a partial that should be dropped
	path := writeTestWav(t, 441, 2*constants.FrameSize+100, 1)
	capture := audio.NewWavCapture(path)
	assert.NoError(capture.Start())
	defer capture.Stop()

	assert.Equal(44100.0, capture.SampleRate())

	var frames []audio.Frame
	for {
		frame, err := capture.Read()
		if err == io.EOF {
			break
		}
		assert.NoError(err)
		frames = append(frames, frame)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %v", len(frames))
	}
	assert.Len(frames[0].Samples, constants.FrameSize)

	est := pitch.NewEstimator().Estimate(frames[0])
	if est == nil {
		t.Fatal("expected an estimate from the tone")
	}
	assert.InDelta(441, est.Frequency, 4.41)
}

func TestWavCaptureMixesStereoToMono(t *testing.T) {
	assert := assert.New(t)

	path := writeTestWav(t, 441, constants.FrameSize, 2)
	capture := audio.NewWavCapture(path)
	assert.NoError(capture.Start())
	defer capture.Stop()

	frame, err := capture.Read()
	assert.NoError(err)
	assert.Len(frame.Samples, constants.FrameSize)

	est := pitch.NewEstimator().Estimate(frame)
	if est == nil {
		t.Fatal("expected an estimate from the tone")
	}
	assert.InDelta(441, est.Frequency, 4.41)
}

func TestWavCaptureRejectsTruncatedFmtChunk(t *testing.T) {
	assert := assert.New(t)

	// a fmt chunk too short to hold the PCM header fields must error out
	// of Start, not blow up
	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(20))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(8))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint32(44100))

	path := filepath.Join(t.TempDir(), "short-fmt.wav")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	assert.Error(audio.NewWavCapture(path).Start())
}

func TestWavCaptureRejectsNonWav(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "not.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav"), 0644); err != nil {
		t.Fatal(err)
	}
	capture := audio.NewWavCapture(path)
	assert.Error(capture.Start())

	assert.Error(audio.NewWavCapture(filepath.Join(t.TempDir(), "missing.wav")).Start())
}
