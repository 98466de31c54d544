package constants

import (
	"os"
	"strconv"
)

// DSP tuning. These came from tuning against live input; the synthetic
// checks in the pitch package tests pin them down.
const (
	FrameSize = 2048

	SilenceRMSFloor       = 0.05
	PeakFloorRatio        = 0.1
	MinFrequency          = 80.0
	MaxFrequency          = 2000.0
	MinEstimateConfidence = 0.05

	ObserveConfidenceThreshold = 0.3

	// A note becomes chord-eligible once its repeat count exceeds this.
	SustainThreshold = 2

	// Cap on how many sustained notes feed the subset search.
	MaxSustainedNotes = 6
	MaxSubsetSize     = 4
)

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetMidiPort() int {
	port := os.Getenv("MIDI_PORT")
	if port == "" {
		return 0
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		panic("MIDI_PORT is not a number: " + port)
	}
	return n
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

// GetSessionTable returns the DynamoDB table for saved session records, or
// "" when saving is disabled.
func GetSessionTable() string {
	return os.Getenv("SESSIONS_TABLE")
}
