package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/chordsense/audio"
	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/db"
	"github.com/jsphweid/chordsense/key"
	"github.com/jsphweid/chordsense/model"
	"github.com/jsphweid/chordsense/session"
	"github.com/spf13/cobra"
)

var detectKey string

func init() {
	detectCmd.Flags().StringVar(&detectKey, "key", "", "key context, e.g. C:major")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [wav file]",
	Short: "Runs pitch and chord detection over a WAV file",
	Long:  `Runs pitch and chord detection over a WAV file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		detect(args[0])
	},
}

type printingListener struct{}

func (printingListener) OnNoteDetected(n model.NoteEvent) {
	fmt.Printf("note: %v (midi %v, confidence %.2f)\n", n.Key(), n.Midi, n.Confidence)
}

func (printingListener) OnChordDetected(rec model.ChordRecord) {
	label := rec.Label()
	if rec.IsSuggestion {
		label += " (suggested)"
	}
	fmt.Printf("chord: %v\n", label)
}

func (printingListener) OnStatusUpdate(msg string, severity model.Severity) {
	fmt.Printf("[%v] %v\n", severity, msg)
}

func parseKeyContext(s string) *key.Context {
	if s == "" {
		return nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		panic("key must look like C:major")
	}
	return &key.Context{Root: parts[0], Type: parts[1]}
}

func detect(path string) {
	s := session.New(audio.NewWavCapture(path))
	s.KeyContext = parseKeyContext(detectKey)
	s.AddListener(printingListener{})

	if err := s.Start(); err != nil {
		return
	}
	for s.Running() {
		s.Tick()
	}

	records := s.Registry.Records()
	fmt.Printf("Identified %v distinct chords\n", len(records))

	if constants.GetSessionTable() != "" && len(records) > 0 {
		sessionID := uuid.New().String()
		if err := db.PutSessionRecords(sessionID, records); err != nil {
			fmt.Printf("Could not save session %v: %v\n", sessionID, err)
			return
		}
		fmt.Printf("Saved %v records as session %v\n", len(records), sessionID)
	}
}
