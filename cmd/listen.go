package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/chordsense/chord"
	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/db"
	"github.com/jsphweid/chordsense/note"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Identifies chords from a MIDI input port",
	Long:  `Identifies chords from a MIDI input port`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(constants.GetMidiPort())
	if err != nil {
		fmt.Printf("Can't find MIDI input port: %v\n", err)
		return
	}

	tracker := note.NewTracker()
	registry := chord.NewRegistry(chord.DefaultDictionary())

	// MIDI callbacks and the debounce timer run on their own goroutines,
	// so unlike the audio session this path needs a lock
	var mu sync.Mutex
	analyze := func() {
		mu.Lock()
		defer mu.Unlock()
		// MIDI notes are definite; no sustain filtering needed
		_, created := registry.IdentifyFromSustainedSet(tracker.Sustained(0))
		for _, rec := range created {
			fmt.Printf("chord: %v\n", rec.Label())
		}
	}
	debounced := debounce.New(100 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, k, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &k, &vel):
			mu.Lock()
			evt, created := tracker.ObserveMidi(k, 1.0)
			mu.Unlock()
			if created {
				fmt.Printf("note: %v\n", evt.Key())
			}
			debounced(analyze)
		case msg.GetNoteEnd(&ch, &k):
			mu.Lock()
			tracker.RemoveMidi(k)
			mu.Unlock()
			debounced(analyze)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()

	if constants.GetSessionTable() != "" {
		mu.Lock()
		records := registry.Records()
		mu.Unlock()
		sessionID := uuid.New().String()
		if err := db.PutSessionRecords(sessionID, records); err != nil {
			fmt.Printf("Could not save session %v: %v\n", sessionID, err)
			return
		}
		fmt.Printf("Saved %v records as session %v\n", len(records), sessionID)
	}
}
