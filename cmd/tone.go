package cmd

import (
	"strconv"

	"github.com/jsphweid/chordsense/audio"
	"github.com/jsphweid/chordsense/session"
	"github.com/spf13/cobra"
)

var toneKey string

func init() {
	toneCmd.Flags().StringVar(&toneKey, "key", "", "key context, e.g. C:major")
	rootCmd.AddCommand(toneCmd)
}

var toneCmd = &cobra.Command{
	Use:   "tone [frequency]",
	Short: "Runs a synthetic tone through the detection pipeline",
	Long:  `Runs a synthetic tone through the detection pipeline. A sanity check that needs no device.`,
	Run: func(cmd *cobra.Command, args []string) {
		frequency := 440.0
		if len(args) == 1 {
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				panic(err)
			}
			frequency = f
		}
		tone(frequency)
	},
}

func tone(frequency float64) {
	s := session.New(audio.NewSineCapture(frequency, 10))
	s.KeyContext = parseKeyContext(toneKey)
	s.AddListener(printingListener{})

	if err := s.Start(); err != nil {
		return
	}
	for s.Running() {
		s.Tick()
	}
}
