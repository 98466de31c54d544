package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordsense",
	Short: "Real-time pitch detection and chord identification",
	Long:  `Listens to notes, tracks what is sustained, and names the chords.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
