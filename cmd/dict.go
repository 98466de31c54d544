package cmd

import (
	"fmt"

	"github.com/jsphweid/chordsense/chord"
	"github.com/jsphweid/chordsense/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dictCmd)
}

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Prints the chord interval dictionary",
	Long:  `Prints the chord interval dictionary`,
	Run: func(cmd *cobra.Command, args []string) {
		dict := chord.DefaultDictionary()
		for _, name := range util.SortedKeys(dict) {
			fmt.Printf("%-6v %v\n", name, dict[name])
		}
	},
}
