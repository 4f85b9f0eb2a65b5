package main

import (
	"careercortex/internal/transcoder"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Parse résumé Markdown into the structured form",
	Long: `Decode reads a Markdown résumé and prints the structured form recovered
from it. Unrecognised content is skipped; decoding never fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		format, _ := cmd.Flags().GetString("format")

		data, err := readInput(cmd, in)
		if err != nil {
			return err
		}
		return writeResume(cmd.OutOrStdout(), transcoder.Decode(string(data)), formatOf(format, ""))
	},
}

func init() {
	decodeCmd.Flags().String("in", "-", "Markdown file; - reads stdin")
	decodeCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(decodeCmd)
}
