// Package main is resumectl, the command-line face of the résumé transcoder.
// It converts between the structured form and Markdown and prints PDFs
// without running the server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Convert résumés between form data, Markdown and PDF",
	Long: `resumectl converts a structured résumé (JSON or YAML) to the Markdown the
builder stores, parses that Markdown back into the structured form, and
prints Markdown documents to PDF through headless Chrome.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./careercortex.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
