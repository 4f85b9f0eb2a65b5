package main

import (
	"fmt"

	"careercortex/internal/model"
	"careercortex/internal/transcoder"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Render a structured résumé as Markdown",
	Long: `Encode reads a résumé in JSON or YAML and prints the Markdown document the
builder would store for it. Sections without content are left out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		format, _ := cmd.Flags().GetString("format")
		name, _ := cmd.Flags().GetString("name")
		validate, _ := cmd.Flags().GetBool("validate")

		data, err := readInput(cmd, in)
		if err != nil {
			return err
		}
		r, err := unmarshalResume(data, formatOf(format, in))
		if err != nil {
			return err
		}
		if validate {
			if err := model.Validate(r); err != nil {
				return err
			}
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), transcoder.Encode(r, transcoder.EncodeOptions{DisplayName: name}))
		return err
	},
}

func init() {
	encodeCmd.Flags().String("in", "-", "résumé file (json or yaml); - reads stdin")
	encodeCmd.Flags().String("format", "", "input format: json or yaml (default: from extension)")
	encodeCmd.Flags().String("name", "", "display name for the contact header")
	encodeCmd.Flags().Bool("validate", false, "check the résumé against the form schema first")

	rootCmd.AddCommand(encodeCmd)
}
