package main

import (
	"fmt"
	"os"

	"careercortex/internal/config"
	"careercortex/internal/domain"
	"careercortex/internal/usecase"
	infra "careercortex/pkg/infrastructure"

	"github.com/spf13/cobra"
)

// pdfConfig loads the shared service configuration; --chrome wins over it.
func pdfConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if chrome, _ := cmd.Flags().GetString("chrome"); chrome != "" {
		cfg.ChromePath = chrome
	}
	return cfg, nil
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Print a Markdown résumé or cover letter to PDF",
	Long: `PDF converts a Markdown document to HTML, applies the résumé or cover
letter stylesheet and prints it to an A4 PDF with headless Chrome. The
browser path comes from --chrome, CAREERCORTEX_CHROME_PATH or CHROME_PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		kind, _ := cmd.Flags().GetString("type")

		data, err := readInput(cmd, in)
		if err != nil {
			return err
		}

		cfg, err := pdfConfig(cmd)
		if err != nil {
			return err
		}
		renderer := infra.NewChromedpRenderer(cfg.ChromePath, cfg.PDFTimeout)
		svc := usecase.NewService(usecase.Deps{Renderer: renderer}, usecase.Options{RenderAttempts: cfg.RenderAttempts})

		res, err := svc.RenderPDF(cmd.Context(), usecase.PDFRequest{
			Kind:     domain.ParseKind(kind),
			Markdown: string(data),
			Filename: out,
		})
		if err != nil {
			return err
		}
		if err := os.WriteFile(res.Filename, res.PDF, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", res.Filename, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", res.Filename, len(res.PDF))
		return nil
	},
}

func init() {
	pdfCmd.Flags().String("in", "-", "Markdown file; - reads stdin")
	pdfCmd.Flags().String("out", "", "output file (default: resume.pdf or cover-letter.pdf)")
	pdfCmd.Flags().String("type", string(domain.KindResume), "document type: resume or cover-letter")
	pdfCmd.Flags().String("chrome", "", "path to the Chrome or Chromium binary")

	rootCmd.AddCommand(pdfCmd)
}
