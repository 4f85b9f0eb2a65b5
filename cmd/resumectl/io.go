package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"careercortex/internal/model"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// readInput reads a file, or stdin when path is "-" or empty.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// formatOf picks json or yaml from an explicit flag or the file extension.
func formatOf(flag, path string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func unmarshalResume(data []byte, format string) (model.Resume, error) {
	var r model.Resume
	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &r)
	case "json":
		err = json.Unmarshal(data, &r)
	default:
		return r, fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
	if err != nil {
		return r, fmt.Errorf("parsing %s résumé: %w", format, err)
	}
	r.Normalize()
	return r, nil
}

func writeResume(w io.Writer, r model.Resume, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
