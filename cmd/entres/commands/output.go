// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// Output formats of command results.
const (
	formatYAML  = "yaml"
	formatJSON  = "json"
	formatTable = "table"
)

// output is the destination of a command result.
type output struct {
	file   string
	format string
}

func (o *output) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&o.format, "format", "", "output format: yaml or json (default from -o extension, else yaml)")
}

// resolve picks the format: explicit flag, then the output extension,
// then YAML.
func (o *output) resolve() string {
	if o.format != "" {
		return strings.ToLower(o.format)
	}
	switch strings.ToLower(filepath.Ext(o.file)) {
	case ".json":
		return formatJSON
	default:
		return formatYAML
	}
}

// write renders v to the output file, or to stdout when none is set.
func (o *output) write(stdout io.Writer, v any) error {
	w := stdout
	if o.file != "" {
		f, err := os.Create(o.file)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch o.resolve() {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)

		return err
	default:
		return fmt.Errorf("unsupported output format: %s", o.format)
	}
}
