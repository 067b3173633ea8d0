// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/entres/clustering"
)

// methodRow is one entry of 'entres methods' in structured formats.
type methodRow struct {
	Method         clustering.Method `json:"method" yaml:"method"`
	Name           string            `json:"name" yaml:"name"`
	CleanCleanOnly bool              `json:"clean_clean_only" yaml:"clean_clean_only"`
	Config         string            `json:"config" yaml:"config"`
	Info           string            `json:"info" yaml:"info"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

func newMethodsCmd(_ *app) *cobra.Command {
	var out output
	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the clustering strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([]methodRow, 0, len(clustering.Methods()))
			for _, m := range clustering.Methods() {
				s := clustering.MustNew(m)
				rows = append(rows, methodRow{
					Method:         m,
					Name:           s.Name(),
					CleanCleanOnly: s.CleanCleanOnly(),
					Config:         s.Config(),
					Info:           s.Info(),
				})
			}
			if out.format != "" && out.format != formatTable {
				return out.write(cmd.OutOrStdout(), rows)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderMethods(rows))

			return err
		},
	}
	cmd.Flags().StringVar(&out.format, "format", formatTable, "output format: table, yaml or json")

	return cmd
}

func renderMethods(rows []methodRow) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("METHOD", "NAME", "SCENARIO", "DEFAULTS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
	for _, r := range rows {
		scenario := "clean-clean, dirty"
		if r.CleanCleanOnly {
			scenario = "clean-clean"
		}
		t.Row(string(r.Method), r.Name, scenario, r.Config)
	}

	return t.Render()
}
