package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/upgradesim/internal/report"
	"github.com/xtding233/upgradesim/internal/upgrade"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the upgrade chance table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, format, err := setup(cmd)
			if err != nil {
				return err
			}
			rows := upgrade.Table()
			out := cmd.OutOrStdout()
			switch format {
			case report.FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			case report.FormatYAML:
				return yaml.NewEncoder(out).Encode(rows)
			default:
				return report.WriteTable(out, rows)
			}
		},
	}
}
