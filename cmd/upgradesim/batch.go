package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtding233/upgradesim/internal/report"
	"github.com/xtding233/upgradesim/internal/scenario"
	"github.com/xtding233/upgradesim/internal/simulate"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <scenarios.yaml>",
		Short: "Run every scenario in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, format, err := setup(cmd)
			if err != nil {
				return err
			}
			reqs, err := scenario.Load(args[0])
			if err != nil {
				log.Error().Err(err).Str("path", args[0]).Msg("load scenarios")
				return err
			}

			svc := simulate.NewService(log, 0)
			out := cmd.OutOrStdout()
			for i, req := range reqs {
				res, err := svc.Simulate(cmd.Context(), req)
				if err != nil {
					return fmt.Errorf("%s: %w", req.Name, err)
				}
				if format == report.FormatText {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "# %s (%s, %d trials, seed %d)\n", res.Name, res.Rarity, res.Trials, res.Seed)
				} else if format == report.FormatYAML && i > 0 {
					fmt.Fprintln(out, "---")
				}
				if err := report.Write(out, format, res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
