package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xtding233/upgradesim/internal/config"
	"github.com/xtding233/upgradesim/internal/logger"
	"github.com/xtding233/upgradesim/internal/report"
	"github.com/xtding233/upgradesim/internal/simulate"
)

var rootCmd = newRootCmd()

func Execute() error {
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgradesim [rarity trials]",
		Short: "Simulate item upgrade attempts",
		Long: "upgradesim runs repeated upgrade attempts on an item of the given rarity, starting at level 0,\n" +
			"and prints how many attempts left the item at each level. Without arguments it reads\n" +
			"the rarity and trial count from stdin.",
		Args:         cobra.RangeArgs(0, 2),
		SilenceUsage: true,
		RunE:         runSimulate,
	}
	cmd.PersistentFlags().String("format", "text", "Output format: text, json or yaml")
	cmd.Flags().Uint64("seed", 0, "Random seed (default: drawn from crypto/rand)")
	cmd.Flags().Int("start-level", 0, "Level the item starts at (0-10)")

	cmd.AddCommand(newTableCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setup loads config and returns the logger and the selected report format.
// The CLI runs whatever trial count it is given; UPGRADESIM_MAX_TRIALS only bounds the servers.
func setup(cmd *cobra.Command) (zerolog.Logger, report.Format, error) {
	cfg, err := config.Load()
	if err != nil {
		return zerolog.Nop(), "", err
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	name, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(name)
	if err != nil {
		return log, "", err
	}
	return log, format, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	log, format, err := setup(cmd)
	if err != nil {
		return err
	}

	var req simulate.Request
	switch len(args) {
	case 0:
		req, err = readRequest(cmd.InOrStdin())
	case 2:
		req, err = parseRequest(args[0], args[1])
	default:
		err = errors.New("expected both rarity and trials")
	}
	if err != nil {
		log.Error().Err(err).Msg("read input")
		return err
	}
	req.StartLevel, _ = cmd.Flags().GetInt("start-level")
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		req.Seed = &seed
	}

	res, err := simulate.NewService(log, 0).Simulate(cmd.Context(), req)
	switch {
	case errors.Is(err, simulate.ErrUnknownRarity):
		// still print the all-zero report; the warning is already logged
	case err != nil:
		log.Error().Err(err).Msg("simulate")
		return err
	}
	return report.Write(cmd.OutOrStdout(), format, res)
}

// readRequest reads "<rarity> <trials>" as two whitespace-separated tokens.
func readRequest(r io.Reader) (simulate.Request, error) {
	var rarity, trials string
	if _, err := fmt.Fscan(r, &rarity, &trials); err != nil {
		return simulate.Request{}, fmt.Errorf("read rarity and trials: %w", err)
	}
	return parseRequest(rarity, trials)
}

func parseRequest(rarity, trials string) (simulate.Request, error) {
	n, err := strconv.Atoi(trials)
	if err != nil {
		return simulate.Request{}, fmt.Errorf("invalid trials %q: %w", trials, err)
	}
	return simulate.Request{Rarity: rarity, Trials: n}, nil
}
