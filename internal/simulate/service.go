package simulate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xtding233/upgradesim/internal/upgrade"
)

var (
	// ErrUnknownRarity is upgrade.ErrUnknownRarity, re-exported for callers of this package.
	ErrUnknownRarity = upgrade.ErrUnknownRarity
	ErrStartLevel    = errors.New("invalid start level")
	ErrTooManyTrials = errors.New("too many trials")
)

// Request describes one simulation run.
type Request struct {
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Rarity     string  `json:"rarity" yaml:"rarity"`
	Trials     int     `json:"trials" yaml:"trials"`
	StartLevel int     `json:"start_level" yaml:"start_level"`
	Seed       *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Result is a finished run. Histogram is never nil.
type Result struct {
	RunID      string            `json:"run_id" yaml:"run_id"`
	Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
	Rarity     string            `json:"rarity" yaml:"rarity"`
	Trials     int               `json:"trials" yaml:"trials"`
	StartLevel int               `json:"start_level" yaml:"start_level"`
	Seed       uint64            `json:"seed" yaml:"seed"`
	Attempts   int               `json:"attempts" yaml:"attempts"`
	FinalLevel int               `json:"final_level" yaml:"final_level"`
	Terminal   bool              `json:"terminal" yaml:"terminal"`
	Histogram  upgrade.Histogram `json:"histogram" yaml:"histogram"`
	Stats      upgrade.Stats     `json:"stats" yaml:"stats"`
}

// Service runs simulations and logs each run.
type Service struct {
	log       zerolog.Logger
	maxTrials int
	newRNG    func(seed uint64) upgrade.RandomSource
}

// NewService creates a Service. maxTrials <= 0 disables the trial cap.
func NewService(log zerolog.Logger, maxTrials int) *Service {
	return &Service{log: log, maxTrials: maxTrials, newRNG: upgrade.NewSeededRNG}
}

// Simulate runs req to completion.
// An unknown rarity still yields a Result with an empty histogram, alongside an error wrapping
// ErrUnknownRarity, so callers can tell it apart from a zero-trial run.
func (s *Service) Simulate(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := Result{
		RunID:      uuid.NewString(),
		Name:       req.Name,
		Rarity:     req.Rarity,
		Trials:     req.Trials,
		StartLevel: req.StartLevel,
		Histogram:  upgrade.Histogram{},
	}
	log := s.log.With().Str("run_id", res.RunID).Str("rarity", req.Rarity).Int("trials", req.Trials).Logger()

	rarity, err := upgrade.ParseRarity(req.Rarity)
	if err != nil {
		log.Warn().Msg("unrecognized rarity, no attempts performed")
		return res, err
	}
	if s.maxTrials > 0 && req.Trials > s.maxTrials {
		return res, fmt.Errorf("%w: %d > %d", ErrTooManyTrials, req.Trials, s.maxTrials)
	}
	item, err := upgrade.NewItemAt(rarity, req.StartLevel)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrStartLevel, err)
	}

	res.Seed = upgrade.NewSeed()
	if req.Seed != nil {
		res.Seed = *req.Seed
	}

	run := upgrade.NewRunner(s.newRNG(res.Seed)).Run(item, req.Trials)
	res.Attempts = run.Attempts
	res.FinalLevel = run.Final.Level()
	res.Terminal = run.Final.Terminal()
	res.Histogram = run.Histogram
	res.Stats = upgrade.Summarize(run.Histogram)

	log.Info().
		Uint64("seed", res.Seed).
		Int("start_level", req.StartLevel).
		Int("attempts", res.Attempts).
		Int("final_level", res.FinalLevel).
		Bool("terminal", res.Terminal).
		Msg("simulation finished")
	return res, nil
}
