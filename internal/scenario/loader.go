package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/upgradesim/internal/simulate"
)

// Load reads a scenario file, merges defaults into every run and validates the result.
func Load(path string) ([]simulate.Request, error) {
	raw, err := readYAML(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Resolve(raw)
}

// Resolve merges defaults into each run and converts them to simulation requests.
func Resolve(raw RawFile) ([]simulate.Request, error) {
	runs := make([]RawRun, len(raw.Runs))
	for i, r := range raw.Runs {
		runs[i] = mergeRun(raw.Defaults, r)
	}
	if err := validateRuns(runs); err != nil {
		return nil, err
	}

	reqs := make([]simulate.Request, len(runs))
	for i, r := range runs {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("run-%d", i+1)
		}
		reqs[i] = simulate.Request{
			Name:       name,
			Rarity:     r.Rarity,
			Trials:     *r.Trials,
			StartLevel: *r.StartLevel,
			Seed:       r.Seed,
		}
	}
	return reqs, nil
}

// readYAML loads a YAML file into RawFile. Unknown keys are rejected.
func readYAML(path string) (RawFile, error) {
	var raw RawFile
	f, err := os.Open(path)
	if err != nil {
		return RawFile{}, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return RawFile{}, err
	}
	return raw, nil
}

// mergeRun fills unset run fields from defaults; start_level falls back to 0.
func mergeRun(d Defaults, r RawRun) RawRun {
	out := r
	if out.Trials == nil && d.Trials != nil {
		v := *d.Trials
		out.Trials = &v
	}
	if out.StartLevel == nil {
		v := 0
		if d.StartLevel != nil {
			v = *d.StartLevel
		}
		out.StartLevel = &v
	}
	if out.Seed == nil && d.Seed != nil {
		v := *d.Seed
		out.Seed = &v
	}
	return out
}
