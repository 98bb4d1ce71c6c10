package scenario

import (
	"fmt"
	"strings"

	"github.com/xtding233/upgradesim/internal/upgrade"
)

// validateRuns checks merged runs; all problems are reported together.
func validateRuns(runs []RawRun) error {
	var errs []string

	if len(runs) == 0 {
		errs = append(errs, "runs must not be empty")
	}
	for i, r := range runs {
		if _, err := upgrade.ParseRarity(r.Rarity); err != nil {
			errs = append(errs, fmt.Sprintf("runs[%d].rarity %q is not a known rarity", i, r.Rarity))
		}
		if r.Trials == nil {
			errs = append(errs, fmt.Sprintf("runs[%d].trials is required (or set defaults.trials)", i))
		} else if *r.Trials <= 0 {
			errs = append(errs, fmt.Sprintf("runs[%d].trials must be >= 1", i))
		}
		if r.StartLevel != nil && (*r.StartLevel < 0 || *r.StartLevel > upgrade.MaxLevel) {
			errs = append(errs, fmt.Sprintf("runs[%d].start_level must satisfy 0 <= start_level <= %d", i, upgrade.MaxLevel))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
