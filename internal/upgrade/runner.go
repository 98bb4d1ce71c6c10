package upgrade

import "sort"

// Histogram counts attempts by the level they left the item at.
type Histogram map[int]int

// Count returns the number of attempts that ended at level (0 if never reached).
func (h Histogram) Count(level int) int { return h[level] }

// Total is the number of attempts recorded.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Levels returns the recorded levels in ascending order.
func (h Histogram) Levels() []int {
	levels := make([]int, 0, len(h))
	for l := range h {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}

// RunResult is the outcome of one Run.
type RunResult struct {
	Histogram Histogram
	Final     Item
	Attempts  int
}

// Runner drives repeated upgrade attempts on a single item with one random source.
type Runner struct {
	RNG RandomSource
}

// NewRunner creates a runner. A nil rng gets a crypto-seeded generator.
func NewRunner(rng RandomSource) *Runner {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Runner{RNG: rng}
}

// Run performs up to trials attempts on a copy of item and tallies each resulting level.
// - Invalid rarity or trials <= 0 => empty histogram, no attempts.
// - The run stops early once the item reaches MaxLevel.
func (r *Runner) Run(item Item, trials int) RunResult {
	res := RunResult{Histogram: Histogram{}, Final: item}
	if !item.Rarity().Valid() || trials <= 0 {
		return res
	}
	for i := 0; i < trials; i++ {
		if item.Terminal() {
			break
		}
		item.Attempt(r.RNG)
		res.Histogram[item.Level()]++
		res.Attempts++
	}
	res.Final = item
	return res
}
