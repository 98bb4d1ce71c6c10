package upgrade

import "math"

// Stats summarizes the levels recorded in a histogram.
type Stats struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Var    float64 `json:"var" yaml:"var"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	P50    float64 `json:"p50" yaml:"p50"`
	P90    float64 `json:"p90" yaml:"p90"`
	P99    float64 `json:"p99" yaml:"p99"`
}

// Summarize computes mean/variance/percentiles of the recorded levels.
func Summarize(h Histogram) Stats {
	n := h.Total()
	if n == 0 {
		return Stats{}
	}
	levels := h.Levels()

	var sum float64
	for _, l := range levels {
		sum += float64(l * h[l])
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, l := range levels {
		d := float64(l) - mean
		acc += d * d * float64(h[l])
	}
	variance := acc / float64(n)

	// valueAt returns the i-th smallest recorded level.
	valueAt := func(i int) float64 {
		seen := 0
		for _, l := range levels {
			seen += h[l]
			if i < seen {
				return float64(l)
			}
		}
		return float64(levels[len(levels)-1])
	}
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return valueAt(0)
		}
		if p >= 1 {
			return valueAt(n - 1)
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return valueAt(i)
		}
		return valueAt(i)*(1-f) + valueAt(i+1)*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
