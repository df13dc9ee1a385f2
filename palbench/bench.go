package palbench

import (
	"math"
	"time"
)

// Measure times fn over a warmup-then-measure schedule and summarizes
// the measured durations.
//
// The warmup invocations run first and are not timed; each of the Runs
// invocations that follow is timed individually with the monotonic
// clock.  fn must be free of observable side effects between calls so
// that every invocation does equivalent work.
//
// Returns ErrNilFunc, ErrBadRuns or ErrBadWarmup on invalid input.
func Measure(fn func(), opts ...Option) (Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if fn == nil {
		return Stats{}, ErrNilFunc
	}
	if cfg.Runs < 1 {
		return Stats{}, ErrBadRuns
	}
	if cfg.Warmup < 0 {
		return Stats{}, ErrBadWarmup
	}

	for i := 0; i < cfg.Warmup; i++ {
		fn()
	}

	times := make([]time.Duration, cfg.Runs)
	for i := range times {
		start := time.Now()
		fn()
		times[i] = time.Since(start)
	}

	return Summarize(times), nil
}

// Summarize reduces a slice of measured durations to Stats.
// An empty slice yields the zero Stats.
func Summarize(times []time.Duration) Stats {
	if len(times) == 0 {
		return Stats{}
	}

	var total time.Duration
	lo, hi := times[0], times[0]
	for _, t := range times {
		total += t
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}

	mean := total / time.Duration(len(times))

	// Sample standard deviation; a single run has no spread.
	var stdev time.Duration
	if len(times) > 1 {
		meanNs := float64(total) / float64(len(times))
		var sq float64
		for _, t := range times {
			d := float64(t) - meanNs
			sq += d * d
		}
		stdev = time.Duration(math.Sqrt(sq / float64(len(times)-1)))
	}

	return Stats{
		Mean:  mean,
		Stdev: stdev,
		Min:   lo,
		Max:   hi,
		Runs:  len(times),
	}
}
