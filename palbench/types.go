// Package palbench defines options, sentinel errors and the summary
// type for the wall-clock benchmark harness.
package palbench

import (
	"errors"
	"time"
)

// Sentinel errors returned by Measure.
var (
	// ErrNilFunc indicates a nil function was passed to Measure.
	ErrNilFunc = errors.New("palbench: function under test is nil")

	// ErrBadRuns indicates Runs < 1; at least one measured run is
	// required to produce statistics.
	ErrBadRuns = errors.New("palbench: Runs must be at least 1")

	// ErrBadWarmup indicates Warmup < 0.
	ErrBadWarmup = errors.New("palbench: Warmup must be non-negative")
)

// Options configures the run schedule of Measure.
//
// Runs   – number of measured invocations (must be ≥ 1).
// Warmup – number of untimed invocations executed first, so cache and
//
//	allocator effects settle before measurement (must be ≥ 0).
type Options struct {
	Runs   int
	Warmup int
}

// Option represents a functional option for configuring Measure.
type Option func(*Options)

// WithRuns sets the number of measured runs.
// Validated in Measure; values < 1 cause ErrBadRuns.
func WithRuns(n int) Option {
	return func(o *Options) {
		o.Runs = n
	}
}

// WithWarmup sets the number of untimed warmup runs.
// Validated in Measure; negative values cause ErrBadWarmup.
func WithWarmup(n int) Option {
	return func(o *Options) {
		o.Warmup = n
	}
}

// DefaultOptions returns the default run schedule: 20 measured runs
// after 3 warmup runs.
func DefaultOptions() Options {
	return Options{
		Runs:   20,
		Warmup: 3,
	}
}

// Stats summarizes the measured run durations.
//
// Stdev is the sample standard deviation (n-1 denominator); it is zero
// when only a single run was measured.
type Stats struct {
	Mean  time.Duration
	Stdev time.Duration
	Min   time.Duration
	Max   time.Duration
	Runs  int
}
