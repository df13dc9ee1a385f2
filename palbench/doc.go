// Package palbench is a small wall-clock benchmark harness for the
// palindrome implementations: warmup-then-measure run scheduling,
// mean/stdev/min/max summaries, unit-scaled duration formatting and a
// deterministic large test corpus.
//
// It measures any zero-argument function, so it only requires of the
// code under test that repeated calls be side-effect free (idempotent
// timing) — which both manacher.Longest and naive.Longest guarantee.
//
// ⚙️ Usage:
//
//	corpus := palbench.Corpus()
//	stats, err := palbench.Measure(
//	    func() { _, _ = manacher.Longest(corpus) },
//	    palbench.WithRuns(20),
//	    palbench.WithWarmup(3),
//	)
//	fmt.Println(palbench.FormatDuration(stats.Mean))
//
// For micro-benchmarks of the algorithms themselves prefer the
// testing.B benchmarks in the manacher and naive packages; palbench
// exists for the standalone CLI, where per-call wall-clock statistics
// over a fixed corpus are the deliverable.
package palbench
