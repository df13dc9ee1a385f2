package palbench_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/palindrome/palbench"
)

// ExampleFormatDuration shows the unit scaling used by the CLI report.
func ExampleFormatDuration() {
	fmt.Println(palbench.FormatDuration(1500 * time.Microsecond))
	fmt.Println(palbench.FormatDuration(2 * time.Second))
	// Output:
	// 1.500 ms
	// 2.000 sec
}

// ExampleSummarize reduces a measured series to report statistics.
func ExampleSummarize() {
	s := palbench.Summarize([]time.Duration{
		1 * time.Millisecond,
		2 * time.Millisecond,
		3 * time.Millisecond,
	})
	fmt.Printf("mean=%s min=%s max=%s runs=%d\n",
		palbench.FormatDuration(s.Mean),
		palbench.FormatDuration(s.Min),
		palbench.FormatDuration(s.Max),
		s.Runs,
	)
	// Output:
	// mean=2.000 ms min=1.000 ms max=3.000 ms runs=3
}
