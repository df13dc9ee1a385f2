// Command palbench benchmarks the registered longest-palindromic-
// substring implementations on a fixed deterministic corpus.
//
// Usage:
//
//	palbench manacher              # benchmark the linear implementation
//	palbench manacher --compare    # also time the naive baseline
//	palbench manacher --test       # cross-check output against the oracle
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/palindrome/manacher"
	"github.com/katalvlaran/palindrome/naive"
	"github.com/katalvlaran/palindrome/palbench"
)

const separatorWidth = 50

// algorithms maps CLI names to registered implementations.  Every
// entry shares the manacher.Longest signature and output contract.
var algorithms = map[string]func(string) (string, error){
	"manacher": manacher.Longest,
	"naive":    naive.Longest,
}

var (
	compareFlag bool
	testFlag    bool
	runsFlag    int
	warmupFlag  int
)

var rootCmd = &cobra.Command{
	Use:   "palbench <algorithm>",
	Short: "Benchmark longest-palindromic-substring implementations",
	Long: "palbench times a registered longest-palindromic-substring implementation\n" +
		"on a fixed deterministic corpus and reports mean/stdev/min/max per call.\n\n" +
		"Available algorithms:\n  - " + strings.Join(algorithmNames(), "\n  - "),
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&compareFlag, "compare", false, "also benchmark the naive baseline and report the speedup")
	rootCmd.Flags().BoolVar(&testFlag, "test", false, "cross-check the selected algorithm against the naive oracle")
	rootCmd.Flags().IntVar(&runsFlag, "runs", palbench.DefaultOptions().Runs, "number of measured runs")
	rootCmd.Flags().IntVar(&warmupFlag, "warmup", palbench.DefaultOptions().Warmup, "number of untimed warmup runs")
}

func run(cmd *cobra.Command, args []string) error {
	name := args[0]
	algo, ok := algorithms[name]
	if !ok {
		return fmt.Errorf("algorithm %q not found (available: %s)", name, strings.Join(algorithmNames(), ", "))
	}

	corpus := palbench.Corpus()

	if testFlag {
		return runEquivalence(name, algo, corpus)
	}

	return runBenchmark(name, algo, corpus)
}

// runEquivalence asserts that the selected algorithm and the naive
// oracle produce identical output on the corpus.
func runEquivalence(name string, algo func(string) (string, error), corpus string) error {
	fmt.Printf("Running tests for %s...\n", name)

	got, err := algo(corpus)
	if err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	want, err := naive.Longest(corpus)
	if err != nil {
		return fmt.Errorf("naive oracle failed: %w", err)
	}
	if got != want {
		return fmt.Errorf("output mismatch: %s returned %d runes, naive oracle returned %d runes",
			name, len([]rune(got)), len([]rune(want)))
	}

	color.New(color.FgGreen, color.Bold).Println("TEST PASSED")

	return nil
}

// runBenchmark times the selected algorithm and, with --compare, the
// naive baseline, printing bench-report blocks for each.
func runBenchmark(name string, algo func(string) (string, error), corpus string) error {
	heading := color.New(color.FgCyan, color.Bold)

	heading.Printf("Benchmarking %s...\n", name)
	fmt.Println(strings.Repeat("=", separatorWidth))

	// One checked call up front so precondition failures surface as
	// errors instead of skewed timings.
	if _, err := algo(corpus); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}

	fmt.Printf("\nBenchmarking main implementation (%s)...\n", name)
	mainStats, err := palbench.Measure(
		func() { _, _ = algo(corpus) },
		palbench.WithRuns(runsFlag),
		palbench.WithWarmup(warmupFlag),
	)
	if err != nil {
		return err
	}
	printStats(fmt.Sprintf("%s (main)", name), mainStats)

	if compareFlag && name != "naive" {
		fmt.Println("\nBenchmarking alternative implementation (naive)...")
		altStats, err := palbench.Measure(
			func() { _, _ = naive.Longest(corpus) },
			palbench.WithRuns(runsFlag),
			palbench.WithWarmup(warmupFlag),
		)
		if err != nil {
			return err
		}
		printStats("naive (alt)", altStats)

		speedup := float64(altStats.Mean) / float64(mainStats.Mean)
		heading.Println("\nComparison:")
		fmt.Printf("  Main is %.2fx faster than alt\n", speedup)
	}

	fmt.Println("\n" + strings.Repeat("=", separatorWidth))

	return nil
}

func printStats(label string, s palbench.Stats) {
	fmt.Printf("\n%s:\n", label)
	fmt.Printf("  Mean:   %s ± %s\n", palbench.FormatDuration(s.Mean), palbench.FormatDuration(s.Stdev))
	fmt.Printf("  Min:    %s\n", palbench.FormatDuration(s.Min))
	fmt.Printf("  Max:    %s\n", palbench.FormatDuration(s.Max))
	fmt.Printf("  Runs:   %d\n", s.Runs)
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
