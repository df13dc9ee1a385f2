package manacher_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/palindrome/manacher"
)

// benchmarkLongest runs Longest on a deterministic input of n runes
// built from a palindrome-bearing tile.  It resets the timer before
// entering the loop and fails on unexpected errors.
func benchmarkLongest(b *testing.B, n int) {
	// "abacdcaba" keeps palindromes short so the linear scan, not one
	// giant expansion, dominates the measurement.
	s := strings.Repeat("abacdcaba", n/9+1)[:n]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := manacher.Longest(s); err != nil {
			b.Fatalf("Longest failed: %v", err)
		}
	}
}

// BenchmarkLongest_1K benchmarks the scan on a 1 000-rune input.
func BenchmarkLongest_1K(b *testing.B) {
	benchmarkLongest(b, 1_000)
}

// BenchmarkLongest_10K benchmarks the scan on a 10 000-rune input.
func BenchmarkLongest_10K(b *testing.B) {
	benchmarkLongest(b, 10_000)
}

// BenchmarkLongest_100K benchmarks the scan on a 100 000-rune input.
// Linear scaling should hold: ~10x the 10K timing.
func BenchmarkLongest_100K(b *testing.B) {
	benchmarkLongest(b, 100_000)
}

// BenchmarkLongest_OnePalindrome benchmarks the adversarial case of a
// single run of one rune, where every center expands maximally.
func BenchmarkLongest_OnePalindrome(b *testing.B) {
	s := strings.Repeat("a", 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := manacher.Longest(s); err != nil {
			b.Fatalf("Longest failed: %v", err)
		}
	}
}
