// Package manacher finds the longest palindromic substring of a string
// in linear time using Manacher's algorithm.
//
// 🚀 What is Manacher's algorithm?
//
//	A center-expansion scan that never re-verifies characters it has
//	already matched.  The input is rewritten into a sentinel-padded,
//	separator-interleaved sequence so odd- and even-length palindromes
//	share one symmetric treatment, then a single left-to-right pass
//	computes the maximal palindrome radius at every position, seeding
//	each radius from its mirror inside the rightmost palindrome found
//	so far.  Classic uses:
//	  • Longest palindromic substring queries
//	  • Counting / enumerating palindromic factors of a text
//	  • Building blocks for palindromic trees and factorization
//
// ✨ Key features:
//   - one pass, amortized O(n) time (every successful expansion step
//     strictly advances the rightmost boundary, which never shrinks)
//   - deterministic leftmost tie-break among equal-length maxima
//   - rune-indexed Match result plus a plain substring convenience API
//   - fail-fast validation of the three reserved padding runes
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/palindrome/manacher"
//
//	m, err := manacher.Find("babad")
//	// m.Start == 0, m.Length == 3 → "bab"
//
//	s, err := manacher.Longest("cbbd")
//	// s == "bb"
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n) auxiliary (transformed sequence plus radius array).
//     Despite a popular claim, the array-based formulation is not O(1)
//     space.
//
// See examples in example_test.go and the naive package for the O(n²)
// reference implementation used as a correctness oracle.
package manacher
