// Package palindrome is a compact toolkit for longest-palindromic-substring
// search: a linear-time core, a quadratic reference oracle, and a
// wall-clock benchmark harness with a CLI front end.
//
// 🚀 What is palindrome?
//
//	A small, focused library that brings together:
//		• manacher/ — the O(n) mirror-expansion scan (Manacher's algorithm)
//		• naive/    — the O(n²) center-expansion oracle for cross-checking
//		• palbench/ — warmup-then-measure timing, statistics & test corpus
//		• cmd/palbench — CLI: benchmark, compare, or cross-check by name
//
// ✨ Why choose palindrome?
//
//   - Honest contracts – true O(n) time and O(n) auxiliary space, stated
//     as such (the folklore "constant space" claim is incorrect for the
//     array-based formulation)
//   - Deterministic ties – among equal-length maxima the leftmost wins,
//     pinned by tests against the oracle
//   - Fail-fast input validation – reserved padding runes are rejected
//     with a sentinel error instead of silently miscomputing
//   - Pure Go – no cgo, reentrant, safe for concurrent use on
//     independent inputs
//
// Quick example:
//
//	s, err := manacher.Longest("babad")
//	// s == "bab" (leftmost of the two length-3 maxima)
//
// Dive into each package's doc.go for algorithmic details, and into
// examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/palindrome
package palindrome
