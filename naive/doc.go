// Package naive finds the longest palindromic substring by expanding
// around every possible center — the O(n²) reference implementation.
//
// It exists as the correctness oracle for the manacher package and as
// the comparison baseline for the benchmark CLI; it is not meant for
// production use on large inputs.  The output contract is identical to
// manacher's: same leftmost tie-break, same reserved-rune validation,
// so the two are drop-in comparable on any input.
//
// Performance:
//
//   - Time:   O(n²) worst case (e.g. a string that is one big palindrome)
//   - Memory: O(n) for the rune slice
package naive
