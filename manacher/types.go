// Package manacher defines the result type, reserved padding runes and
// sentinel errors for the linear-time longest-palindromic-substring scan.
//
// The scan works on a transformed copy of the input:
//
//	[LeftSentinel, Separator, c0, Separator, c1, …, Separator, RightSentinel]
//
// of length 2n+3 for an n-rune input.  The two sentinels terminate the
// expansion loop without explicit bounds checks; the separator gives
// even-length palindromes a materialized center.  All three runes must
// therefore be distinct from every rune of the input — colliding input
// is rejected with ErrReservedRune rather than silently miscomputed.
package manacher

import "errors"

// Reserved padding runes.  Inputs containing any of them are rejected.
const (
	// LeftSentinel terminates leftward expansion at the front of the
	// transformed sequence.
	LeftSentinel = '@'

	// Separator is interleaved between every pair of input runes so
	// even-length palindromes have a well-defined center position.
	Separator = '#'

	// RightSentinel terminates rightward expansion at the back of the
	// transformed sequence.
	RightSentinel = '$'
)

// Sentinel errors returned by this package.
var (
	// ErrReservedRune indicates the input contains one of LeftSentinel,
	// Separator or RightSentinel, which would make the boundary checks
	// of the transformed sequence unsound.
	ErrReservedRune = errors.New("manacher: input contains a reserved padding rune")
)

// Match locates the longest palindromic substring inside the original
// input, in rune index space.
//
// Start  – rune index of the first rune of the palindrome.
// Length – palindrome length in runes (0 for empty input).
//
// The substring is recovered as string(runes[Start : Start+Length]).
type Match struct {
	Start  int
	Length int
}
