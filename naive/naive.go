package naive

import (
	"fmt"

	"github.com/katalvlaran/palindrome/manacher"
)

// Find returns the position of the longest palindromic substring of s
// by expanding around all 2n-1 candidate centers (each rune, and each
// gap between adjacent runes).  The running best is replaced only on a
// strict length improvement, so ties resolve to the leftmost occurrence
// exactly as in manacher.Find.
//
// Inputs containing a reserved padding rune are rejected with
// manacher.ErrReservedRune so that oracle and core share one domain.
//
// Complexity: O(n²) time, O(n) memory.
func Find(s string) (manacher.Match, error) {
	rs := []rune(s)
	for i, c := range rs {
		if c == manacher.LeftSentinel || c == manacher.Separator || c == manacher.RightSentinel {
			return manacher.Match{}, fmt.Errorf("%w: %q at rune index %d", manacher.ErrReservedRune, c, i)
		}
	}

	var best manacher.Match
	for i := range rs {
		// Odd-length palindromes centered on rune i.
		if m := expand(rs, i, i); best.Length < m.Length {
			best = m
		}
		// Even-length palindromes centered between runes i and i+1.
		if m := expand(rs, i, i+1); best.Length < m.Length {
			best = m
		}
	}

	return best, nil
}

// Longest returns the longest palindromic substring of s itself.
// Same contract as Find.
func Longest(s string) (string, error) {
	m, err := Find(s)
	if err != nil {
		return "", err
	}
	rs := []rune(s)

	return string(rs[m.Start : m.Start+m.Length]), nil
}

// expand grows the candidate palindrome outward from the given center
// until a mismatch or a string boundary, and reports the widest span
// that matched.  A center that never matches reports Length 0.
func expand(rs []rune, left, right int) manacher.Match {
	for left >= 0 && right < len(rs) && rs[left] == rs[right] {
		left--
		right++
	}

	return manacher.Match{Start: left + 1, Length: right - left - 1}
}
