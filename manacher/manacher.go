package manacher

import "fmt"

// Find returns the position of the longest palindromic substring of s.
//
// Algorithm outline:
//  1. Transform s into the padded sequence t of length 2n+3
//     (sentinels at both ends, Separator between all runes).
//  2. For every interior position i of t, compute the maximal palindrome
//     radius p[i].  When i lies inside the rightmost known palindrome
//     (l, r), seed p[i] = min(r-i, p[mirror]) where mirror = l+r-i, so
//     already-verified matches are never re-scanned.  Expand past the
//     seed one rune at a time; every successful expansion step strictly
//     advances r, which bounds total work by O(n).
//  3. Map the best (radius, center) pair back to rune indices of s:
//     Start = (center-radius)/2, Length = radius.
//
// Ties among equal-length maxima resolve to the leftmost occurrence:
// the running best is replaced only on a strict radius improvement.
//
// Returns ErrReservedRune if s contains '@', '#' or '$'.  Every other
// input, including the empty string, is valid.
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(n) auxiliary (transformed sequence + radius array)
//
// Find is pure and reentrant: all state is allocated per call, so
// concurrent calls on independent inputs are safe.
func Find(s string) (Match, error) {
	t, err := transform([]rune(s))
	if err != nil {
		return Match{}, err
	}

	_, pmax, pmaxi := computeRadii(t)

	return extract(pmax, pmaxi), nil
}

// Longest returns the longest palindromic substring of s itself.
// Same contract and complexity as Find.
func Longest(s string) (string, error) {
	m, err := Find(s)
	if err != nil {
		return "", err
	}
	rs := []rune(s)

	return string(rs[m.Start : m.Start+m.Length]), nil
}

// transform builds the padded sequence
//
//	[LeftSentinel, Separator, c0, Separator, …, c(n-1), Separator, RightSentinel]
//
// of length 2n+3 and rejects inputs that contain a reserved rune.
// The padding removes the odd/even special case and every bounds check
// from the expansion loop: expansion always stops at a sentinel because
// the two sentinels differ from each other and from all other runes.
func transform(rs []rune) ([]rune, error) {
	t := make([]rune, 2*len(rs)+3)
	t[0] = LeftSentinel
	t[1] = Separator
	for i, c := range rs {
		if c == LeftSentinel || c == Separator || c == RightSentinel {
			return nil, fmt.Errorf("%w: %q at rune index %d", ErrReservedRune, c, i)
		}
		t[2*i+2] = c
		t[2*i+3] = Separator
	}
	t[len(t)-1] = RightSentinel

	return t, nil
}

// computeRadii runs the Manacher scan over the interior of t and returns
// the radius array together with the best radius and its center index.
//
// Invariants maintained per iteration:
//   - (l, r) is the rightmost palindrome confirmed so far; r never
//     decreases, and each successful expansion step strictly increases
//     it, which is the amortized-linear argument.
//   - p[i] is final once written: the mirror seed is a lower bound
//     capped at r-i, and expansion only grows it.
//   - (pmax, pmaxi) updates on strict improvement only, fixing the
//     tie-break to the leftmost center.
func computeRadii(t []rune) (p []int, pmax, pmaxi int) {
	p = make([]int, len(t))
	var l, r int

	for i := 1; i < len(t)-1; i++ {
		mirror := l + r - i

		// Seed from the mirrored radius, bounded by the confirmed span.
		// Strictly i < r: at i == r nothing is verified to the right.
		if i < r {
			p[i] = min(r-i, p[mirror])
		}

		// The only place work is spent; each step pushes r further out.
		for t[i+1+p[i]] == t[i-1-p[i]] {
			p[i]++
		}

		if i+p[i] > r {
			l = i - p[i]
			r = i + p[i]
		}

		// Strictly pmax < p[i]: ties keep the earlier (leftmost) center.
		if pmax < p[i] {
			pmax = p[i]
			pmaxi = i
		}
	}

	return p, pmax, pmaxi
}

// extract maps the best (radius, center) pair from transformed-sequence
// coordinates back to rune indices of the original input.  The maximal
// palindrome around any center always begins just after a Separator, so
// integer division lands exactly on the first original rune.
func extract(pmax, pmaxi int) Match {
	return Match{
		Start:  (pmaxi - pmax) / 2,
		Length: pmax,
	}
}
