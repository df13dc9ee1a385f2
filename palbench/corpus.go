package palbench

import (
	"strconv"
	"strings"
)

// Corpus returns a deterministic test string of well over 10k runes
// with known palindromes at both ends: a long run of "racecar " (whose
// concatenation is itself one large palindrome), filler prose, the
// decimal numbers 0–9999, repeated alphabet runs, and a closing
// " noon radar level".  The string contains none of the reserved
// padding runes, so it is valid input for every implementation.
//
// Every call rebuilds and returns an equal string.
func Corpus() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("racecar ", 1000))
	b.WriteString(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 50))
	for i := 0; i < 10000; i++ {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(' ')
	}
	b.WriteString(strings.Repeat("abcdefghijklmnopqrstuvwxyz", 100))
	b.WriteString(" noon radar level")

	return b.String()
}
