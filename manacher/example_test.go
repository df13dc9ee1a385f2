package manacher_test

import (
	"fmt"

	"github.com/katalvlaran/palindrome/manacher"
)

// ExampleLongest demonstrates the classic "babad" query: two maximal
// palindromes of length 3 exist and the leftmost one is returned.
func ExampleLongest() {
	s, err := manacher.Longest("babad")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output:
	// bab
}

// ExampleFind shows the rune-indexed form of the same query, useful
// when the position matters as much as the text.
func ExampleFind() {
	m, err := manacher.Find("cbbd")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("start=%d length=%d\n", m.Start, m.Length)
	// Output:
	// start=1 length=2
}

// ExampleLongest_reserved shows the fail-fast behavior on input that
// contains one of the reserved padding runes.
func ExampleLongest_reserved() {
	_, err := manacher.Longest("ab#ba")
	fmt.Println(err)
	// Output:
	// manacher: input contains a reserved padding rune: '#' at rune index 2
}
