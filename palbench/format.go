package palbench

import (
	"fmt"
	"time"
)

// FormatDuration renders d in the largest unit that keeps the value
// at or above 1: seconds, milliseconds, microseconds or nanoseconds,
// always with three decimals.
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.3f sec", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.3f us", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%.3f ns", float64(d))
	}
}
