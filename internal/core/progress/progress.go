// Package progress maps a countdown onto the values the UI draws.
package progress

import "fmt"

// Fraction returns the elapsed share of a countdown in [0,1].
// ok is false when total is zero and nothing should be drawn.
func Fraction(remaining, total int) (fraction float64, ok bool) {
	if total <= 0 {
		return 0, false
	}
	fraction = 1 - float64(remaining)/float64(total)
	if fraction < 0 {
		return 0, true
	}
	if fraction > 1 {
		return 1, true
	}
	return fraction, true
}

// Sweep converts a fraction into the arc angle in degrees.
func Sweep(fraction float64) float64 {
	return fraction * 360
}

// FormatClock renders seconds as zero-padded mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
