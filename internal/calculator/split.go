// Package calculator holds the split arithmetic.
package calculator

import (
	"fmt"
	"math"
)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EqualShare computes the per-participant share of a bill total. Each share
// is independently rounded to the cent; the remainder is NOT redistributed,
// so the sum of shares may fall short of the total by up to one cent per
// participant beyond the first (e.g. 100.00 across 3 people yields 33.33
// each, summing to 99.99).
func EqualShare(totalAmount float64, participantCount int) (float64, error) {
	if participantCount < 1 {
		return 0, fmt.Errorf("must have at least one participant")
	}
	return Round2(totalAmount / float64(participantCount)), nil
}

// WithinRoundingTolerance reports whether the sum of n per-share amounts is
// close enough to the bill total to be explained by per-share rounding
// alone: |sum - total| <= 0.01 * (n-1), with a small epsilon for float
// error. Used by the optional total-validation hook.
func WithinRoundingTolerance(sum, total float64, n int) bool {
	if n < 1 {
		return false
	}
	tolerance := 0.01*float64(n-1) + 1e-9
	return math.Abs(sum-total) <= tolerance
}
