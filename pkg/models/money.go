package models

import (
	"math"
	"strconv"
)

// Round2 rounds a monetary value to two decimal places. Line totals and
// order totals go through the same rounding so that a non-defective order's
// total matches the sum of its rounded line totals exactly.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a monetary value with two decimal places for CSV output.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}
