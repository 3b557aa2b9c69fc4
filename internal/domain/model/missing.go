package model

import (
	"math"
)

// Missing returns the value used for an absent number.
//
// Missing values are NaN: arithmetic propagates them and every comparison
// against them is false, so a missing rating never clears a threshold.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether x is absent.
func IsMissing(x float64) bool { return math.IsNaN(x) }

// Div divides a by b, returning a missing value when b is zero.
func Div(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	return a / b
}

// Round rounds x to places decimals, halves to even. Missing stays missing.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow10(places)
	return math.RoundToEven(x*p) / p
}

// Bool01 converts a flag to the 0/1 form used in reports.
func Bool01(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// FirstMax returns the index of the first largest non-missing value, or -1
// when every value is missing.
func FirstMax(vals []float64) int {
	best := -1
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v > vals[best] {
			best = i
		}
	}
	return best
}
