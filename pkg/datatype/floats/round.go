package floats

import (
	"math"
	"strconv"
)

// Round rounds v to the given number of decimal places.
//
// The exact binary value is converted to decimal and rounded half to even, so 3.125 rounds
// to 3.12 while 6.015 (stored as 6.01499...) rounds to 6.01. Multiplying by a power of ten
// before math.Round would round both up.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}

	// normalize negative zero
	if r == 0 {
		return 0
	}
	return r
}

// Round2 is the precision used by most indicators.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// Div returns a/b, or fallback when b is zero.
func Div(a, b, fallback float64) float64 {
	if b == 0 {
		return fallback
	}
	return a / b
}
