package maths

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types a bounded value can hold.
// Unsigned integers are excluded: subtraction is defined as adding the negation.
type Number interface {
	constraints.Signed | constraints.Float
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func LessThan[T constraints.Ordered](a, b T) bool {
	return a < b
}

func GreaterThan[T constraints.Ordered](a, b T) bool {
	return a > b
}

func IsWithinRange[T constraints.Ordered](val, lowerBound, upperBound T) bool {
	return val >= lowerBound && val <= upperBound
}

// Clamp returns val capped at whichever bound it exceeds.
func Clamp[T constraints.Ordered](val, lowerBound, upperBound T) T {
	if IsWithinRange(val, lowerBound, upperBound) {
		return val
	}
	if val > upperBound {
		return upperBound
	}
	return lowerBound
}

// IsInteger reports whether T truncates on division.
func IsInteger[T Number]() bool {
	return T(1)/T(2) == 0
}

// Percent returns floor(part / whole * 100), computed as floor(part * 100 / whole)
// to keep exact results such as 57/100 from rounding down to 56.
// Integer types are promoted to float64 before dividing so the ratio is not truncated first.
// A zero whole yields 0.
func Percent[T Number](part, whole T) T {
	if whole == 0 {
		return 0
	}
	if IsInteger[T]() {
		return T(math.Floor(float64(part) * 100 / float64(whole)))
	}
	return T(math.Floor(float64(part * 100 / whole)))
}

// PercentOf returns p percent of span, i.e. p * span / 100.
func PercentOf[T Number](p, span T) T {
	return p * span / 100
}
