package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// SlicesNearlyEqual reports whether a and b have the same length and every
// element pair is within eps, either absolutely or relative to the larger
// magnitude.
func SlicesNearlyEqual(a, b []float64, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	return floats.EqualFunc(a, b, func(x, y float64) bool {
		return scalar.EqualWithinAbsOrRel(x, y, eps, eps)
	})
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
