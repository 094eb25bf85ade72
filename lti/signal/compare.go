package signal

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b have the same length and every sample
// pair is equal within eps, using a relative comparison for large values.
// eps <= 0 selects a default of 1e-12.
//
// [Signal.Equal] remains the exact comparison; this helper exists for
// real-domain results accumulated through floating-point arithmetic.
func NearlyEqual(a, b Signal[float64], eps float64) bool {
	if len(a.values) != len(b.values) {
		return false
	}

	if eps <= 0 {
		eps = defaultEpsilon
	}

	for i := range a.values {
		if !nearlyEqual(a.values[i], b.values[i], eps) {
			return false
		}
	}

	return true
}

func nearlyEqual(a, b, eps float64) bool {
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
