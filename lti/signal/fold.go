package signal

import (
	"github.com/cwbudde/algo-vecmath"
)

// Fold convolves s with kernel and returns the convolution sum, a new
// signal of length s.Len() + kernel.Len() - 1:
//
//	out[i] = sum_j kernel[j] * s[i-j]
//
// where s[i-j] is the zero-padded read, so negative and past-the-end
// positions contribute nothing. This is the direct O(n*m) time-domain
// definition; there is no transform-domain fast path.
//
// Folding with the length-1 kernel [c] scales the signal by c, and folding
// with a unit impulse delayed by k prepends k zeros. Either operand being
// empty yields the empty signal.
func (s Signal[T]) Fold(kernel Signal[T]) Signal[T] {
	n := len(s.values)
	m := len(kernel.values)
	if n == 0 || m == 0 {
		return Signal[T]{}
	}

	out := make([]T, n+m-1)

	if dst, ok := any(out).([]float64); ok {
		foldFloat64(dst, any(s.values).([]float64), any(kernel.values).([]float64))
		return Signal[T]{values: out}
	}

	for i := range out {
		var sum T
		for j := 0; j < m; j++ {
			sum += kernel.values[j] * s.At(i-j)
		}

		out[i] = sum
	}

	return Signal[T]{values: out}
}

// foldFloat64 accumulates the convolution sum into the zeroed dst using the
// equivalent scatter form dst[i+j] += a[i]*b[j], which keeps the inner loop
// contiguous for vecmath.
func foldFloat64(dst, a, b []float64) {
	const simdThreshold = 4

	m := len(b)
	if m < simdThreshold {
		for i := range a {
			for j := range b {
				dst[i+j] += a[i] * b[j]
			}
		}

		return
	}

	temp := make([]float64, m)
	for i := range a {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}
