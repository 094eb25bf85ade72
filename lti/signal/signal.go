package signal

import (
	"github.com/cwbudde/algo-vecmath"
)

// Number is the set of sample domains a Signal can carry: signed integers
// or floating-point values. Arithmetic combines same-domain signals only.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Signal is an immutable, finite, ordered sequence of samples with an
// implicit zero value outside its bounds.
//
// Reading at any signed index never fails: [Signal.At] returns the stored
// sample within bounds and the domain's zero everywhere else. This infinite
// zero-padding view is what convolution, the decompositions, and the DFT
// are built on.
//
// A Signal is a value: construction copies its input, accessors copy their
// output, and every transform produces a new Signal. The zero value is the
// empty signal.
type Signal[T Number] struct {
	values []T
}

// New constructs a signal from an ordered sample sequence.
// The input slice is copied; later mutation of it does not affect the signal.
func New[T Number](values []T) Signal[T] {
	s := Signal[T]{values: make([]T, len(values))}
	copy(s.values, values)
	return s
}

// Len returns the number of samples.
func (s Signal[T]) Len() int {
	return len(s.values)
}

// At returns the sample at index i, or the domain's zero if i is negative
// or at least Len().
func (s Signal[T]) At(i int) T {
	if i < 0 || i >= len(s.values) {
		var zero T
		return zero
	}

	return s.values[i]
}

// Values returns a copy of the sample sequence.
func (s Signal[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// Add returns the sample-wise sum of s and other.
// The result has length max(s.Len(), other.Len()); the shorter operand is
// zero-extended through the padded read.
func (s Signal[T]) Add(other Signal[T]) Signal[T] {
	n := len(s.values)
	if len(other.values) > n {
		n = len(other.values)
	}

	out := make([]T, n)

	if dst, ok := any(out).([]float64); ok {
		a := any(s.values).([]float64)
		b := any(other.values).([]float64)
		copy(dst, a)
		vecmath.AddBlockInPlace(dst[:len(b)], b)
		return Signal[T]{values: out}
	}

	for i := range out {
		out[i] = s.At(i) + other.At(i)
	}

	return Signal[T]{values: out}
}

// Equal reports whether s and other have the same length and identical
// samples in order. Comparison is exact; floating-point callers needing a
// tolerance should use [NearlyEqual].
func (s Signal[T]) Equal(other Signal[T]) bool {
	if len(s.values) != len(other.values) {
		return false
	}

	for i := range s.values {
		if s.values[i] != other.values[i] {
			return false
		}
	}

	return true
}

// ToReal converts a signal of any sample domain to the real-valued domain.
func ToReal[T Number](s Signal[T]) Signal[float64] {
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = float64(v)
	}

	return Signal[float64]{values: out}
}
