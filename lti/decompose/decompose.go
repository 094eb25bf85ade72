package decompose

import (
	"errors"

	"github.com/cwbudde/algo-lti/lti/signal"
)

// ErrEmptySignal is returned when a decomposition that divides or wraps by
// the signal length receives a zero-length signal.
var ErrEmptySignal = errors.New("decompose: empty signal")

// Impulse decomposes s into its impulse components: n signals of length n,
// where the i-th holds s[i] at position i and zero elsewhere.
//
// The element-wise sum of the components reconstructs s exactly in both
// domains. A zero-length signal yields an empty slice.
func Impulse[T signal.Number](s signal.Signal[T]) []signal.Signal[T] {
	n := s.Len()

	out := make([]signal.Signal[T], 0, n)
	for i := 0; i < n; i++ {
		out = append(out, signal.Scale(signal.UnitImpulse[T](n, i), s.At(i)))
	}

	return out
}

// Step decomposes s into scaled, time-shifted unit-step components: n
// signals of length n. Component 0 is all zeros; component i (i >= 1) is a
// right-sided step of height s[i]-s[i-1] starting at index i.
//
// Summing the components reconstructs s up to the constant offset s[0]:
// the first component stays all-zero regardless of s[0], so the initial
// value is not reproduced by this family. That is a property of the
// construction, not an error.
func Step[T signal.Number](s signal.Signal[T]) ([]signal.Signal[T], error) {
	n := s.Len()
	if n == 0 {
		return nil, ErrEmptySignal
	}

	out := make([]signal.Signal[T], 0, n)
	out = append(out, signal.Zeros[T](n))

	for i := 1; i < n; i++ {
		diff := s.At(i) - s.At(i-1)
		out = append(out, signal.Scale(signal.UnitStep[T](n, i), diff))
	}

	return out, nil
}

// EvenOdd splits s into its even (symmetric) and odd (antisymmetric) parts
// under the reflection i -> n-i, treating the index as periodic with
// period n for wrapping purposes only:
//
//	even[i] = (s[i] + s[(n-i) mod n]) / 2
//	odd[i]  = (s[i] - s[(n-i) mod n]) / 2
//
// with even[0] = s[0] and odd[0] = 0. In the real domain even.Add(odd)
// reconstructs s exactly. In the integer domain the division truncates
// toward zero, so reconstruction holds only when every sum and difference
// is even.
func EvenOdd[T signal.Number](s signal.Signal[T]) (signal.Signal[T], signal.Signal[T], error) {
	n := s.Len()
	if n == 0 {
		return signal.Signal[T]{}, signal.Signal[T]{}, ErrEmptySignal
	}

	even := make([]T, n)
	odd := make([]T, n)
	even[0] = s.At(0)

	for i := 1; i < n; i++ {
		front := s.At(i % n)
		back := s.At((n - i) % n)
		even[i] = (front + back) / 2
		odd[i] = (front - back) / 2
	}

	return signal.New(even), signal.New(odd), nil
}
