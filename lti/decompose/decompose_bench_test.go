package decompose_test

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-lti/lti/decompose"
	"github.com/cwbudde/algo-lti/lti/signal"
)

func benchSignal(n int) signal.Signal[float64] {
	rng := rand.New(rand.NewSource(1))

	values := make([]float64, n)
	for i := range values {
		values[i] = rng.Float64()*2 - 1
	}

	return signal.New(values)
}

func BenchmarkImpulse(b *testing.B) {
	s := benchSignal(256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = decompose.Impulse(s)
	}
}

func BenchmarkStep(b *testing.B) {
	s := benchSignal(256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decompose.Step(s)
	}
}

func BenchmarkEvenOdd(b *testing.B) {
	s := benchSignal(4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = decompose.EvenOdd(s)
	}
}
