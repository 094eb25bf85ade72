package spectrum_test

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-lti/lti/signal"
	"github.com/cwbudde/algo-lti/lti/spectrum"
)

func benchSignal(n int) signal.Signal[float64] {
	rng := rand.New(rand.NewSource(1))

	values := make([]float64, n)
	for i := range values {
		values[i] = rng.Float64()*2 - 1
	}

	return signal.New(values)
}

func BenchmarkReal64(b *testing.B) {
	s := benchSignal(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spectrum.Real(s)
	}
}

func BenchmarkReal512(b *testing.B) {
	s := benchSignal(512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spectrum.Real(s)
	}
}
