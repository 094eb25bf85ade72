package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-lti/lti/signal"
	"github.com/cwbudde/algo-lti/lti/spectrum"
)

func ExampleReal() {
	s := signal.New([]float64{4, 1, -5, -4})

	spec, _ := spectrum.Real(s)

	cos := spec.CosAmplitude()
	fmt.Printf("Bins: %d\n", spec.Bins())
	fmt.Printf("Cos amplitudes: %.0f %.0f %.0f\n", cos.At(0), cos.At(1), cos.At(2))

	// Output:
	// Bins: 3
	// Cos amplitudes: -4 9 2
}
