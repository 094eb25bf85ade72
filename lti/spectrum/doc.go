// Package spectrum computes the real Discrete Fourier Transform of a
// signal by direct evaluation.
//
// [Real] produces the cosine and sine amplitude spectra, each a real-valued
// signal of n/2 + 1 bins. The evaluation is the textbook O(n^2) summation
// against the cosine/sine basis; fast (FFT-style) and complex-valued
// transforms are deliberately out of scope for this package.
//
// # Usage
//
//	s := signal.New([]float64{4, 1, -5, -4})
//
//	spec, err := spectrum.Real(s)
//	if err != nil {
//		// only zero-length inputs fail
//	}
//
//	cos := spec.CosAmplitude() // [-4, 9, 2]
//	sin := spec.SinAmplitude() // [0, 5, 0]
//
// The amplitudes are the raw basis correlations: no 2/n scaling is applied,
// so spec.CosAmplitude().At(0) is the plain sample sum of the input.
// Integer-domain signals are accepted and widened to float64.
package spectrum
