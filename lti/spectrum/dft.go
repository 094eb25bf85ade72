package spectrum

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lti/lti/signal"
)

// ErrEmptySignal is returned when a zero-length signal is transformed;
// the frequency spacing 2*pi/n is undefined at n = 0.
var ErrEmptySignal = errors.New("spectrum: empty signal")

// RealSpectrum holds the cosine and sine amplitude spectra of a signal,
// as produced by [Real]. Both spectra have n/2 + 1 bins for an input of
// length n.
type RealSpectrum struct {
	cos signal.Signal[float64]
	sin signal.Signal[float64]
}

// CosAmplitude returns the cosine amplitude spectrum.
func (r *RealSpectrum) CosAmplitude() signal.Signal[float64] { return r.cos }

// SinAmplitude returns the sine amplitude spectrum.
func (r *RealSpectrum) SinAmplitude() signal.Signal[float64] { return r.sin }

// Bins returns the number of frequency bins.
func (r *RealSpectrum) Bins() int { return r.cos.Len() }

// Real computes the real DFT of s by direct evaluation of the cosine and
// sine basis sums:
//
//	cos[k] = sum_t s[t] * cos(2*pi*k*t/n)
//	sin[k] = sum_t s[t] * sin(2*pi*k*t/n)
//
// for k in 0..n/2. This is the O(n^2) definition, not a fast transform.
// Integer-domain samples are widened to float64 before accumulation.
// A zero-length signal returns [ErrEmptySignal].
func Real[T signal.Number](s signal.Signal[T]) (*RealSpectrum, error) {
	n := s.Len()
	if n == 0 {
		return nil, ErrEmptySignal
	}

	bins := n/2 + 1
	cosAmp := make([]float64, bins)
	sinAmp := make([]float64, bins)

	if samples, ok := any(s.Values()).([]float64); ok {
		realDFTFloat64(cosAmp, sinAmp, samples)
	} else {
		realDFTPadded(cosAmp, sinAmp, s)
	}

	return &RealSpectrum{cos: signal.New(cosAmp), sin: signal.New(sinAmp)}, nil
}

// realDFTPadded is the scalar path over the zero-padded read. The inner
// summation runs one index past the last sample; that term reads zero and
// contributes nothing.
func realDFTPadded[T signal.Number](cosAmp, sinAmp []float64, s signal.Signal[T]) {
	n := s.Len()

	for k := range cosAmp {
		var cs, sn float64
		for t := 0; t <= n; t++ {
			angle := 2 * math.Pi * float64(k) * float64(t) / float64(n)
			v := float64(s.At(t))
			cs += v * math.Cos(angle)
			sn += v * math.Sin(angle)
		}

		cosAmp[k] = cs
		sinAmp[k] = sn
	}
}

// realDFTFloat64 evaluates each bin as a dot product against a precomputed
// basis row. The past-the-end term of the scalar path is identically zero
// and is dropped here.
func realDFTFloat64(cosAmp, sinAmp, samples []float64) {
	n := len(samples)
	step := 2 * math.Pi / float64(n)

	cosRow := make([]float64, n)
	sinRow := make([]float64, n)

	for k := range cosAmp {
		for t := 0; t < n; t++ {
			angle := step * float64(k) * float64(t)
			cosRow[t] = math.Cos(angle)
			sinRow[t] = math.Sin(angle)
		}

		cosAmp[k] = vecmath.DotProduct(samples, cosRow)
		sinAmp[k] = vecmath.DotProduct(samples, sinRow)
	}
}
