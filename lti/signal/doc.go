// Package signal provides the generic discrete-time signal abstraction the
// rest of the library is built on.
//
// A [Signal] is an immutable, finite sequence of samples over a numeric
// domain (signed integer or floating point, see [Number]) with an implicit
// zero value outside its bounds. The zero-padded read is the foundational
// contract: every algorithm in this module assumes that indexing before the
// first sample or past the last one yields the domain's zero.
//
// # Usage
//
// Construct signals from sample slices and combine them with Add and Fold:
//
//	a := signal.New([]float64{1, 4, 8, 3})
//	b := signal.New([]float64{2, 3})
//
//	sum := a.Add(b)                        // [3, 7, 8, 3]
//	out := a.Fold(signal.New([]float64{0, 0, 1}))  // a delayed by two samples
//
// Both operations zero-extend through the padded read, so operands of
// different lengths combine without explicit padding.
//
// Elementary basis signals are available directly:
//
//	d := signal.UnitImpulse[float64](8, 0)  // discrete delta
//	u := signal.UnitStep[float64](8, 3)     // right-sided step from index 3
//
// # Numeric domains
//
// The integer and real domains share identical structural behavior. The
// arithmetic differs where division is involved: see the decompose package
// for the truncation rules. [ToReal] converts an integer-domain signal for
// consumers that require real samples, such as the spectrum package.
//
// # Performance
//
// Float64 signals take a vectorized path through algo-vecmath for addition
// and convolution; all other domains use the scalar loops. Fold is the
// direct O(n*m) convolution, intended for short kernels.
package signal
