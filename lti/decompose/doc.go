// Package decompose splits signals into elementary LTI basis components.
//
// Three decompositions are provided, each consuming one signal and
// producing a fixed collection of new signals whose (weighted) sum relates
// back to the input:
//
//   - [Impulse]: one single-nonzero-sample component per input sample;
//     summing the components reconstructs the input exactly.
//   - [Step]: scaled, right-sided unit steps capturing the sample-to-sample
//     differences; the first component is always all-zero, so the sum
//     reconstructs the input up to the constant offset of its first sample.
//   - [EvenOdd]: the symmetric/antisymmetric split under index reflection;
//     exact reconstruction in the real domain, truncating in the integer
//     domain.
//
// # Usage
//
//	s := signal.New([]float64{4, 2, 5})
//
//	parts := decompose.Impulse(s)
//	steps, err := decompose.Step(s)
//	even, odd, err := decompose.EvenOdd(s)
//
// Impulse is total; Step and EvenOdd reject zero-length signals with
// [ErrEmptySignal] since their construction divides or wraps by the length.
package decompose
