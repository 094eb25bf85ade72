package signal

// Zeros returns the all-zero signal of length n.
// Negative n is treated as zero.
func Zeros[T Number](n int) Signal[T] {
	if n < 0 {
		n = 0
	}

	return Signal[T]{values: make([]T, n)}
}

// UnitImpulse returns a length-n signal holding 1 at index at and zero
// elsewhere. If at falls outside 0..n-1 the result is all zeros.
func UnitImpulse[T Number](n, at int) Signal[T] {
	s := Zeros[T](n)
	if at >= 0 && at < len(s.values) {
		s.values[at] = 1
	}

	return s
}

// UnitStep returns a length-n signal holding 1 at every index >= from and
// zero before that. from <= 0 gives the all-ones signal, from >= n all
// zeros.
func UnitStep[T Number](n, from int) Signal[T] {
	s := Zeros[T](n)
	if from < 0 {
		from = 0
	}

	for i := from; i < len(s.values); i++ {
		s.values[i] = 1
	}

	return s
}

// Scale returns a new signal with every sample multiplied by factor.
func Scale[T Number](s Signal[T], factor T) Signal[T] {
	out := make([]T, len(s.values))
	for i, v := range s.values {
		out[i] = v * factor
	}

	return Signal[T]{values: out}
}
