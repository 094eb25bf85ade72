package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-lti/lti/signal"
)

func ExampleSignal_Add() {
	a := signal.New([]int{1, 4, 8, 3})
	b := signal.New([]int{2, 3})

	// The shorter operand is zero-extended.
	fmt.Println(a.Add(b).Values())

	// Output:
	// [3 7 8 3]
}

func ExampleSignal_Fold() {
	s := signal.New([]int{1, 2, 3, 4, 5})

	// Folding with a delayed unit impulse shifts the signal right.
	delayed := s.Fold(signal.New([]int{0, 0, 1}))
	fmt.Println(delayed.Values())

	// Folding with a length-1 kernel scales it.
	scaled := s.Fold(signal.New([]int{2}))
	fmt.Println(scaled.Values())

	// Output:
	// [0 0 1 2 3 4 5]
	// [2 4 6 8 10]
}

func ExampleSignal_At() {
	s := signal.New([]float64{4, 2, 5})

	// Reads outside the bounds return zero, never fail.
	fmt.Println(s.At(1), s.At(-3), s.At(7))

	// Output:
	// 2 0 0
}

func ExampleUnitStep() {
	u := signal.UnitStep[int](5, 2)
	fmt.Println(u.Values())

	// Output:
	// [0 0 1 1 1]
}
