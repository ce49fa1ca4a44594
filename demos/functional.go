package demos

import (
	"context"
	"io"

	"github.com/conceptlab/walkthrough"
)

// Functional demonstrates function values, closures, and the generic
// Map/Filter helpers.
func Functional() walkthrough.Demo {
	return walkthrough.DemoFunc{
		ID:   "functional",
		Desc: "closures, function values, Map/Filter helpers",
		Fn:   runFunctional,
	}
}

// Map applies fn to every element of in and returns the results.
func Map[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of in for which keep returns true.
func Filter[T any](in []T, keep func(T) bool) []T {
	var out []T
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func runFunctional(_ context.Context, w io.Writer) error {
	p := newPrinter(w)

	// A function value behaves like any other value.
	square := func(x int) int { return x * x }
	p.Linef("Function value - square(5): %d", square(5))

	numbers := []int{1, 2, 3, 4, 5, 6}
	isEven := func(x int) bool { return x%2 == 0 }

	evenSquares := Map(Filter(numbers, isEven), square)
	p.Linef("Even squares (Filter+Map): %v", evenSquares)

	// The loop spelling of the same pipeline.
	var evenSquaresLoop []int
	for _, n := range numbers {
		if n%2 == 0 {
			evenSquaresLoop = append(evenSquaresLoop, n*n)
		}
	}
	p.Linef("Even squares (loop): %v", evenSquaresLoop)

	// Closures capture their environment by reference.
	counter := 0
	increment := func() int {
		counter++
		return counter
	}
	increment()
	increment()
	p.Linef("Closure captured counter: %d", increment())

	return p.finish("functional")
}
