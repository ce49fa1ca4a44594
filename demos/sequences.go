package demos

import (
	"context"
	"io"
	"iter"

	"github.com/conceptlab/walkthrough"
)

// Sequences demonstrates eager collection building against lazy iteration:
// a loop-built slice, a transform helper, and an iter.Seq generator that
// yields values one at a time.
func Sequences() walkthrough.Demo {
	return walkthrough.DemoFunc{
		ID:   "sequences",
		Desc: "eager collection building vs. lazy iteration",
		Fn:   runSequences,
	}
}

// doubled yields 2*i for i in [0, n), producing values on demand instead
// of materializing a slice.
func doubled(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i * 2) {
				return
			}
		}
	}
}

func runSequences(_ context.Context, w io.Writer) error {
	p := newPrinter(w)

	numbers := []int{1, 2, 3, 4, 5}

	// Building a slice the long way.
	squaresVerbose := make([]int, 0, len(numbers))
	for _, n := range numbers {
		squaresVerbose = append(squaresVerbose, n*n)
	}

	// The same result through a transform helper.
	squaresMapped := Map(numbers, func(n int) int { return n * n })

	p.Linef("Numbers: %v", numbers)
	p.Linef("Squares (loop): %v", squaresVerbose)
	p.Linef("Squares (Map): %v", squaresMapped)

	p.Blank()
	p.Line("Lazy iteration (values produced on demand):")

	// Eager: all thousand values exist up front.
	eager := make([]int, 0, 1000)
	for v := range doubled(1000) {
		eager = append(eager, v)
	}
	p.Linef("Eager slice holds all %d values", len(eager))

	// Lazy: stop after five, nothing else is ever produced.
	var firstFive []int
	for v := range doubled(1000) {
		firstFive = append(firstFive, v)
		if len(firstFive) == 5 {
			break
		}
	}
	p.Linef("Generator first few values: %v", firstFive)

	return p.finish("sequences")
}
