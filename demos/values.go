package demos

import (
	"context"
	"io"

	"github.com/conceptlab/walkthrough"
)

type point struct {
	X, Y int
}

// Values demonstrates value vs. reference semantics: struct assignment
// copies, slice assignment shares the backing array, and strings are
// immutable values.
func Values() walkthrough.Demo {
	return walkthrough.DemoFunc{
		ID:   "values",
		Desc: "value vs. reference semantics",
		Fn:   runValues,
	}
}

func runValues(_ context.Context, w io.Writer) error {
	p := newPrinter(w)

	// Struct assignment copies the whole value.
	original := point{X: 1, Y: 2}
	copied := original
	copied.X = 99

	p.Linef("Struct (value type): original=%v copied=%v", original, copied)
	p.Linef("Copy left original untouched: %v", original.X == 1)

	// Slice assignment shares the backing array.
	originalSlice := []int{1, 2, 3}
	sliceRef := originalSlice
	sliceRef[0] = 10

	p.Blank()
	p.Linef("Slice (shares backing array): original=%v ref=%v", originalSlice, sliceRef)
	p.Linef("Both views see the write: %v", originalSlice[0] == 10)

	// Appending past capacity detaches the reference.
	grown := append(sliceRef, 4)
	grown[0] = 0
	p.Linef("After append past capacity, views diverge: original=%v grown=%v", originalSlice, grown)

	// Strings are immutable; concatenation builds a new value.
	originalString := "hello"
	newString := originalString + " world"

	p.Blank()
	p.Linef("Original string unchanged: %q", originalString)
	p.Linef("Concatenation built a new value: %q", newString)

	// A pointer is an explicit shared reference to one value.
	x := 10
	ptr := &x
	*ptr = 20
	p.Blank()
	p.Linef("Write through pointer: x=%d", x)

	return p.finish("values")
}
