package demos

import (
	"context"
	"io"

	"github.com/conceptlab/walkthrough"
)

// FreshState demonstrates shared vs. fresh initial state: an accumulator
// closure that keeps state across calls, against a function that allocates
// its state per call.
func FreshState() walkthrough.Demo {
	return walkthrough.DemoFunc{
		ID:   "fresh-state",
		Desc: "shared vs. fresh initial state",
		Fn:   runFreshState,
	}
}

// sharedAppender captures one slice for all calls to the returned closure.
// Every call appends into the same backing state.
func sharedAppender() func(int) []int {
	var items []int
	return func(v int) []int {
		items = append(items, v)
		return items
	}
}

// freshAppend allocates per call; callers never share state by accident.
func freshAppend(v int, items []int) []int {
	if items == nil {
		items = make([]int, 0, 1)
	}
	return append(items, v)
}

func runFreshState(_ context.Context, w io.Writer) error {
	p := newPrinter(w)

	p.Line("Shared accumulator (state captured once):")
	appendShared := sharedAppender()
	p.Linef("First call: %v", appendShared(1))
	p.Linef("Second call: %v", appendShared(2))

	p.Blank()
	p.Line("Fresh state per call:")
	p.Linef("First call: %v", freshAppend(1, nil))
	p.Linef("Second call: %v", freshAppend(2, nil))

	return p.finish("fresh-state")
}
