package walkthrough

import (
	"context"
	"io"
)

// Demo is a single runnable demonstration section.
type Demo interface {
	// Name returns the stable, kebab-case identifier used to address the
	// demonstration from the CLI.
	Name() string

	// Summary returns a one-line description of what the section shows.
	Summary() string

	// Run writes the section's status lines to w. Implementations must be
	// self-contained: no state shared with other sections, no side effects
	// beyond w. Run returns the first write failure or, for sections that
	// exercise error propagation, the failure being demonstrated.
	Run(ctx context.Context, w io.Writer) error
}

// DemoFunc adapts a function to the Demo interface.
type DemoFunc struct {
	ID   string
	Desc string
	Fn   func(ctx context.Context, w io.Writer) error
}

func (d DemoFunc) Name() string    { return d.ID }
func (d DemoFunc) Summary() string { return d.Desc }

func (d DemoFunc) Run(ctx context.Context, w io.Writer) error {
	return d.Fn(ctx, w)
}
