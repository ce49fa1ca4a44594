package demos

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conceptlab/walkthrough"
	"github.com/conceptlab/walkthrough/errors"
)

// Registry holds demonstration sections in registration order and runs
// them with a banner per section.
//
// Registration is not safe for concurrent use; lookups and runs are safe
// once registration has completed.
type Registry struct {
	byName map[string]walkthrough.Demo
	demos  []walkthrough.Demo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]walkthrough.Demo),
	}
}

// Default returns a registry pre-loaded with the standard walkthrough
// sections, in walkthrough order.
func Default() *Registry {
	reg := NewRegistry()
	for _, d := range []walkthrough.Demo{
		Values(),
		FreshState(),
		Sequences(),
		ScopedResource(),
		Functional(),
		Inheritance(),
		ErrorStyles(),
	} {
		// Names are package constants; a collision here is a programming
		// error, not a runtime condition.
		if err := reg.Register(d); err != nil {
			panic(err)
		}
	}
	return reg
}

// Register adds a demonstration. Registering a name twice returns a
// KindDuplicate error.
func (g *Registry) Register(d walkthrough.Demo) error {
	if _, exists := g.byName[d.Name()]; exists {
		return errors.Duplicate(errors.StageRegister, d.Name())
	}
	g.byName[d.Name()] = d
	g.demos = append(g.demos, d)
	return nil
}

// Lookup returns the demonstration registered under name, or a
// KindNotFound error.
func (g *Registry) Lookup(name string) (walkthrough.Demo, error) {
	d, ok := g.byName[name]
	if !ok {
		return nil, errors.NotFound(errors.StageLookup, name)
	}
	return d, nil
}

// Names returns the registered names in registration order.
func (g *Registry) Names() []string {
	names := make([]string, len(g.demos))
	for i, d := range g.demos {
		names[i] = d.Name()
	}
	return names
}

// All returns the registered demonstrations in registration order.
func (g *Registry) All() []walkthrough.Demo {
	return g.demos
}

// RunAll runs every registered demonstration in order, writing a banner
// before each one. The first failure stops the run and is returned
// unchanged. Cancellation between sections returns a KindCanceled error.
func (g *Registry) RunAll(ctx context.Context, w io.Writer) error {
	runID := uuid.NewString()
	Logger().Debug("walkthrough run started",
		zap.String("run_id", runID),
		zap.Int("sections", len(g.demos)))

	for i, d := range g.demos {
		if err := ctx.Err(); err != nil {
			return errors.Canceled(errors.StageRun, d.Name(), err)
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.IO(errors.StageRun, d.Name(), err)
			}
		}
		if err := g.run(ctx, w, d, runID); err != nil {
			return err
		}
	}

	Logger().Debug("walkthrough run finished", zap.String("run_id", runID))
	return nil
}

// RunOne runs the demonstration registered under name. Unknown names
// return a KindNotFound error; a demonstration failure is returned
// unchanged.
func (g *Registry) RunOne(ctx context.Context, w io.Writer, name string) error {
	d, err := g.Lookup(name)
	if err != nil {
		return err
	}
	return g.run(ctx, w, d, uuid.NewString())
}

func (g *Registry) run(ctx context.Context, w io.Writer, d walkthrough.Demo, runID string) error {
	Logger().Debug("section started",
		zap.String("run_id", runID),
		zap.String("section", d.Name()))

	if _, err := fmt.Fprintf(w, "%s\n\n", Banner(d.Name())); err != nil {
		return errors.IO(errors.StageRun, d.Name(), err)
	}
	if err := d.Run(ctx, w); err != nil {
		Logger().Debug("section failed",
			zap.String("run_id", runID),
			zap.String("section", d.Name()),
			zap.Error(err))
		return err
	}

	Logger().Debug("section finished",
		zap.String("run_id", runID),
		zap.String("section", d.Name()))
	return nil
}

// Banner renders the section heading for a demonstration name.
func Banner(name string) string {
	return "=== " + strings.ToUpper(strings.ReplaceAll(name, "-", " ")) + " ==="
}
