package demos

import (
	"context"
	"errors"
	"io"

	"github.com/conceptlab/walkthrough"
	"github.com/conceptlab/walkthrough/managed"
)

// errScanFailed is the simulated failure raised inside the scoped body to
// show that cleanup still runs and the error is not swallowed.
var errScanFailed = errors.New("simulated scan failure")

// ScopedResource demonstrates the managed resource lifecycle: scoped
// execution on the success path, scoped execution on the failure path, and
// the manual acquire/defer-release alternative.
func ScopedResource() walkthrough.Demo {
	return walkthrough.DemoFunc{
		ID:   "scoped-resource",
		Desc: "managed resource lifecycle and cleanup guarantees",
		Fn:   runScopedResource,
	}
}

func runScopedResource(_ context.Context, w io.Writer) error {
	p := newPrinter(w)

	p.Line("Scoped execution (release guaranteed):")
	db := managed.New("my_database", managed.WithOutput(w))
	err := db.RunScoped(func(r *managed.Resource) error {
		p.Linef("Database is connected: %v", r.Active())
		return nil
	})
	if err != nil {
		return err
	}
	p.Linef("After the scope: active=%v", db.Active())

	p.Blank()
	p.Line("Scoped execution with a failing body:")
	flaky := managed.New("flaky_database", managed.WithOutput(w))
	err = flaky.RunScoped(func(*managed.Resource) error {
		return errScanFailed
	})
	// The failure comes back unchanged; the resource is still released.
	p.Linef("Body failed as expected: %v", errors.Is(err, errScanFailed))
	p.Linef("Released despite the failure: active=%v", flaky.Active())

	p.Blank()
	p.Line("Manual management (the scoped wrapper exists to replace this):")
	manual := managed.New("manual_db", managed.WithOutput(w))
	func() {
		manual.Acquire()
		defer manual.Release() // easy to forget without the wrapper
		p.Linef("Database is connected: %v", manual.Active())
	}()
	p.Linef("After the deferred release: active=%v", manual.Active())

	return p.finish("scoped-resource")
}
