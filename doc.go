// Package walkthrough provides a guided tour of core Go concepts as a set
// of runnable demonstrations, plus a small managed-resource component with
// a real lifecycle contract.
//
// # Architecture Overview
//
// The module is organized into a few packages with distinct responsibilities:
//
//	walkthrough/         Root package with the core Demo interface
//	├── managed/         Managed resource: acquire/release with scoped execution
//	├── demos/           The demonstration sections and their registry
//	├── errors/          Structured error types for registry and CLI failures
//	└── cmd/walkthrough/ CLI: run all sections, one section, or pick in a TUI
//
// # Quick Start
//
// Run the standard walkthrough:
//
//	reg := demos.Default()
//	if err := reg.RunAll(ctx, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// Or use the managed resource directly:
//
//	r := managed.New("db1")
//	err := r.RunScoped(func(r *managed.Resource) error {
//	    fmt.Println(r.Active()) // true
//	    return nil
//	})
//	// r.Active() == false here, on every exit path
//
// # Demonstrations
//
// Each demonstration is an independent, linear sequence of status lines
// written to an io.Writer. Sections share no state; running one has no
// effect on any other. The scoped-resource section is the only one backed
// by a component with a behavioral contract; see package managed for the
// guarantees it makes.
//
// # Thread Safety
//
// Registry is safe for concurrent lookups after registration completes.
// A managed.Resource instance is NOT thread-safe and should be used by a
// single goroutine, or access must be synchronized by the caller.
package walkthrough
