// Package managed provides a connection-like resource handle with an
// explicit acquire/release lifecycle and a scoped-execution wrapper that
// guarantees release on every exit path.
//
// # Lifecycle
//
// A Resource has exactly two states, inactive and active, and starts
// inactive:
//
//	Inactive --Acquire--> Active
//	Active   --Release--> Inactive
//	Active   --Acquire--> Active    (re-affirms, no-op transition)
//	Inactive --Release--> Inactive  (no-op transition)
//
// Acquire and Release are total operations: no preconditions, no error
// conditions. There is no terminal state; a resource may be cycled
// indefinitely.
//
// # Scoped Execution
//
// RunScoped is the one construct with a cleanup guarantee. It acquires the
// resource, runs the body, and releases exactly once whether the body
// returns normally, returns an error, or panics:
//
//	r := managed.New("db1")
//	err := r.RunScoped(func(r *managed.Resource) error {
//	    fmt.Println(r.Active()) // true
//	    return nil
//	})
//	// r.Active() == false, always
//
// RunScoped never wraps or swallows the body's error; cleanup is
// guaranteed, suppression is not.
//
// # Notifications
//
// Each transition writes a status line ("Connected to <id>",
// "Disconnected from <id>") to the resource's writer, os.Stdout unless
// WithOutput is given, and notifies subscribed observers:
//
//	r.Subscribe(managed.ObserverFunc(func(e managed.Event) {
//	    log.Printf("%s %s", e.ID, e.Type)
//	}))
//
// # Thread Safety
//
// A Resource is NOT safe for concurrent use. It is designed for
// single-goroutine use; callers that share one instance across goroutines
// must synchronize both the transitions and the RunScoped body themselves.
package managed
