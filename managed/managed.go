package managed

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Resource is a connection-like handle with an explicit lifecycle.
// It starts inactive; Acquire and Release move it between the two states.
// Both operations are total: they have no preconditions and cannot fail.
type Resource struct {
	out       io.Writer
	id        string
	observers []Observer
	active    bool
}

// Option configures a Resource at construction time.
type Option func(*Resource)

// WithOutput redirects the resource's status lines. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Resource) {
		r.out = w
	}
}

// WithObserver subscribes an observer before the first transition.
func WithObserver(o Observer) Option {
	return func(r *Resource) {
		r.observers = append(r.observers, o)
	}
}

// New creates an inactive resource labeled with id.
func New(id string, opts ...Option) *Resource {
	r := &Resource{
		id:  id,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the immutable label the resource was constructed with.
func (r *Resource) ID() string {
	return r.id
}

// Active reports whether Acquire has been called more recently than Release.
func (r *Resource) Active() bool {
	return r.active
}

// Acquire marks the resource active and emits the connected notification.
// Calling Acquire while already active re-affirms the state.
func (r *Resource) Acquire() {
	reaffirmed := r.active
	r.active = true

	fmt.Fprintf(r.out, "Connected to %s\n", r.id)
	Logger().Debug("resource acquired",
		zap.String("id", r.id),
		zap.Bool("reaffirmed", reaffirmed))

	r.notify(Event{Type: EventAcquired, ID: r.id, Active: true})
}

// Release marks the resource inactive unconditionally and emits the
// disconnected notification. Safe to call on a resource that was never
// acquired, and safe to call repeatedly.
func (r *Resource) Release() {
	wasActive := r.active
	r.active = false

	fmt.Fprintf(r.out, "Disconnected from %s\n", r.id)
	Logger().Debug("resource released",
		zap.String("id", r.id),
		zap.Bool("was_active", wasActive))

	r.notify(Event{Type: EventReleased, ID: r.id, Active: false})
}

// RunScoped acquires the resource, invokes body with it, and guarantees
// Release runs exactly once before RunScoped returns. The guarantee holds
// on the normal path, the error path, and the panic path. The error
// returned by body is passed through unchanged: never wrapped, never
// swallowed. A panic inside body propagates after Release has run.
func (r *Resource) RunScoped(body func(*Resource) error) error {
	r.Acquire()
	defer r.Release()
	return body(r)
}
