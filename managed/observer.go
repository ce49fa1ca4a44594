package managed

import "reflect"

// EventType identifies a lifecycle transition.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventReleased
)

// String returns the transition name.
func (t EventType) String() string {
	switch t {
	case EventAcquired:
		return "acquired"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Event describes a single lifecycle transition of a Resource.
// No-op transitions (Acquire while active, Release while inactive) are
// reported the same as state-changing ones.
type Event struct {
	ID     string
	Type   EventType
	Active bool
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnResourceEvent(e Event) {
	f(e)
}

// Subscribe adds an observer for lifecycle events. Observers are notified
// in subscription order, synchronously, after the transition completes.
func (r *Resource) Subscribe(o Observer) {
	r.observers = append(r.observers, o)
}

// Unsubscribe removes a previously subscribed observer. Observers with a
// non-comparable dynamic type, such as ObserverFunc, cannot be matched;
// for those the call is a no-op and the observer stays subscribed.
func (r *Resource) Unsubscribe(o Observer) {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return
	}
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Resource) notify(e Event) {
	for _, o := range r.observers {
		o.OnResourceEvent(e)
	}
}
