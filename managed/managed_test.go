package managed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

type call int

const (
	callAcquire call = iota
	callRelease
)

func TestResource_ActiveTracksLastCall(t *testing.T) {
	tests := []struct {
		name   string
		calls  []call
		active bool
	}{
		{"no calls", nil, false},
		{"single acquire", []call{callAcquire}, true},
		{"single release", []call{callRelease}, false},
		{"acquire release", []call{callAcquire, callRelease}, false},
		{"release acquire", []call{callRelease, callAcquire}, true},
		{"double acquire", []call{callAcquire, callAcquire}, true},
		{"double release", []call{callRelease, callRelease}, false},
		{"full cycle twice", []call{callAcquire, callRelease, callAcquire, callRelease}, false},
		{"ends on acquire", []call{callAcquire, callRelease, callAcquire}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New("seq", WithOutput(io.Discard))
			for _, c := range tt.calls {
				switch c {
				case callAcquire:
					r.Acquire()
				case callRelease:
					r.Release()
				}
			}
			if r.Active() != tt.active {
				t.Errorf("Active() = %v after %v, want %v", r.Active(), tt.calls, tt.active)
			}
		})
	}
}

func TestResource_StartsInactive(t *testing.T) {
	r := New("fresh", WithOutput(io.Discard))
	if r.Active() {
		t.Error("new resource should be inactive")
	}
	if r.ID() != "fresh" {
		t.Errorf("ID() = %q, want %q", r.ID(), "fresh")
	}
}

func TestResource_StatusLines(t *testing.T) {
	var buf bytes.Buffer
	r := New("db1", WithOutput(&buf))

	r.Acquire()
	r.Release()

	want := "Connected to db1\nDisconnected from db1\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunScoped_NormalPath(t *testing.T) {
	var events []Event
	r := New("db1", WithOutput(io.Discard))
	r.Subscribe(ObserverFunc(func(e Event) {
		events = append(events, e)
	}))

	var sawActive bool
	err := r.RunScoped(func(r *Resource) error {
		sawActive = r.Active()
		return nil
	})
	if err != nil {
		t.Fatalf("RunScoped returned %v, want nil", err)
	}

	if !sawActive {
		t.Error("body should observe an active resource")
	}
	if r.Active() {
		t.Error("resource should be inactive after RunScoped returns")
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventAcquired || events[1].Type != EventReleased {
		t.Errorf("event order = [%s, %s], want [acquired, released]",
			events[0].Type, events[1].Type)
	}
}

func TestRunScoped_ErrorPath(t *testing.T) {
	boom := errors.New("boom")
	var releases int
	r := New("db2", WithOutput(io.Discard))
	r.Subscribe(ObserverFunc(func(e Event) {
		if e.Type == EventReleased {
			releases++
		}
	}))

	err := r.RunScoped(func(*Resource) error {
		return boom
	})

	if err != boom {
		t.Errorf("RunScoped returned %v, want the body's error unchanged", err)
	}
	if r.Active() {
		t.Error("resource should be inactive after a failed body")
	}
	if releases != 1 {
		t.Errorf("Release ran %d times, want exactly once", releases)
	}
}

func TestRunScoped_ErrorNotWrapped(t *testing.T) {
	boom := fmt.Errorf("lookup failed: %w", errors.New("boom"))
	r := New("db2", WithOutput(io.Discard))

	err := r.RunScoped(func(*Resource) error {
		return boom
	})

	// Identity, not just errors.Is: the wrapper must not re-wrap.
	if err != boom {
		t.Errorf("RunScoped returned %v, want the identical error value", err)
	}
}

func TestRunScoped_PanicPath(t *testing.T) {
	r := New("db3", WithOutput(io.Discard))

	func() {
		defer func() {
			v := recover()
			if v != "boom" {
				t.Errorf("recovered %v, want %q", v, "boom")
			}
		}()
		r.RunScoped(func(*Resource) error {
			panic("boom")
		})
		t.Error("RunScoped should not return normally after a panicking body")
	}()

	if r.Active() {
		t.Error("resource should be released even when the body panics")
	}
}

func TestRelease_IdempotentWithoutAcquire(t *testing.T) {
	r := New("never-acquired", WithOutput(io.Discard))

	r.Release()
	if r.Active() {
		t.Error("Release on an inactive resource should leave it inactive")
	}
	r.Release()
	if r.Active() {
		t.Error("second Release should leave the resource inactive")
	}
}

func TestAcquire_ReaffirmsWhileActive(t *testing.T) {
	var events []Event
	r := New("busy", WithOutput(io.Discard))
	r.Subscribe(ObserverFunc(func(e Event) {
		events = append(events, e)
	}))

	r.Acquire()
	r.Acquire()

	if !r.Active() {
		t.Error("resource should stay active after a double Acquire")
	}
	// Both transitions are observable, including the no-op one.
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Type != EventAcquired || !e.Active {
			t.Errorf("event %d = %+v, want acquired/active", i, e)
		}
	}
}

func TestRunScoped_ConcreteScenario(t *testing.T) {
	var buf bytes.Buffer
	r := New("db1", WithOutput(&buf))

	err := r.RunScoped(func(r *Resource) error {
		fmt.Fprintln(&buf, r.Active())
		return nil
	})
	if err != nil {
		t.Fatalf("RunScoped returned %v", err)
	}
	if r.Active() {
		t.Error("resource should be inactive after RunScoped")
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{"Connected to db1", "true", "Disconnected from db1"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestResource_CyclesIndefinitely(t *testing.T) {
	r := New("loop", WithOutput(io.Discard))
	for i := 0; i < 100; i++ {
		r.Acquire()
		if !r.Active() {
			t.Fatalf("cycle %d: not active after Acquire", i)
		}
		r.Release()
		if r.Active() {
			t.Fatalf("cycle %d: still active after Release", i)
		}
	}
}
