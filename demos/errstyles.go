package demos

import (
	"context"
	"errors"
	"io"

	"github.com/conceptlab/walkthrough"
	werrors "github.com/conceptlab/walkthrough/errors"
)

// errKeyMissing is the sentinel returned by the error-returning lookup.
var errKeyMissing = errors.New("key missing")

// ErrorStyles demonstrates the two lookup styles side by side: pre-check
// with the comma-ok form, and attempt-then-inspect with an error return.
func ErrorStyles() walkthrough.Demo {
	return walkthrough.DemoFunc{
		ID:   "error-styles",
		Desc: "pre-check lookups vs. error-returning lookups",
		Fn:   runErrorStyles,
	}
}

// precheckLookup uses the comma-ok form to test before using the value.
func precheckLookup(data map[string]int, key string) (int, bool) {
	v, ok := data[key]
	return v, ok
}

// errorLookup attempts the access and reports failure through the error
// return, letting the caller decide with errors.Is.
func errorLookup(data map[string]int, key string) (int, error) {
	v, ok := data[key]
	if !ok {
		return 0, errKeyMissing
	}
	return v, nil
}

func runErrorStyles(_ context.Context, w io.Writer) error {
	p := newPrinter(w)

	sample := map[string]int{"a": 1, "b": 2}

	for _, key := range []string{"a", "z"} {
		if v, ok := precheckLookup(sample, key); ok {
			p.Linef("Pre-check result for %q: %d", key, v)
		} else {
			p.Linef("Pre-check result for %q: missing", key)
		}

		v, err := errorLookup(sample, key)
		switch {
		case err == nil:
			p.Linef("Error-return result for %q: %d", key, v)
		case errors.Is(err, errKeyMissing):
			p.Linef("Error-return result for %q: missing", key)
		default:
			return werrors.IO(werrors.StageRun, "error-styles", err)
		}
	}

	return p.finish("error-styles")
}
