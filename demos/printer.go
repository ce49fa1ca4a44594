package demos

import (
	"fmt"
	"io"

	"github.com/conceptlab/walkthrough/errors"
)

// printer writes a section's status lines and remembers the first write
// failure, so section bodies can stay linear instead of checking every
// Fprintf.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) Line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) Linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Blank() {
	p.Line("")
}

// finish returns nil, or a structured IO error naming the section if any
// write failed.
func (p *printer) finish(name string) error {
	if p.err == nil {
		return nil
	}
	return errors.IO(errors.StageRun, name, p.err)
}
