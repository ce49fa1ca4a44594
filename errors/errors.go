package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Stage indicates where in processing the error occurred
type Stage string

const (
	StageRegister Stage = "register" // demo registration
	StageLookup   Stage = "lookup"   // demo lookup by name
	StageRun      Stage = "run"      // demo execution
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound  Kind = "not_found"
	KindDuplicate Kind = "duplicate"
	KindCanceled  Kind = "canceled"
	KindIO        Kind = "io"
)

// Error is the structured error type used by the registry and CLI
type Error struct {
	Cause  error
	Stage  Stage
	Kind   Kind
	Name   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Stage))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Name != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Name))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Stage == t.Stage && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(stage Stage, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Stage: stage,
			Kind:  kind,
		},
	}
}

// Name sets the demo name the error refers to
func (b *Builder) Name(name string) *Builder {
	b.err.Name = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotFound creates an unknown-demo error
func NotFound(stage Stage, name string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindNotFound,
		Name:   name,
		Detail: "no demonstration with this name",
	}
}

// Duplicate creates a duplicate-registration error
func Duplicate(stage Stage, name string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindDuplicate,
		Name:   name,
		Detail: "demonstration already registered",
	}
}

// Canceled creates a run-canceled error
func Canceled(stage Stage, name string, cause error) *Error {
	return &Error{
		Stage: stage,
		Kind:  KindCanceled,
		Name:  name,
		Cause: cause,
	}
}

// IO creates a write-failure error
func IO(stage Stage, name string, cause error) *Error {
	return &Error{
		Stage: stage,
		Kind:  KindIO,
		Name:  name,
		Cause: cause,
	}
}
