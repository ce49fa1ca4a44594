// Package errors provides structured error types for the walkthrough registry
// and CLI.
//
// Errors are categorized by Stage (where the error occurred) and Kind (error
// category), and carry the demonstration name they refer to plus an optional
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.StageRun, errors.KindIO).
//		Name("sequences").
//		Cause(writeErr).
//		Detail("writer failed mid-section").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.StageLookup, "no-such-demo")
//	err := errors.IO(errors.StageRun, "values", writeErr)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Stage and Kind agree.
//
// The managed package intentionally does not use this package: its Acquire
// and Release operations are total and define no error conditions, and its
// RunScoped returns the body's error unchanged.
package errors
