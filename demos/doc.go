// Package demos contains the walkthrough's demonstration sections and the
// registry that runs them.
//
// Each section is an independent, linear sequence of human-readable status
// lines written to an io.Writer. Sections share no state and have no side
// effects beyond their writer; running one never affects another.
//
// # Registry
//
// Default returns a registry pre-loaded with the standard sections in
// walkthrough order:
//
//	reg := demos.Default()
//	reg.RunAll(ctx, os.Stdout)       // every section, banner per section
//	reg.RunOne(ctx, os.Stdout, "scoped-resource")
//
// Lookup of an unknown name and duplicate registration return structured
// errors from the errors package (KindNotFound, KindDuplicate).
//
// # Sections
//
//	values           value vs. reference semantics
//	fresh-state      shared vs. fresh initial state
//	sequences        eager collection building vs. lazy iteration
//	scoped-resource  managed resource lifecycle and cleanup guarantees
//	functional       closures, function values, Map/Filter helpers
//	inheritance      capability interfaces and behavior override
//	error-styles     pre-check lookups vs. error-returning lookups
//
// The scoped-resource section is backed by package managed; everything else
// is illustrative and carries no behavioral contract.
package demos
