// Package semantic wires the Naming and Typing passes into the
// two-phase driver contract of section 6: each phase is a pure
// AST -> AST function plus side-effect diagnostics, and Typing must
// not run if Naming reported any error.
package semantic

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
)

// Target selects how far the driver runs, matching section 6's
// "compiler driver target selector" abstract enum.
type Target int

const (
	// NameResolution runs only the Naming pass.
	NameResolution Target = iota
	// TypeCheck runs Naming followed by Typing.
	TypeCheck
)

// Pass is a single semantic analysis phase: a named, AST-mutating
// step that reports semantic diagnostics into the shared sink rather
// than returning them as Go errors. Run returns a non-nil error only
// for fatal internal inconsistencies (section 7's "unrecoverable
// internal inconsistencies"), never for a source-program fault.
type Pass interface {
	Name() string
	Run(program *ast.Program, sink *diag.Sink) error
}

// Driver runs the registered passes in order for a given target,
// short-circuiting after Naming if it reported any diagnostic.
type Driver struct {
	naming Pass
	typing Pass
}

// NewDriver builds a driver from the two required passes.
func NewDriver(naming, typing Pass) *Driver {
	return &Driver{naming: naming, typing: typing}
}

// Run executes the driver against program for target, collecting
// diagnostics into sink. It returns a non-nil error only if a pass
// reports a fatal internal inconsistency.
func (d *Driver) Run(program *ast.Program, target Target, sink *diag.Sink) error {
	if err := d.naming.Run(program, sink); err != nil {
		return err
	}
	if target == NameResolution {
		return nil
	}
	if sink.HasErrors() {
		// Typing must not run if Naming reported any error (section 6).
		return nil
	}
	return d.typing.Run(program, sink)
}
