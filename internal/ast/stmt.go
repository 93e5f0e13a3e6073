package ast

import (
	"github.com/decafteam/decafc/internal/symtab"
)

// Statement is the closed set of statement node kinds.
type Statement interface {
	Node
	stmtNode()

	// Returns reports whether this statement definitely returns on
	// every control path, set by the typing pass.
	Returns() bool
	SetReturns(bool)
}

// stmtBase is embedded by every statement for the shared Returns
// bookkeeping.
type stmtBase struct {
	base
	returns bool
}

func (s *stmtBase) stmtNode()        {}
func (s *stmtBase) Returns() bool    { return s.returns }
func (s *stmtBase) SetReturns(b bool) { s.returns = b }

// Block is a brace-delimited statement sequence, each one opening its
// own local scope per section 4.4.
type Block struct {
	stmtBase
	Stmts []Statement

	Scope *symtab.Scope
}

// LocalVarDecl declares a local variable, either with an explicit
// type or with `var` (type inferred from the initializer).
type LocalVarDecl struct {
	stmtBase
	Name        string
	IsVarTyped  bool // true for `var x = ...`
	DeclaredTyp TypeExpression
	Init        Expr

	Sym *symtab.Symbol
}

// Assign is `lhs = rhs;`.
type Assign struct {
	stmtBase
	Lhs Expr
	Rhs Expr
}

// If is `if (cond) then [else else_]`.
type If struct {
	stmtBase
	Cond Expr
	Then Statement
	Else Statement // nil if no else branch
}

// While is `while (cond) body`.
type While struct {
	stmtBase
	Cond Expr
	Body Statement
}

// For is `for (init; cond; post) body`, owning a local scope that
// holds Init and Body (section 4.4).
type For struct {
	stmtBase
	Init Statement // nil allowed
	Cond Expr      // nil allowed, treated as always-true
	Post Statement // nil allowed
	Body Statement

	Scope *symtab.Scope
}

// Return is `return [expr];`.
type Return struct {
	stmtBase
	Expr Expr // nil for a bare `return;`
}

// Break is `break;`.
type Break struct {
	stmtBase
}

// Print is `print(args...);`.
type Print struct {
	stmtBase
	Args []Expr
}

// ExprStmt is an expression used as a statement (e.g. a call).
type ExprStmt struct {
	stmtBase
	X Expr
}
