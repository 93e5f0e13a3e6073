package ast

import (
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/types"
)

// Expr is the closed set of expression node kinds. Every expression
// is assigned a Type by the typing pass (section 4.5 invariant),
// possibly types.ErrorType() when the expression was ill-typed.
type Expr interface {
	Node
	exprNode()
	Type() *types.Type
	SetType(*types.Type)
}

type exprBase struct {
	base
	typ *types.Type
}

func (e *exprBase) exprNode()            {}
func (e *exprBase) Type() *types.Type    { return e.typ }
func (e *exprBase) SetType(t *types.Type) { e.typ = t }

// IntLit is an integer literal.
type IntLit struct {
	exprBase
	Value int64
}

// BoolLit is a boolean literal.
type BoolLit struct {
	exprBase
	Value bool
}

// StringLit is a string literal.
type StringLit struct {
	exprBase
	Value string
}

// NullLit is the `null` literal.
type NullLit struct {
	exprBase
}

// ReadIntExpr is the `ReadInt()` intrinsic.
type ReadIntExpr struct {
	exprBase
}

// ReadLineExpr is the `ReadLine()` intrinsic.
type ReadLineExpr struct {
	exprBase
}

// ThisExpr is a `this` reference.
type ThisExpr struct {
	exprBase

	// Sym is the `this` variable symbol of the enclosing method,
	// populated by the typing pass so capture analysis can track it by
	// identity.
	Sym *symtab.Symbol
}

// VarSel is a name reference, optionally qualified by a receiver
// expression (`recv.name`); Receiver is nil for a bare name.
type VarSel struct {
	exprBase
	Receiver Expr
	Name     string

	// Annotations populated by the typing pass (section 6 output).
	Sym          *symtab.Symbol
	IsMethod     bool
	IsClassName  bool
	IsArrayLength bool
}

// IndexSel is `array[index]`.
type IndexSel struct {
	exprBase
	Array Expr
	Index Expr
}

// Call is `callee(args...)`. Callee's shape (VarSel with/without a
// receiver, or an immediately-invoked lambda) determines dispatch in
// the typing pass.
type Call struct {
	exprBase
	Callee Expr
	Args   []Expr

	// ResolvedMethod is populated when Callee resolves to a method
	// symbol (static, instance, or unqualified).
	ResolvedMethod *symtab.Symbol
}

// NewClass is `new ClassName()`.
type NewClass struct {
	exprBase
	ClassName string

	Sym *symtab.Symbol
}

// NewArray is `new ElemType[length]`.
type NewArray struct {
	exprBase
	ElemType TypeExpression
	Length   Expr
}

// Unary is a prefix unary operation (`-`, `!`).
type Unary struct {
	exprBase
	Op      string
	Operand Expr
}

// Binary is an infix binary operation.
type Binary struct {
	exprBase
	Op          string
	Left, Right Expr
}

// ClassTest is `expr instanceof ClassName`.
type ClassTest struct {
	exprBase
	X         Expr
	ClassName string
}

// ClassCast is `(ClassName) expr`.
type ClassCast struct {
	exprBase
	X         Expr
	ClassName string
}

// LambdaExpr is a lambda: either expression-bodied
// (`fun(params) => expr`) or block-bodied (`fun(params) { ... }`).
type LambdaExpr struct {
	exprBase
	Params     []*Param
	IsExprBody bool
	ExprBody   Expr
	BlockBody  *Block

	// Sym is the lambda symbol created by the naming pass.
	Sym *symtab.Symbol
	// Scope is the lambda's own scope (nesting the parameter
	// declarations); its single nested local scope holds the body.
	Scope *symtab.Scope
	// ExprScope is the anonymous local scope wrapping ExprBody for an
	// expression-bodied lambda, so capture analysis sees the same
	// scope shape the typing pass re-walks (nil for a block-bodied
	// lambda, which uses BlockBody.Scope instead).
	ExprScope *symtab.Scope
}
