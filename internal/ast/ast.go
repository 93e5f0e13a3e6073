// Package ast defines the abstract syntax tree consumed by the
// semantic analysis core. The parser that produces these nodes is
// out of scope (section 1); this package only models the closed set
// of node kinds the naming and typing passes dispatch on, plus the
// annotation fields those passes populate (section 6).
package ast

import (
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/token"
)

// Node is embedded by every AST node to carry its source position.
type Node interface {
	Pos() token.Position
}

// base provides the common Pos() implementation.
type base struct {
	TokPos token.Position
}

func (b base) Pos() token.Position { return b.TokPos }

// Program is the root of the tree: a flat list of class declarations.
type Program struct {
	base
	Classes []*ClassDecl

	// GlobalScope is populated by the naming pass.
	GlobalScope *symtab.Scope
}

// TypeExpression is the closed set of syntactic type annotations that
// can appear in source before they are resolved against the class
// table. It is a deliberately distinct kind from types.Type (see the
// "TFun literal" design note): two annotations can be compared
// textually via TypeExprEqual before either one has been resolved.
type TypeExpression interface {
	Node
	String() string
}

// NamedType is a simple identifier type annotation: a primitive
// keyword (int, bool, string, void) or a class name.
type NamedType struct {
	base
	Name string
}

func (t *NamedType) String() string { return t.Name }

// ArrayTypeExpr is an "Elem[]" annotation.
type ArrayTypeExpr struct {
	base
	Elem TypeExpression
}

func (t *ArrayTypeExpr) String() string { return t.Elem.String() + "[]" }

// FunTypeExpr is a "ret(a1, a2, ...)" function-type literal
// annotation — the syntactic analogue of types.Fun, kept as a
// distinct node per the design note on TFun literals.
type FunTypeExpr struct {
	base
	Ret    TypeExpression
	Params []TypeExpression
}

func (t *FunTypeExpr) String() string {
	s := t.Ret.String() + "("
	for i, p := range t.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ")"
}

// TypeExprEqual compares two type annotations textually, as required
// for literal comparisons made before either side is resolved.
func TypeExprEqual(a, b TypeExpression) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// Param is a formal parameter: a name plus its declared type.
type Param struct {
	base
	Name string
	Type TypeExpression

	// Sym is populated by the naming pass.
	Sym *symtab.Symbol
}

// ClassDecl declares a class, optionally extending a named parent.
type ClassDecl struct {
	base
	Name       string
	ParentName string // empty if no explicit parent
	IsAbstract bool
	Fields     []*FieldDecl
	Methods    []*MethodDecl

	// Sym is populated by the naming pass once the class symbol is
	// created.
	Sym *symtab.Symbol
}

// FieldDecl declares a class member variable.
type FieldDecl struct {
	base
	Name string
	Type TypeExpression

	Sym *symtab.Symbol
}

// MethodDecl declares a class method.
type MethodDecl struct {
	base
	Name       string
	IsStatic   bool
	IsAbstract bool
	ReturnType TypeExpression // nil means void
	Params     []*Param
	Body       *Block // nil for an abstract method

	// Populated by the naming pass.
	Sym         *symtab.Symbol
	FormalScope *symtab.Scope
	// Overrides is set when this method overrides an ancestor method.
	Overrides *symtab.Symbol
}
