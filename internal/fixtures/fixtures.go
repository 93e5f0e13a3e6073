// Package fixtures holds a small catalog of hand-built AST programs.
// Parsing is out of scope for this module (section 1), so both the
// CLI and the snapshot test suite exercise the driver against
// programs built directly as ast.Program values rather than against
// source text.
package fixtures

import (
	"sort"

	"github.com/decafteam/decafc/internal/ast"
)

var catalog = map[string]func() *ast.Program{
	"hello":           hello,
	"undeclared-var":  undeclaredVar,
	"bad-return-type": badReturnType,
}

// Names returns the catalog's fixture names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds a fresh copy of the named fixture's program. ok is false
// for an unknown name.
func Get(name string) (*ast.Program, bool) {
	build, ok := catalog[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

func named(name string) ast.TypeExpression {
	return &ast.NamedType{Name: name}
}

func boolLit(v bool) ast.Expr { return &ast.BoolLit{Value: v} }
func varSel(name string) ast.Expr {
	return &ast.VarSel{Name: name}
}

func block(stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Stmts: stmts}
}

// hello is a trivial well-typed program: a Main class with a static
// void main() that prints a literal. It should produce no
// diagnostics at either target.
func hello() *ast.Program {
	mainMethod := &ast.MethodDecl{
		Name:       "main",
		IsStatic:   true,
		ReturnType: nil,
		Body: block(
			&ast.Print{Args: []ast.Expr{&ast.StringLit{Value: "hello, decaf"}}},
		),
	}
	return &ast.Program{
		Classes: []*ast.ClassDecl{
			{Name: "Main", Methods: []*ast.MethodDecl{mainMethod}},
		},
	}
}

// undeclaredVar declares a local with var-inference whose initializer
// references itself, the literal boundary case of section 8: exactly
// one UndeclVar diagnostic.
func undeclaredVar() *ast.Program {
	mainMethod := &ast.MethodDecl{
		Name:       "main",
		IsStatic:   true,
		ReturnType: nil,
		Body: block(
			&ast.LocalVarDecl{Name: "x", IsVarTyped: true, Init: varSel("x")},
		),
	}
	return &ast.Program{
		Classes: []*ast.ClassDecl{
			{Name: "Main", Methods: []*ast.MethodDecl{mainMethod}},
		},
	}
}

// badReturnType declares a method returning int whose body returns a
// bool literal, exercising BadReturnType.
func badReturnType() *ast.Program {
	m := &ast.MethodDecl{
		Name:       "flag",
		IsStatic:   true,
		ReturnType: named("int"),
		Body: block(
			&ast.Return{Expr: boolLit(true)},
		),
	}
	mainMethod := &ast.MethodDecl{
		Name:       "main",
		IsStatic:   true,
		ReturnType: nil,
		Body: block(
			&ast.ExprStmt{X: &ast.Call{Callee: varSel("flag")}},
		),
	}
	return &ast.Program{
		Classes: []*ast.ClassDecl{
			{Name: "Main", Methods: []*ast.MethodDecl{m, mainMethod}},
		},
	}
}
