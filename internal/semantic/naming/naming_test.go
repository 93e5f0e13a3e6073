package naming

import (
	"testing"

	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/token"
)

func at(l, c int) token.Position { return token.Position{Line: l, Column: c} }

func namedType(name string, l, c int) *ast.NamedType {
	t := &ast.NamedType{Name: name}
	t.TokPos = at(l, c)
	return t
}

func classDecl(name, parent string, abstract bool, pos token.Position) *ast.ClassDecl {
	d := &ast.ClassDecl{Name: name, ParentName: parent, IsAbstract: abstract}
	d.TokPos = pos
	return d
}

func method(name string, static, abstract bool, ret *ast.NamedType, params []*ast.Param, body *ast.Block, pos token.Position) *ast.MethodDecl {
	m := &ast.MethodDecl{Name: name, IsStatic: static, IsAbstract: abstract, ReturnType: ret, Params: params, Body: body}
	m.TokPos = pos
	return m
}

func block(pos token.Position, stmts ...ast.Statement) *ast.Block {
	b := &ast.Block{Stmts: stmts}
	b.TokPos = pos
	return b
}

func program(classes ...*ast.ClassDecl) *ast.Program {
	return &ast.Program{Classes: classes}
}

func run(t *testing.T, p *ast.Program) *diag.Sink {
	t.Helper()
	sink := diag.NewSink()
	if err := New().Run(p, sink); err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	return sink
}

func kinds(sink *diag.Sink) []diag.Kind {
	out := make([]diag.Kind, 0, sink.Len())
	for _, d := range sink.Sorted() {
		out = append(out, d.Kind)
	}
	return out
}

func TestValidMainClassNoDiagnostics(t *testing.T) {
	mainMethod := method("main", true, false, namedType("void", 1, 1), nil, block(at(1, 20)), at(1, 1))
	main := classDecl("Main", "", false, at(1, 0))
	main.Methods = []*ast.MethodDecl{mainMethod}

	sink := run(t, program(main))
	if sink.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", sink.Render())
	}
	if !main.Sym.IsMain {
		t.Error("expected Main.main to be marked as the entry point")
	}
}

func TestNoMainClassReported(t *testing.T) {
	c := classDecl("A", "", false, at(1, 0))
	sink := run(t, program(c))
	if !sink.HasErrors() {
		t.Fatal("expected NoMainClass")
	}
	if sink.Sorted()[0].Kind != diag.NoMainClass {
		t.Fatalf("expected NoMainClass, got %v", sink.Sorted()[0].Kind)
	}
}

func TestInheritanceCycleReported(t *testing.T) {
	a := classDecl("A", "B", false, at(1, 0))
	b := classDecl("B", "A", false, at(2, 0))
	sink := run(t, program(a, b))
	found := false
	for _, d := range sink.Sorted() {
		if d.Kind == diag.BadInheritance {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected BadInheritance, got %v", sink.Render())
	}
}

func TestUnknownParentReportsClassNotFound(t *testing.T) {
	a := classDecl("A", "Ghost", false, at(1, 0))
	sink := run(t, program(a))
	found := false
	for _, d := range sink.Sorted() {
		if d.Kind == diag.ClassNotFound {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ClassNotFound, got %v", sink.Render())
	}
}

func TestAbstractClassMustImplementInheritedMethod(t *testing.T) {
	a := classDecl("A", "", true, at(1, 0))
	a.Methods = []*ast.MethodDecl{method("f", false, true, namedType("void", 1, 10), nil, nil, at(1, 10))}

	b := classDecl("B", "A", false, at(2, 0))

	sink := run(t, program(a, b))
	found := false
	for _, d := range sink.Sorted() {
		if d.Kind == diag.BadAbstractMethod {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected BadAbstractMethod for B, got %v", sink.Render())
	}
}

func TestAbstractClassSatisfiedByOverride(t *testing.T) {
	a := classDecl("A", "", true, at(1, 0))
	a.Methods = []*ast.MethodDecl{method("f", false, true, namedType("void", 1, 10), nil, nil, at(1, 10))}

	b := classDecl("B", "A", false, at(2, 0))
	b.Methods = []*ast.MethodDecl{method("f", false, false, namedType("void", 2, 10), nil, block(at(2, 20)), at(2, 10))}

	sink := run(t, program(a, b))
	for _, d := range sink.Sorted() {
		if d.Kind == diag.BadAbstractMethod {
			t.Fatalf("did not expect BadAbstractMethod, got %v", sink.Render())
		}
	}
	if b.Methods[0].Overrides == nil {
		t.Error("expected B.f to record an override of A.f")
	}
}

func TestDuplicateClassDeclarationConflict(t *testing.T) {
	a1 := classDecl("A", "", false, at(1, 0))
	a2 := classDecl("A", "", false, at(2, 0))
	sink := run(t, program(a1, a2))
	found := false
	for _, k := range kinds(sink) {
		if k == diag.DeclConflict {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected DeclConflict, got %v", sink.Render())
	}
}

func TestLocalVarDeclCreatesScopeAndSymbol(t *testing.T) {
	decl := &ast.LocalVarDecl{Name: "x", IsVarTyped: false, DeclaredTyp: namedType("int", 1, 25)}
	decl.TokPos = at(1, 25)
	body := block(at(1, 20), decl)
	mainMethod := method("main", true, false, namedType("void", 1, 1), nil, body, at(1, 1))
	main := classDecl("Main", "", false, at(1, 0))
	main.Methods = []*ast.MethodDecl{mainMethod}

	sink := run(t, program(main))
	if sink.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", sink.Render())
	}
	if decl.Sym == nil {
		t.Fatal("expected local var symbol to be populated")
	}
	if body.Scope == nil {
		t.Fatal("expected block to get a local scope")
	}
	if _, ok := body.Scope.Get("x"); !ok {
		t.Error("expected x to be declared in the block's local scope")
	}
}

func TestLambdaGetsOwnScopeAndSymbol(t *testing.T) {
	lam := &ast.LambdaExpr{IsExprBody: true, ExprBody: &ast.IntLit{Value: 1}}
	lam.TokPos = at(1, 30)
	varDecl := &ast.LocalVarDecl{Name: "f", IsVarTyped: true, Init: lam}
	varDecl.TokPos = at(1, 25)
	body := block(at(1, 20), varDecl)
	mainMethod := method("main", true, false, namedType("void", 1, 1), nil, body, at(1, 1))
	main := classDecl("Main", "", false, at(1, 0))
	main.Methods = []*ast.MethodDecl{mainMethod}

	sink := run(t, program(main))
	if sink.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", sink.Render())
	}
	if lam.Sym == nil || lam.Scope == nil {
		t.Fatal("expected the lambda to get a symbol and scope")
	}
	if lam.ExprScope == nil {
		t.Fatal("expected the expression body to be wrapped in an anonymous local scope")
	}
}
