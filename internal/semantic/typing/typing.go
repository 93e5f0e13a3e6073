// Package typing implements the Typing pass of section 4.5: a second
// AST walk that resolves every expression's type, checks statements,
// infers lambda return types via join, and tracks lambda captures
// (section 4.6).
package typing

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/types"
)

// Pass is the Typing phase, satisfying semantic.Pass.
type Pass struct{}

// New creates the Typing pass.
func New() *Pass { return &Pass{} }

// Name implements semantic.Pass.
func (p *Pass) Name() string { return "typing" }

// Run implements semantic.Pass.
func (p *Pass) Run(program *ast.Program, sink *diag.Sink) error {
	t := newTyper(program.GlobalScope, sink)
	for _, c := range program.Classes {
		t.checkClass(c)
	}
	return nil
}

// typer holds the transient state of one Typing walk. It re-opens
// exactly the Scope objects the naming pass created, in the same
// nesting order, so lookupBefore/findConflict/capture propagation
// behave identically to the walk that built them.
type typer struct {
	sink  *diag.Sink
	stack *symtab.Stack

	classes map[string]*symtab.Symbol

	currentClass  *symtab.Symbol
	currentMethod *ast.MethodDecl
	loopDepth     int
}

func newTyper(global *symtab.Scope, sink *diag.Sink) *typer {
	t := &typer{
		sink:    sink,
		stack:   symtab.NewStack(global),
		classes: make(map[string]*symtab.Symbol),
	}
	for _, sym := range global.Symbols() {
		if sym.Kind == symtab.ClassSymbol {
			t.classes[sym.Name] = sym
		}
	}
	return t
}

func (t *typer) checkClass(c *ast.ClassDecl) {
	if c.Sym == nil {
		return
	}
	t.currentClass = c.Sym
	t.stack.Open(c.Sym.ClassScope)
	for _, m := range c.Methods {
		t.checkMethod(c, m)
	}
	t.stack.Close()
	t.currentClass = nil
}

func (t *typer) checkMethod(c *ast.ClassDecl, m *ast.MethodDecl) {
	if m.IsAbstract || m.Body == nil || m.Sym == nil {
		return
	}
	t.stack.Open(m.FormalScope)
	prevMethod := t.currentMethod
	t.currentMethod = m
	returns := t.checkBlock(m.Body)
	t.currentMethod = prevMethod
	t.stack.Close()

	expectedRet := m.Sym.MethodType.Ret
	if !expectedRet.IsVoid() && !returns {
		t.sink.Add(diag.NewMissingReturn(m.Pos()))
	}
}

// checkBlock opens b's scope, checks every statement, and reports
// whether the block definitely returns on every path.
func (t *typer) checkBlock(b *ast.Block) bool {
	t.stack.Open(b.Scope)
	returns := false
	for _, s := range b.Stmts {
		if t.checkStmt(s) {
			returns = true
		}
	}
	t.stack.Close()
	b.SetReturns(returns)
	return returns
}

func (t *typer) checkStmt(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.Block:
		return t.checkBlock(s)
	case *ast.LocalVarDecl:
		t.checkLocalVarDecl(s)
		s.SetReturns(false)
		return false
	case *ast.Assign:
		t.checkAssign(s)
		s.SetReturns(false)
		return false
	case *ast.If:
		return t.checkIf(s)
	case *ast.While:
		t.checkCondition(s.Cond)
		t.loopDepth++
		t.checkStmt(s.Body)
		t.loopDepth--
		s.SetReturns(false)
		return false
	case *ast.For:
		return t.checkFor(s)
	case *ast.Return:
		return t.checkReturn(s)
	case *ast.Break:
		if t.loopDepth == 0 {
			t.sink.Add(diag.NewBreakOutOfLoop(s.Pos()))
		}
		s.SetReturns(false)
		return false
	case *ast.Print:
		for i, a := range s.Args {
			at := t.checkExpr(a)
			if at.NoError() && !at.IsBase() {
				t.sink.Add(diag.NewBadArgType(a.Pos(), i+1, "a base type", at.String()))
			}
		}
		s.SetReturns(false)
		return false
	case *ast.ExprStmt:
		t.checkExpr(s.X)
		s.SetReturns(false)
		return false
	default:
		return false
	}
}

func (t *typer) checkCondition(e ast.Expr) {
	ct := t.checkExpr(e)
	if ct.NoError() && !types.Eq(ct, types.Bool()) {
		t.sink.Add(diag.NewBadTestExpr(e.Pos()))
	}
}

func (t *typer) checkIf(s *ast.If) bool {
	t.checkCondition(s.Cond)
	thenReturns := t.checkStmt(s.Then)
	elseReturns := false
	if s.Else != nil {
		elseReturns = t.checkStmt(s.Else)
	}
	r := s.Else != nil && thenReturns && elseReturns
	s.SetReturns(r)
	return r
}

func (t *typer) checkFor(s *ast.For) bool {
	t.stack.Open(s.Scope)
	if s.Init != nil {
		t.checkStmt(s.Init)
	}
	if s.Cond != nil {
		t.checkCondition(s.Cond)
	}
	if s.Post != nil {
		t.checkStmt(s.Post)
	}
	t.loopDepth++
	t.checkStmt(s.Body)
	t.loopDepth--
	t.stack.Close()
	s.SetReturns(false)
	return false
}

func (t *typer) checkReturn(s *ast.Return) bool {
	if lambda := t.stack.CurrentLambda(); lambda != nil {
		actual := types.Void()
		if s.Expr != nil {
			actual = t.checkExpr(s.Expr)
		}
		lambda.AddReturnType(actual)
		r := s.Expr != nil
		s.SetReturns(r)
		return r
	}

	expected := types.Void()
	if t.currentMethod != nil && t.currentMethod.Sym != nil {
		expected = t.currentMethod.Sym.MethodType.Ret
	}
	actual := types.Void()
	if s.Expr != nil {
		actual = t.checkExpr(s.Expr)
	}
	if actual.NoError() && expected.NoError() && !actual.SubtypeOf(expected) {
		t.sink.Add(diag.NewBadReturnType(s.Pos(), expected.String(), actual.String()))
	}
	r := s.Expr != nil
	s.SetReturns(r)
	return r
}

func (t *typer) checkLocalVarDecl(s *ast.LocalVarDecl) {
	if s.Sym == nil {
		if s.Init != nil {
			t.checkExpr(s.Init)
		}
		return
	}
	if !s.IsVarTyped {
		declaredType := s.Sym.VarType
		if s.Init != nil {
			actual := t.checkExpr(s.Init)
			if actual.NoError() && declaredType.NoError() && !actual.SubtypeOf(declaredType) {
				t.sink.Add(diag.NewIncompatBinOp(s.Pos(), "=", declaredType.String(), actual.String()))
			}
		}
		return
	}

	t.stack.BeginDefining(s.Name, s.Pos())
	actual := types.ErrorType()
	if s.Init != nil {
		actual = t.checkExpr(s.Init)
	}
	t.stack.EndDefining(s.Name)

	if actual.IsVoid() {
		t.sink.Add(diag.NewAssignVarVoid(s.Pos(), s.Name))
		actual = types.ErrorType()
	}
	s.Sym.VarType = actual
}
