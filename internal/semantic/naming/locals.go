package naming

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/types"
)

// handleBlock implements "entering a block creates a fresh local
// scope linked to its parent". Open/Close are always paired, even
// when the block is empty (section 5's scoped-resource rule).
func (n *namer) handleBlock(b *ast.Block, parent *symtab.Scope) {
	b.Scope = symtab.NewScope(symtab.Local, parent)
	n.stack.Open(b.Scope)
	for _, stmt := range b.Stmts {
		n.handleStmt(stmt)
	}
	n.stack.Close()
}

func (n *namer) handleStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		n.handleBlock(s, n.stack.Top())
	case *ast.LocalVarDecl:
		n.handleLocalVarDecl(s)
	case *ast.Assign:
		n.walkExpr(s.Lhs)
		n.walkExpr(s.Rhs)
	case *ast.If:
		n.walkExpr(s.Cond)
		n.handleStmt(s.Then)
		if s.Else != nil {
			n.handleStmt(s.Else)
		}
	case *ast.While:
		n.walkExpr(s.Cond)
		n.handleStmt(s.Body)
	case *ast.For:
		n.handleFor(s)
	case *ast.Return:
		if s.Expr != nil {
			n.walkExpr(s.Expr)
		}
	case *ast.Break:
		// no scope/symbol to build
	case *ast.Print:
		for _, a := range s.Args {
			n.walkExpr(a)
		}
	case *ast.ExprStmt:
		n.walkExpr(s.X)
	}
}

func (n *namer) handleLocalVarDecl(s *ast.LocalVarDecl) {
	scope := n.stack.Top()

	var declaredType *types.Type
	if !s.IsVarTyped {
		declaredType = n.resolveType(s.DeclaredTyp, scope)
		if declaredType.IsVoid() {
			n.sink.Add(diag.NewBadVarType(s.Pos(), s.Name))
			declaredType = types.ErrorType()
		}
	} else {
		// The initializer's type is not known until the typing pass
		// evaluates it; ErrorType is a placeholder Typing overwrites
		// (section 3's one lifecycle exception, generalized here to
		// plain locals as well as lambdas).
		declaredType = types.ErrorType()
	}

	if s.Init != nil {
		n.walkExpr(s.Init)
	}

	sym := symtab.NewVariable(s.Name, s.Pos(), declaredType)
	sym.IsLocal = true

	if _, conflict := n.stack.FindConflict(s.Name); conflict {
		n.sink.Add(diag.NewDeclConflict(s.Pos(), s.Name))
		return
	}
	if !scope.Declare(sym) {
		n.sink.Add(diag.NewDeclConflict(s.Pos(), s.Name))
		return
	}
	s.Sym = sym
}

func (n *namer) handleFor(s *ast.For) {
	parent := n.stack.Top()
	s.Scope = symtab.NewScope(symtab.Local, parent)
	n.stack.Open(s.Scope)
	if s.Init != nil {
		n.handleStmt(s.Init)
	}
	if s.Cond != nil {
		n.walkExpr(s.Cond)
	}
	if s.Post != nil {
		n.handleStmt(s.Post)
	}
	n.handleStmt(s.Body)
	n.stack.Close()
}

// walkExpr is a purely structural traversal whose only job is to find
// nested lambda expressions and hand them to handleLambda; it does
// not resolve names or types (that is the typing pass's job).
func (n *namer) walkExpr(e ast.Expr) {
	switch x := e.(type) {
	case nil:
	case *ast.VarSel:
		n.walkExpr(x.Receiver)
	case *ast.IndexSel:
		n.walkExpr(x.Array)
		n.walkExpr(x.Index)
	case *ast.Call:
		n.walkExpr(x.Callee)
		for _, a := range x.Args {
			n.walkExpr(a)
		}
	case *ast.NewArray:
		n.walkExpr(x.Length)
	case *ast.Unary:
		n.walkExpr(x.Operand)
	case *ast.Binary:
		n.walkExpr(x.Left)
		n.walkExpr(x.Right)
	case *ast.ClassTest:
		n.walkExpr(x.X)
	case *ast.ClassCast:
		n.walkExpr(x.X)
	case *ast.LambdaExpr:
		n.handleLambda(x)
	}
}

// handleLambda implements the "lambda handling" paragraph of section
// 4.4: a lambda scope nested under the current scope, parameters
// (rejecting void), a lambda symbol with initial return type null,
// and a uniform anonymous local scope wrapping an expression body.
func (n *namer) handleLambda(lam *ast.LambdaExpr) {
	parent := n.stack.Top()
	lambdaScope := symtab.NewScope(symtab.Lambda, parent)

	paramTypes := make([]*types.Type, len(lam.Params))
	for i, p := range lam.Params {
		pt := n.resolveType(p.Type, parent)
		if pt.IsVoid() {
			n.sink.Add(diag.NewVoidAsPara(p.Pos()))
			pt = types.ErrorType()
		}
		paramTypes[i] = pt
	}

	sym := symtab.NewLambda(lam.Pos(), lambdaScope, paramTypes)
	lambdaScope.Owner = sym
	lam.Sym = sym
	lam.Scope = lambdaScope

	n.stack.Open(lambdaScope)

	for i, p := range lam.Params {
		psym := symtab.NewVariable(p.Name, p.Pos(), paramTypes[i])
		psym.IsParameter = true
		if _, conflict := n.stack.FindConflict(p.Name); conflict {
			n.sink.Add(diag.NewDeclConflict(p.Pos(), p.Name))
			continue
		}
		lambdaScope.Declare(psym)
		p.Sym = psym
	}

	switch {
	case lam.IsExprBody:
		lam.ExprScope = symtab.NewScope(symtab.Local, lambdaScope)
		n.stack.Open(lam.ExprScope)
		n.walkExpr(lam.ExprBody)
		n.stack.Close()
	case lam.BlockBody != nil:
		n.handleBlock(lam.BlockBody, lambdaScope)
	}

	n.stack.Close()
}
