package typing

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/types"
)

// checkCall dispatches on the callee's syntactic shape per section
// 4.5: `.length()`, a qualified method call, an unqualified name, or
// an immediately-invoked lambda, each with its own argument-checking
// rule.
func (t *typer) checkCall(c *ast.Call) *types.Type {
	switch callee := c.Callee.(type) {
	case *ast.VarSel:
		if callee.Receiver != nil {
			return t.checkQualifiedCall(c, callee)
		}
		return t.checkUnqualifiedCall(c, callee)
	case *ast.LambdaExpr:
		return t.checkImmediateLambdaCall(c, callee)
	default:
		calleeType := t.checkExpr(c.Callee)
		t.checkExprList(c.Args)
		if !calleeType.NoError() {
			return types.ErrorType()
		}
		if !calleeType.IsFun() {
			t.sink.Add(diag.NewNotCallable(c.Pos(), "<expr>"))
			return types.ErrorType()
		}
		t.checkArgs(c, "<expr>", calleeType)
		return calleeType.Ret
	}
}

func (t *typer) checkExprList(args []ast.Expr) {
	for _, a := range args {
		t.checkExpr(a)
	}
}

// checkQualifiedCall handles `recv.name(args)`, including the
// `.length()` intrinsic and static dispatch through a class-name
// receiver.
func (t *typer) checkQualifiedCall(c *ast.Call, callee *ast.VarSel) *types.Type {
	if classSym, ok := t.classNameReceiver(callee.Receiver); ok {
		return t.checkStaticMethodCall(c, callee, classSym)
	}

	recvType := t.checkExpr(callee.Receiver)

	if callee.Name == "length" {
		switch {
		case recvType.IsArray():
			callee.IsArrayLength = true
			if len(c.Args) != 0 {
				t.sink.Add(diag.NewBadLengthArg(c.Pos(), len(c.Args)))
			}
			t.checkExprList(c.Args)
			return types.Int()
		case recvType.IsClass():
			return t.checkInstanceMethodCall(c, callee, recvType)
		case recvType.NoError():
			t.sink.Add(diag.NewNotClassField(callee.Pos(), "length"))
			t.checkExprList(c.Args)
			return types.ErrorType()
		default:
			t.checkExprList(c.Args)
			return types.ErrorType()
		}
	}

	if !recvType.NoError() {
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	if !recvType.IsClass() {
		t.sink.Add(diag.NewNotClass(callee.Receiver.Pos(), recvType.String()))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	return t.checkInstanceMethodCall(c, callee, recvType)
}

func (t *typer) checkInstanceMethodCall(c *ast.Call, callee *ast.VarSel, recvType *types.Type) *types.Type {
	ownerClass, ok := t.classes[recvType.ClassName]
	if !ok {
		t.sink.Add(diag.NewClassNotFound(callee.Pos(), recvType.ClassName))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	sym, found := ownerClass.ClassScope.LookupStatic(callee.Name)
	if !found {
		t.sink.Add(diag.NewFieldNotFound(callee.Pos(), callee.Name, recvType.ClassName))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	callee.Sym = sym
	if sym.Kind != symtab.MethodSymbol {
		t.sink.Add(diag.NewNotCallable(callee.Pos(), callee.Name))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	callee.IsMethod = true
	c.ResolvedMethod = sym
	t.checkArgs(c, callee.Name, sym.MethodType)
	return sym.MethodType.Ret
}

func (t *typer) checkStaticMethodCall(c *ast.Call, callee *ast.VarSel, classSym *symtab.Symbol) *types.Type {
	sym, ok := classSym.ClassScope.LookupStatic(callee.Name)
	if !ok {
		t.sink.Add(diag.NewFieldNotFound(callee.Pos(), callee.Name, classSym.Name))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	callee.Sym = sym
	if sym.Kind != symtab.MethodSymbol || !sym.IsStatic {
		t.sink.Add(diag.NewNotClassField(callee.Pos(), callee.Name))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	callee.IsMethod = true
	c.ResolvedMethod = sym
	t.checkArgs(c, callee.Name, sym.MethodType)
	return sym.MethodType.Ret
}

// checkUnqualifiedCall resolves `name(args)` to a method in the
// current class or a local/captured callable.
func (t *typer) checkUnqualifiedCall(c *ast.Call, callee *ast.VarSel) *types.Type {
	pos := callee.Pos()
	if definingPos, ok := t.stack.IsDefining(callee.Name); ok {
		pos = definingPos
	}
	sym, ok := t.stack.LookupBefore(callee.Name, pos)
	if !ok {
		t.sink.Add(diag.NewUndeclVar(callee.Pos(), callee.Name))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	callee.Sym = sym

	switch sym.Kind {
	case symtab.MethodSymbol:
		if !sym.IsStatic && t.currentMethodIsStatic() {
			t.sink.Add(diag.NewRefNonStatic(callee.Pos(), callee.Name))
			t.checkExprList(c.Args)
			return types.ErrorType()
		}
		callee.IsMethod = true
		c.ResolvedMethod = sym
		if !sym.IsStatic {
			if thisSym, ok := t.stack.Lookup("this"); ok {
				t.recordCapture(thisSym, false)
			}
		}
		t.checkArgs(c, callee.Name, sym.MethodType)
		return sym.MethodType.Ret
	case symtab.VariableSymbol:
		if sym.IsMember {
			if t.currentMethodIsStatic() {
				t.sink.Add(diag.NewRefNonStatic(callee.Pos(), callee.Name))
				t.checkExprList(c.Args)
				return types.ErrorType()
			}
			if thisSym, ok := t.stack.Lookup("this"); ok {
				t.recordCapture(thisSym, false)
			}
		} else {
			t.recordCapture(sym, false)
		}
		if !sym.VarType.NoError() {
			t.checkExprList(c.Args)
			return types.ErrorType()
		}
		if !sym.VarType.IsFun() {
			t.sink.Add(diag.NewNotCallable(callee.Pos(), callee.Name))
			t.checkExprList(c.Args)
			return types.ErrorType()
		}
		t.checkArgs(c, callee.Name, sym.VarType)
		return sym.VarType.Ret
	default:
		t.sink.Add(diag.NewNotCallable(callee.Pos(), callee.Name))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
}

// checkArgs type-checks the arguments of a call against a resolved
// function type, reporting arity and per-argument subtype mismatches.
func (t *typer) checkArgs(c *ast.Call, name string, funType *types.Type) {
	argTypes := make([]*types.Type, len(c.Args))
	for i, a := range c.Args {
		argTypes[i] = t.checkExpr(a)
	}
	if len(c.Args) != len(funType.Params) {
		t.sink.Add(diag.NewBadArgCount(c.Pos(), name, len(funType.Params), len(c.Args)))
		return
	}
	for i, at := range argTypes {
		if at.NoError() && !at.SubtypeOf(funType.Params[i]) {
			t.sink.Add(diag.NewBadArgType(c.Args[i].Pos(), i+1, funType.Params[i].String(), at.String()))
		}
	}
}

func (t *typer) checkImmediateLambdaCall(c *ast.Call, lam *ast.LambdaExpr) *types.Type {
	lamType := t.checkLambda(lam)
	if !lamType.NoError() {
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	if len(c.Args) != len(lamType.Params) {
		t.sink.Add(diag.NewBadCountArgLambda(c.Pos(), len(lamType.Params), len(c.Args)))
		t.checkExprList(c.Args)
		return types.ErrorType()
	}
	for i, a := range c.Args {
		at := t.checkExpr(a)
		if at.NoError() && !at.SubtypeOf(lamType.Params[i]) {
			t.sink.Add(diag.NewBadArgType(a.Pos(), i+1, lamType.Params[i].String(), at.String()))
		}
	}
	return lamType.Ret
}
