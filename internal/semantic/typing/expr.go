package typing

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/types"
)

func (t *typer) checkExpr(e ast.Expr) *types.Type {
	if e == nil {
		return types.Void()
	}
	var result *types.Type
	switch x := e.(type) {
	case *ast.IntLit:
		result = types.Int()
	case *ast.BoolLit:
		result = types.Bool()
	case *ast.StringLit:
		result = types.Str()
	case *ast.NullLit:
		result = types.Null()
	case *ast.ReadIntExpr:
		result = types.Int()
	case *ast.ReadLineExpr:
		result = types.Str()
	case *ast.ThisExpr:
		result = t.checkThis(x)
	case *ast.VarSel:
		result = t.checkVarSel(x)
	case *ast.IndexSel:
		result = t.checkIndexSel(x)
	case *ast.Call:
		result = t.checkCall(x)
	case *ast.NewClass:
		result = t.checkNewClass(x)
	case *ast.NewArray:
		result = t.checkNewArray(x)
	case *ast.Unary:
		result = t.checkUnary(x)
	case *ast.Binary:
		result = t.checkBinary(x)
	case *ast.ClassTest:
		result = t.checkClassTest(x)
	case *ast.ClassCast:
		result = t.checkClassCast(x)
	case *ast.LambdaExpr:
		result = t.checkLambda(x)
	default:
		result = types.ErrorType()
	}
	e.SetType(result)
	return result
}

func (t *typer) currentMethodIsStatic() bool {
	return t.currentMethod != nil && t.currentMethod.IsStatic
}

func (t *typer) checkThis(e *ast.ThisExpr) *types.Type {
	if t.currentMethodIsStatic() {
		t.sink.Add(diag.NewThisInStaticFunc(e.Pos()))
		return types.ErrorType()
	}
	sym, ok := t.stack.Lookup("this")
	if !ok {
		t.sink.Add(diag.NewThisInStaticFunc(e.Pos()))
		return types.ErrorType()
	}
	e.Sym = sym
	t.recordCapture(sym, false)
	return sym.VarType
}

func (t *typer) checkVarSel(v *ast.VarSel) *types.Type {
	if v.Receiver == nil {
		return t.checkVarSelBare(v)
	}
	return t.checkVarSelQualified(v)
}

// checkVarSelBare implements section 4.5's bare-VarSel rule: lookup
// before the current `var` initializer's own position (if one is
// elaborating), accepting a variable, method, or class name. A member
// variable auto-rewrites to `this.name`, captured as `this` rather
// than as itself.
func (t *typer) checkVarSelBare(v *ast.VarSel) *types.Type {
	pos := v.Pos()
	if definingPos, ok := t.stack.IsDefining(v.Name); ok {
		pos = definingPos
	}
	sym, ok := t.stack.LookupBefore(v.Name, pos)
	if !ok {
		t.sink.Add(diag.NewUndeclVar(v.Pos(), v.Name))
		return types.ErrorType()
	}
	v.Sym = sym

	switch sym.Kind {
	case symtab.VariableSymbol:
		if sym.IsMember {
			if t.currentMethodIsStatic() {
				t.sink.Add(diag.NewRefNonStatic(v.Pos(), v.Name))
				return types.ErrorType()
			}
			if thisSym, ok := t.stack.Lookup("this"); ok {
				t.recordCapture(thisSym, false)
				recv := &ast.ThisExpr{Sym: thisSym}
				recv.TokPos = v.Pos()
				recv.SetType(thisSym.VarType)
				v.Receiver = recv
			}
			return sym.VarType
		}
		t.recordCapture(sym, false)
		return sym.VarType
	case symtab.MethodSymbol:
		if !sym.IsStatic && t.currentMethodIsStatic() {
			t.sink.Add(diag.NewRefNonStatic(v.Pos(), v.Name))
			return types.ErrorType()
		}
		v.IsMethod = true
		if !sym.IsStatic {
			if thisSym, ok := t.stack.Lookup("this"); ok {
				t.recordCapture(thisSym, false)
			}
		}
		return sym.MethodType
	case symtab.ClassSymbol:
		v.IsClassName = true
		return sym.ClassType
	default:
		return types.ErrorType()
	}
}

// checkVarSelQualified handles `recv.name`: a class-name receiver
// dispatches to a static member, an array receiver's `length`
// dispatches to the size intrinsic, otherwise an instance member
// lookup on the receiver's class.
func (t *typer) checkVarSelQualified(v *ast.VarSel) *types.Type {
	if classSym, ok := t.classNameReceiver(v.Receiver); ok {
		return t.checkStaticMemberAccess(v, classSym)
	}

	recvType := t.checkExpr(v.Receiver)
	if v.Name == "length" {
		switch {
		case recvType.IsArray():
			v.IsArrayLength = true
			return types.Int()
		case recvType.IsClass():
			return t.checkInstanceMemberAccess(v, recvType)
		case recvType.NoError():
			t.sink.Add(diag.NewNotClassField(v.Pos(), "length"))
			return types.ErrorType()
		default:
			return types.ErrorType()
		}
	}

	if !recvType.NoError() {
		return types.ErrorType()
	}
	if !recvType.IsClass() {
		t.sink.Add(diag.NewNotClass(v.Receiver.Pos(), recvType.String()))
		return types.ErrorType()
	}
	return t.checkInstanceMemberAccess(v, recvType)
}

// classNameReceiver reports whether e is a bare name that resolves to
// a class symbol, and if so annotates it with that symbol, its class
// type and the IsClassName flag.
func (t *typer) classNameReceiver(e ast.Expr) (*symtab.Symbol, bool) {
	v, ok := e.(*ast.VarSel)
	if !ok || v.Receiver != nil {
		return nil, false
	}
	sym, ok := t.stack.Lookup(v.Name)
	if !ok || sym.Kind != symtab.ClassSymbol {
		return nil, false
	}
	v.Sym = sym
	v.IsClassName = true
	v.SetType(sym.ClassType)
	return sym, true
}

func (t *typer) checkStaticMemberAccess(v *ast.VarSel, classSym *symtab.Symbol) *types.Type {
	sym, ok := classSym.ClassScope.LookupStatic(v.Name)
	if !ok {
		t.sink.Add(diag.NewFieldNotFound(v.Pos(), v.Name, classSym.Name))
		return types.ErrorType()
	}
	v.Sym = sym
	if sym.Kind == symtab.MethodSymbol && sym.IsStatic {
		v.IsMethod = true
		return sym.MethodType
	}
	t.sink.Add(diag.NewNotClassField(v.Pos(), v.Name))
	return types.ErrorType()
}

func (t *typer) checkInstanceMemberAccess(v *ast.VarSel, recvType *types.Type) *types.Type {
	ownerClass, ok := t.classes[recvType.ClassName]
	if !ok {
		t.sink.Add(diag.NewClassNotFound(v.Pos(), recvType.ClassName))
		return types.ErrorType()
	}
	sym, found := ownerClass.ClassScope.LookupStatic(v.Name)
	if !found {
		t.sink.Add(diag.NewFieldNotFound(v.Pos(), v.Name, recvType.ClassName))
		return types.ErrorType()
	}
	v.Sym = sym
	switch sym.Kind {
	case symtab.VariableSymbol:
		if sym.IsMember && !t.currentClassAccessible(sym) {
			t.sink.Add(diag.NewFieldNotAccess(v.Pos(), v.Name, declaringClassName(sym)))
			return types.ErrorType()
		}
		return sym.VarType
	case symtab.MethodSymbol:
		v.IsMethod = true
		return sym.MethodType
	default:
		t.sink.Add(diag.NewNotClassField(v.Pos(), v.Name))
		return types.ErrorType()
	}
}

// currentClassAccessible implements the protected-style visibility
// rule: a field declared in class D is reachable from a method of
// class C iff C <: D.
func (t *typer) currentClassAccessible(sym *symtab.Symbol) bool {
	if t.currentClass == nil {
		return false
	}
	owner := declaringClassName(sym)
	if owner == "" {
		return true
	}
	ownerSym, ok := t.classes[owner]
	if !ok {
		return true
	}
	return t.currentClass.ClassType.SubtypeOf(ownerSym.ClassType)
}

func declaringClassName(sym *symtab.Symbol) string {
	if sym.Scope != nil && sym.Scope.Owner != nil {
		return sym.Scope.Owner.Name
	}
	return ""
}

func (t *typer) checkIndexSel(e *ast.IndexSel) *types.Type {
	arrType := t.checkExpr(e.Array)
	idxType := t.checkExpr(e.Index)
	if !arrType.NoError() {
		return types.ErrorType()
	}
	if !arrType.IsArray() {
		t.sink.Add(diag.NewNotArray(e.Array.Pos(), arrType.String()))
		return types.ErrorType()
	}
	if idxType.NoError() && !types.Eq(idxType, types.Int()) {
		t.sink.Add(diag.NewBadIndexType(e.Index.Pos(), idxType.String()))
	}
	return arrType.Elem
}

func (t *typer) checkNewClass(e *ast.NewClass) *types.Type {
	classSym, ok := t.classes[e.ClassName]
	if !ok {
		t.sink.Add(diag.NewClassNotFound(e.Pos(), e.ClassName))
		return types.ErrorType()
	}
	e.Sym = classSym
	if classSym.IsAbstractC {
		t.sink.Add(diag.NewNewAbstractClass(e.Pos(), e.ClassName))
		return types.ErrorType()
	}
	return classSym.ClassType
}

func (t *typer) checkNewArray(e *ast.NewArray) *types.Type {
	lenType := t.checkExpr(e.Length)
	if lenType.NoError() && !types.Eq(lenType, types.Int()) {
		t.sink.Add(diag.NewBadNewArrayLength(e.Length.Pos()))
	}
	elemType := t.resolveTypeExpr(e.ElemType)
	if elemType.IsVoid() {
		t.sink.Add(diag.NewBadArrElement(e.ElemType.Pos()))
		return types.ErrorType()
	}
	return types.Array(elemType)
}

func (t *typer) checkUnary(e *ast.Unary) *types.Type {
	operandType := t.checkExpr(e.Operand)
	if !operandType.NoError() {
		return types.ErrorType()
	}
	switch e.Op {
	case "-":
		if types.Eq(operandType, types.Int()) {
			return types.Int()
		}
	case "!":
		if types.Eq(operandType, types.Bool()) {
			return types.Bool()
		}
	}
	t.sink.Add(diag.NewIncompatUnOp(e.Pos(), e.Op, operandType.String()))
	return types.ErrorType()
}

func (t *typer) checkBinary(e *ast.Binary) *types.Type {
	leftType := t.checkExpr(e.Left)
	rightType := t.checkExpr(e.Right)
	if !leftType.NoError() || !rightType.NoError() {
		return types.ErrorType()
	}
	switch e.Op {
	case "+":
		if types.Eq(leftType, types.Int()) && types.Eq(rightType, types.Int()) {
			return types.Int()
		}
		if types.Eq(leftType, types.Str()) && types.Eq(rightType, types.Str()) {
			return types.Str()
		}
	case "-", "*", "/", "%":
		if types.Eq(leftType, types.Int()) && types.Eq(rightType, types.Int()) {
			return types.Int()
		}
	case "<", "<=", ">", ">=":
		if types.Eq(leftType, types.Int()) && types.Eq(rightType, types.Int()) {
			return types.Bool()
		}
	case "&&", "||":
		if types.Eq(leftType, types.Bool()) && types.Eq(rightType, types.Bool()) {
			return types.Bool()
		}
	case "==", "!=":
		if leftType.SubtypeOf(rightType) || rightType.SubtypeOf(leftType) {
			return types.Bool()
		}
	}
	t.sink.Add(diag.NewIncompatBinOp(e.Pos(), e.Op, leftType.String(), rightType.String()))
	return types.ErrorType()
}

func (t *typer) checkClassTest(e *ast.ClassTest) *types.Type {
	xType := t.checkExpr(e.X)
	if _, ok := t.classes[e.ClassName]; !ok {
		t.sink.Add(diag.NewClassNotFound(e.Pos(), e.ClassName))
		return types.ErrorType()
	}
	if xType.NoError() && !xType.IsClass() {
		t.sink.Add(diag.NewNotClass(e.X.Pos(), xType.String()))
	}
	return types.Bool()
}

func (t *typer) checkClassCast(e *ast.ClassCast) *types.Type {
	xType := t.checkExpr(e.X)
	classSym, ok := t.classes[e.ClassName]
	if !ok {
		t.sink.Add(diag.NewClassNotFound(e.Pos(), e.ClassName))
		return types.ErrorType()
	}
	if xType.NoError() && !xType.IsClass() {
		t.sink.Add(diag.NewNotClass(e.X.Pos(), xType.String()))
		return types.ErrorType()
	}
	return classSym.ClassType
}
