package typing

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/types"
)

// resolveTypeExpr resolves a syntactic type annotation against the
// class table built by the naming pass. Unlike the naming pass's
// resolveType, it takes no scope argument and keeps no memo cache;
// by the time Typing runs every class symbol already exists in
// t.classes.
func (t *typer) resolveTypeExpr(te ast.TypeExpression) *types.Type {
	switch x := te.(type) {
	case *ast.NamedType:
		switch x.Name {
		case "int":
			return types.Int()
		case "bool":
			return types.Bool()
		case "string":
			return types.Str()
		case "void":
			return types.Void()
		default:
			if sym, ok := t.classes[x.Name]; ok {
				return sym.ClassType
			}
			t.sink.Add(diag.NewClassNotFound(x.Pos(), x.Name))
			return types.ErrorType()
		}
	case *ast.ArrayTypeExpr:
		elem := t.resolveTypeExpr(x.Elem)
		if elem.IsVoid() {
			t.sink.Add(diag.NewBadArrElement(x.Pos()))
			return types.ErrorType()
		}
		return types.Array(elem)
	case *ast.FunTypeExpr:
		params := make([]*types.Type, len(x.Params))
		for i, p := range x.Params {
			pt := t.resolveTypeExpr(p)
			if pt.IsVoid() {
				t.sink.Add(diag.NewVoidAsPara(p.Pos()))
				pt = types.ErrorType()
			}
			params[i] = pt
		}
		return types.Fun(t.resolveTypeExpr(x.Ret), params...)
	default:
		return types.ErrorType()
	}
}
