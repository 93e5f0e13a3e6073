package naming

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/types"
)

// resolveType turns a syntactic type annotation into a types.Type
// against the class table built in steps 1-2. Unknown class names
// report ClassNotFound and resolve to the error type so downstream
// checks are suppressed (section 7 propagation rule).
//
// Successful resolutions are memoized by the annotation's textual
// form (section 9's TFun-literal note: two annotations compare by
// String() before either side is resolved), since the same
// annotation text is frequently re-resolved across sibling
// fields/params. A failed resolution is never cached, so every
// occurrence of an unresolvable annotation reports its own diagnostic
// at its own position rather than silently reusing the first one.
func (n *namer) resolveType(te ast.TypeExpression, scope *symtab.Scope) *types.Type {
	if te == nil {
		return types.Void()
	}
	key := te.String()
	if cached, ok := n.typeCache[key]; ok {
		return cached
	}
	before := n.sink.Len()
	t := n.resolveTypeUncached(te)
	if t.NoError() && n.sink.Len() == before {
		n.typeCache[key] = t
	}
	return t
}

func (n *namer) resolveTypeUncached(te ast.TypeExpression) *types.Type {
	switch t := te.(type) {
	case *ast.NamedType:
		switch t.Name {
		case "int":
			return types.Int()
		case "bool":
			return types.Bool()
		case "string":
			return types.Str()
		case "void":
			return types.Void()
		default:
			if sym, ok := n.resolved[t.Name]; ok {
				return sym.ClassType
			}
			n.sink.Add(diag.NewClassNotFound(t.Pos(), t.Name))
			return types.ErrorType()
		}
	case *ast.ArrayTypeExpr:
		elem := n.resolveTypeUncached(t.Elem)
		if elem.IsVoid() || !elem.NoError() {
			if elem.IsVoid() {
				n.sink.Add(diag.NewBadArrElement(t.Pos()))
			}
			return types.ErrorType()
		}
		return types.Array(elem)
	case *ast.FunTypeExpr:
		ret := n.resolveTypeUncached(t.Ret)
		params := make([]*types.Type, len(t.Params))
		for i, p := range t.Params {
			pt := n.resolveTypeUncached(p)
			if pt.IsVoid() {
				n.sink.Add(diag.NewVoidAsPara(p.Pos()))
				pt = types.ErrorType()
			}
			params[i] = pt
		}
		return types.Fun(ret, params...)
	default:
		return types.ErrorType()
	}
}
