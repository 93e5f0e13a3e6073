package typing

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/types"
)

// checkLambda re-opens the scopes the naming pass built for lam,
// type-checks its body, and finalizes its return type by joining
// every collected `return` expression type (section 4.5's "Lambda
// finalization").
func (t *typer) checkLambda(lam *ast.LambdaExpr) *types.Type {
	if lam.Sym == nil || lam.Scope == nil {
		return types.ErrorType()
	}
	t.stack.Open(lam.Scope)

	bodyReturns := false
	switch {
	case lam.IsExprBody:
		t.stack.Open(lam.ExprScope)
		retType := t.checkExpr(lam.ExprBody)
		lam.Sym.AddReturnType(retType)
		t.stack.Close()
		bodyReturns = true
	case lam.BlockBody != nil:
		bodyReturns = t.checkBlock(lam.BlockBody)
	}

	t.stack.Close()

	var resultType *types.Type
	if len(lam.Sym.ReturnTypes) == 0 {
		resultType = types.Void()
	} else {
		resultType = types.Join(lam.Sym.ReturnTypes)
		if !resultType.NoError() {
			// Returns that are all error were reported where they arose;
			// only a clash among well-typed returns is reported here.
			for _, rt := range lam.Sym.ReturnTypes {
				if rt.NoError() {
					t.sink.Add(diag.NewIncompatibleReturn(lam.Pos()))
					break
				}
			}
		}
	}

	if !lam.IsExprBody && resultType.NoError() && !resultType.IsVoid() && !bodyReturns {
		t.sink.Add(diag.NewMissingReturn(lam.Pos()))
	}

	lam.Sym.FinalizeType(resultType)
	lam.SetType(lam.Sym.LambdaType)
	return lam.Sym.LambdaType
}
