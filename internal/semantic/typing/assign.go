package typing

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/symtab"
)

// checkAssign implements section 4.5's assignment rule: a method
// target is always illegal, a captured bare-name local is illegal,
// otherwise the rhs must be a subtype of the lhs.
func (t *typer) checkAssign(s *ast.Assign) {
	rhsType := t.checkExpr(s.Rhs)

	lhsVar, isVarSel := s.Lhs.(*ast.VarSel)
	if !isVarSel {
		lhsType := t.checkExpr(s.Lhs)
		if lhsType.NoError() && rhsType.NoError() && !rhsType.SubtypeOf(lhsType) {
			t.sink.Add(diag.NewIncompatBinOp(s.Pos(), "=", lhsType.String(), rhsType.String()))
		}
		return
	}

	lhsType := t.checkExpr(lhsVar)
	if lhsVar.Sym == nil {
		return
	}
	if lhsVar.Sym.Kind == symtab.MethodSymbol {
		t.sink.Add(diag.NewAssignMethod(lhsVar.Pos(), lhsVar.Name))
		return
	}
	if lhsVar.Receiver == nil {
		if lambda := t.stack.CurrentLambda(); lambda != nil {
			if _, captured := lambda.Captured[lhsVar.Sym]; captured {
				t.sink.Add(diag.NewAssignCapture(lhsVar.Pos(), lhsVar.Name))
				return
			}
		}
	}
	if lhsType.NoError() && rhsType.NoError() && !rhsType.SubtypeOf(lhsType) {
		t.sink.Add(diag.NewIncompatBinOp(s.Pos(), "=", lhsType.String(), rhsType.String()))
	}
}
