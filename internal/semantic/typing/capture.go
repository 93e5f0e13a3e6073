package typing

import "github.com/decafteam/decafc/internal/symtab"

// recordCapture implements section 4.6: a successful lookup while at
// least one lambda is active records sym into the innermost lambda,
// unless sym's defining scope lies within that lambda's own
// scope-chain, or the reference is a class-member access (members are
// reached via `this`, which is captured in its own right instead).
func (t *typer) recordCapture(sym *symtab.Symbol, isMemberAccess bool) {
	if sym == nil || isMemberAccess {
		return
	}
	lambda := t.stack.CurrentLambda()
	if lambda == nil {
		return
	}
	if sym.Scope != nil && scopeWithin(lambda.LambdaScope, sym.Scope) {
		return
	}
	lambda.AddCapture(sym)
}

// scopeWithin reports whether target lies within root's own
// scope-chain: root itself, or reachable by walking target's static
// Parent links up to root.
func scopeWithin(root, target *symtab.Scope) bool {
	for sc := target; sc != nil; sc = sc.Parent {
		if sc == root {
			return true
		}
	}
	return false
}
