package symtab

import (
	"testing"

	"github.com/decafteam/decafc/internal/token"
	"github.com/decafteam/decafc/internal/types"
)

func pos(l, c int) token.Position { return token.Position{Line: l, Column: c} }

func TestLookupFallsThroughToGlobal(t *testing.T) {
	global := NewScope(Global, nil)
	global.Declare(NewVariable("g", pos(1, 1), types.Int()))

	stack := NewStack(global)
	local := NewScope(Local, nil)
	stack.Open(local)

	sym, ok := stack.Lookup("g")
	if !ok || sym.Name != "g" {
		t.Fatalf("expected to find global symbol g, got %v %v", sym, ok)
	}
}

func TestLookupBeforeRejectsLaterLocal(t *testing.T) {
	global := NewScope(Global, nil)
	stack := NewStack(global)
	local := NewScope(Local, global)
	stack.Open(local)

	local.Declare(NewVariable("x", pos(5, 1), types.Int()))

	if _, ok := stack.LookupBefore("x", pos(3, 1)); ok {
		t.Error("x defined at (5,1) should not be visible to a use at (3,1)")
	}
	if _, ok := stack.LookupBefore("x", pos(10, 1)); !ok {
		t.Error("x defined at (5,1) should be visible to a use at (10,1)")
	}
}

func TestClassOpenPullsInParentChain(t *testing.T) {
	global := NewScope(Global, nil)
	stack := NewStack(global)

	aScope := NewScope(Class, nil)
	bScope := NewScope(Class, aScope)

	stack.Open(bScope)
	if stack.CurrentClass() != bScope {
		t.Fatalf("expected current class to be B, got %v", stack.CurrentClass())
	}
	if stack.Top() != bScope {
		t.Fatalf("expected top of stack to be B")
	}

	stack.Close()
	if stack.Top() != nil {
		t.Fatalf("closing B should have unwound the whole implicit chain, got top %v", stack.Top())
	}
	if stack.CurrentClass() != nil {
		t.Fatalf("no class should remain current after closing the chain")
	}
}

func TestLambdaCaptureMergesOnClose(t *testing.T) {
	global := NewScope(Global, nil)
	stack := NewStack(global)

	outerLocal := NewScope(Local, global)
	stack.Open(outerLocal)
	outerVar := NewVariable("n", pos(1, 1), types.Int())
	outerLocal.Declare(outerVar)

	outerLambdaSym := NewLambda(pos(2, 1), nil, nil)
	outerLambdaScope := NewScope(Lambda, outerLocal)
	outerLambdaScope.Owner = outerLambdaSym
	outerLambdaSym.LambdaScope = outerLambdaScope
	stack.Open(outerLambdaScope)

	innerLambdaSym := NewLambda(pos(3, 1), nil, nil)
	innerLambdaScope := NewScope(Lambda, outerLambdaScope)
	innerLambdaScope.Owner = innerLambdaSym
	innerLambdaSym.LambdaScope = innerLambdaScope
	stack.Open(innerLambdaScope)

	// inner lambda captures the outer local variable
	innerLambdaSym.AddCapture(outerVar)

	stack.Close() // close inner lambda: should propagate capture to outer
	if _, ok := outerLambdaSym.Captured[outerVar]; !ok {
		t.Error("capture should propagate from inner to outer lambda on close")
	}

	stack.Close() // close outer lambda
	stack.Close() // close outer local
}

func TestFindConflictStopsAtClassBoundary(t *testing.T) {
	global := NewScope(Global, nil)
	stack := NewStack(global)

	classScope := NewScope(Class, nil)
	classScope.Declare(NewVariable("field", pos(1, 1), types.Int()))
	stack.Open(classScope)

	formalScope := NewScope(Formal, classScope)
	stack.Open(formalScope)

	// "field" lives in the class scope, which FindConflict must not see
	// from within a formal/local/lambda chain.
	if _, ok := stack.FindConflict("field"); ok {
		t.Error("FindConflict should not see class-scope members from inside a formal scope")
	}

	formalScope.Declare(NewVariable("param", pos(2, 1), types.Int()))
	if _, ok := stack.FindConflict("param"); !ok {
		t.Error("FindConflict should see a conflicting name within the formal/local/lambda chain")
	}
}
