package symtab

import "github.com/decafteam/decafc/internal/token"

// Stack is the runtime scope stack of section 4.2: the live
// evaluation context both passes push/pop scopes on while walking the
// AST. The global scope sits conceptually at the bottom but is never
// itself pushed; lookups fall through to it once the stack is
// exhausted.
type Stack struct {
	global *Scope
	active []*Scope // innermost last

	// classChain holds the consecutive class scopes currently open
	// (a class plus however much of its ancestor chain open() pulled
	// in with it), so close() can pop the whole chain at once.
	classChain []*Scope

	// lambdas is the stack of currently open lambda symbols, innermost
	// last, used by capture analysis (section 4.6).
	lambdas []*Symbol

	// defining maps a name to the position of the var declaration
	// currently elaborating its initializer, forbidding self-reference
	// (section 4.4, "var self-reference").
	defining map[string]token.Position
}

// NewStack creates a scope stack rooted at global.
func NewStack(global *Scope) *Stack {
	return &Stack{global: global, defining: make(map[string]token.Position)}
}

// Global returns the root global scope.
func (s *Stack) Global() *Scope { return s.global }

// Top returns the innermost currently open scope, or nil if the
// stack is empty (i.e. only the unpushed global scope is active).
func (s *Stack) Top() *Scope {
	if len(s.active) == 0 {
		return nil
	}
	return s.active[len(s.active)-1]
}

// CurrentClass returns the class scope currently being elaborated, or
// nil if none is open.
func (s *Stack) CurrentClass() *Scope {
	if len(s.classChain) == 0 {
		return nil
	}
	return s.classChain[len(s.classChain)-1]
}

// CurrentLambda returns the innermost currently open lambda symbol,
// or nil if no lambda is open.
func (s *Stack) CurrentLambda() *Symbol {
	if len(s.lambdas) == 0 {
		return nil
	}
	return s.lambdas[len(s.lambdas)-1]
}

// InLambda reports whether any lambda is currently open.
func (s *Stack) InLambda() bool {
	return len(s.lambdas) > 0
}

// push is the uninterpreted stack append, used by open().
func (s *Stack) push(scope *Scope) {
	s.active = append(s.active, scope)
}

// pop is the uninterpreted stack removal, used by open()/close(). It
// returns the popped scope.
func (s *Stack) pop() *Scope {
	n := len(s.active)
	top := s.active[n-1]
	s.active = s.active[:n-1]
	return top
}

// isOpen reports whether scope is already somewhere on the active
// stack.
func (s *Stack) isOpen(scope *Scope) bool {
	for _, sc := range s.active {
		if sc == scope {
			return true
		}
	}
	return false
}

// Open pushes scope per section 4.2's open(scope) operation:
//   - class scope: first recursively open its parent class chain (if
//     not already open), then push scope itself and record it as the
//     current class.
//   - formal scope: push, recording the owning method implicitly via
//     scope.Owner (read by callers via CurrentClass/Top, not tracked
//     separately since a formal scope's Owner already names it).
//   - lambda scope: push, and push its owning lambda symbol onto the
//     lambda stack.
//   - local scope: push.
func (s *Stack) Open(scope *Scope) {
	switch scope.Kind {
	case Class:
		if scope.Parent != nil && scope.Parent.Kind == Class && !s.isOpen(scope.Parent) {
			s.Open(scope.Parent)
		}
		s.push(scope)
		s.classChain = append(s.classChain, scope)
	case Lambda:
		s.push(scope)
		s.lambdas = append(s.lambdas, scope.Owner)
	default:
		s.push(scope)
	}
}

// Close pops the top scope per section 4.2's close() operation:
//   - lambda: merge its captured set into the enclosing lambda (if
//     any), dropping entries defined within the closing lambda's own
//     local-scope chain, then pop it off the lambda stack.
//   - class: pop every remaining scope belonging to the same ancestor
//     chain that Open pulled in.
//   - otherwise: a plain pop.
func (s *Stack) Close() {
	top := s.pop()
	switch top.Kind {
	case Lambda:
		closing := top.Owner
		if len(s.lambdas) > 0 && s.lambdas[len(s.lambdas)-1] == closing {
			s.lambdas = s.lambdas[:len(s.lambdas)-1]
		}
		if parent := s.CurrentLambda(); parent != nil && closing != nil {
			for captured := range closing.Captured {
				if definedWithin(closing.LambdaScope, captured.Scope) {
					continue
				}
				parent.AddCapture(captured)
			}
		}
	case Class:
		for len(s.classChain) > 0 && s.classChain[len(s.classChain)-1] == top {
			s.classChain = s.classChain[:len(s.classChain)-1]
		}
		// A class's ancestor chain was opened implicitly by Open; pop
		// the rest of it now, since a single Close() call closes the
		// whole chain.
		for s.Top() != nil && s.Top().Kind == Class && inChain(s.classChain, s.Top()) {
			s.classChain = s.classChain[:len(s.classChain)-1]
			s.pop()
		}
	}
}

func inChain(chain []*Scope, scope *Scope) bool {
	for _, c := range chain {
		if c == scope {
			return true
		}
	}
	return false
}

// definedWithin reports whether defScope lies within root's own
// scope-chain (root itself or nested beneath it).
func definedWithin(root, defScope *Scope) bool {
	for sc := defScope; sc != nil; sc = sc.Parent {
		if sc == root {
			return true
		}
	}
	return false
}

// Lookup is an innermost-first scan of the active stack, falling
// through to the global scope.
func (s *Stack) Lookup(name string) (*Symbol, bool) {
	for i := len(s.active) - 1; i >= 0; i-- {
		if sym, ok := s.active[i].Get(name); ok {
			return sym, true
		}
	}
	return s.global.Get(name)
}

// LookupBefore behaves like Lookup, but for symbols declared in a
// local scope rejects any whose defining position is at or after pos
// — used by the typing pass to enforce declaration-before-use within
// a block.
func (s *Stack) LookupBefore(name string, pos token.Position) (*Symbol, bool) {
	for i := len(s.active) - 1; i >= 0; i-- {
		scope := s.active[i]
		if sym, ok := scope.Get(name); ok {
			if scope.Kind == Local && !sym.Pos.Before(pos) {
				continue
			}
			return sym, true
		}
	}
	return s.global.Get(name)
}

// FindConflict implements section 4.2's collision scan: if the
// current scope is formal/local/lambda, scan inward while still
// inside that chain (stopping at the first class/global scope found),
// then also check the global scope. Otherwise it behaves like
// Lookup. Override checks against a parent class scope are never
// performed here; they are explicit in the naming pass.
func (s *Stack) FindConflict(name string) (*Symbol, bool) {
	top := s.Top()
	if top == nil || (top.Kind != Formal && top.Kind != Local && top.Kind != Lambda) {
		return s.Lookup(name)
	}
	for i := len(s.active) - 1; i >= 0; i-- {
		scope := s.active[i]
		if scope.Kind != Formal && scope.Kind != Local && scope.Kind != Lambda {
			break
		}
		if sym, ok := scope.Get(name); ok {
			return sym, true
		}
	}
	return s.global.Get(name)
}

// BeginDefining records name as currently being defined at pos,
// forbidding a self-referential lookup during the evaluation of its
// own initializer (section 4.4).
func (s *Stack) BeginDefining(name string, pos token.Position) {
	s.defining[name] = pos
}

// EndDefining clears the defining marker for name.
func (s *Stack) EndDefining(name string) {
	delete(s.defining, name)
}

// IsDefining reports whether name is currently mid-initializer, and
// the position recorded for it.
func (s *Stack) IsDefining(name string) (token.Position, bool) {
	pos, ok := s.defining[name]
	return pos, ok
}
