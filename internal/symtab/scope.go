// Package symtab implements the scope and symbol model of section 3:
// a forest of scopes (global/class/formal/local/lambda) holding
// name-unique symbol tables, and a runtime scope stack used as the
// live evaluation context during both the naming and typing walks.
package symtab

import "github.com/decafteam/decafc/internal/token"

// Kind tags the scope variant.
type Kind int

const (
	Global Kind = iota
	Class
	Formal
	Local
	Lambda
)

func (k Kind) String() string {
	switch k {
	case Global:
		return "global"
	case Class:
		return "class"
	case Formal:
		return "formal"
	case Local:
		return "local"
	case Lambda:
		return "lambda"
	default:
		return "?"
	}
}

// Scope owns a name-to-symbol mapping, unique per scope (section 3
// invariant: "each scope lists symbols with pairwise distinct
// names"). Parent is the static lexical parent used for lookups
// outside a running pass (design note: "two views of the same
// forest"); the live ScopeStack is the transient view used during a
// walk.
type Scope struct {
	Kind   Kind
	Parent *Scope

	// Owner is the symbol this scope belongs to: the class symbol for
	// a Class scope, the method symbol for a Formal scope, the lambda
	// symbol for a Lambda scope. Nil for Global and Local scopes.
	Owner *Symbol

	symbols map[string]*Symbol
	order   []string // declaration order, for deterministic iteration
}

// NewScope creates an empty scope of the given kind nested under
// parent (nil for the global scope).
func NewScope(kind Kind, parent *Scope) *Scope {
	return &Scope{
		Kind:    kind,
		Parent:  parent,
		symbols: make(map[string]*Symbol),
	}
}

// Declare adds sym to the scope. It returns false without modifying
// the scope if a symbol with the same name already exists here,
// preserving the "pairwise distinct names" invariant; callers are
// responsible for turning that into a DeclConflict diagnostic.
func (s *Scope) Declare(sym *Symbol) bool {
	if _, exists := s.symbols[sym.Name]; exists {
		return false
	}
	s.symbols[sym.Name] = sym
	sym.Scope = s
	s.order = append(s.order, sym.Name)
	return true
}

// Get looks up name in this scope only (no parent fallback).
func (s *Scope) Get(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Symbols returns the scope's own symbols in declaration order.
func (s *Scope) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.symbols[name])
	}
	return out
}

// LookupStatic walks the static parent chain (bypassing the runtime
// stack) starting at s. It is used by later, read-only phases that
// have no active ScopeStack.
func (s *Scope) LookupStatic(name string) (*Symbol, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.Get(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// Pos returns the position the scope was opened at, when it has an
// owner symbol; the zero position otherwise (e.g. the global scope).
func (s *Scope) Pos() token.Position {
	if s.Owner != nil {
		return s.Owner.Pos
	}
	return token.Position{}
}
