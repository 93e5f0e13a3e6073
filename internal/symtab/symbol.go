package symtab

import (
	"fmt"

	"github.com/decafteam/decafc/internal/token"
	"github.com/decafteam/decafc/internal/types"
)

// SymbolKind tags the Symbol variant: a tagged struct with exhaustive
// dispatch rather than a set of small interfaces (see DESIGN.md).
type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	MethodSymbol
	ClassSymbol
	LambdaSymbol
)

// Symbol is one declared name: a variable, method, class, or lambda.
// Only the fields relevant to Kind are meaningful.
type Symbol struct {
	Kind SymbolKind
	Name string
	Pos  token.Position

	// Scope is the scope this symbol was declared into. Set by
	// Scope.Declare.
	Scope *Scope

	// ---- variable ----
	VarType     *types.Type
	IsParameter bool
	IsMember    bool
	IsLocal     bool

	// ---- method ----
	MethodType  *types.Type // fun(ret, params...)
	FormalScope *Scope
	IsStatic    bool
	IsAbstract  bool
	OwningClass *Symbol // the class symbol this method belongs to

	// ---- class ----
	ClassType   *types.Type // class(name) value, carries the parent link
	ClassScope  *Scope
	ParentClass *Symbol // parent class symbol, nil at the root
	IsAbstractC bool
	IsMain      bool

	// ---- lambda ----
	LambdaType  *types.Type // current signature, refined once by typing
	LambdaScope *Scope
	ReturnTypes []*types.Type        // accumulated `return` expression types
	Captured    map[*Symbol]struct{} // capture set, keyed by symbol identity
}

// NewVariable creates a variable symbol.
func NewVariable(name string, pos token.Position, typ *types.Type) *Symbol {
	return &Symbol{Kind: VariableSymbol, Name: name, Pos: pos, VarType: typ}
}

// NewMethod creates a method symbol with the given formal scope and
// owning class.
func NewMethod(name string, pos token.Position, formalScope *Scope, owningClass *Symbol, isStatic, isAbstract bool) *Symbol {
	return &Symbol{
		Kind:        MethodSymbol,
		Name:        name,
		Pos:         pos,
		FormalScope: formalScope,
		OwningClass: owningClass,
		IsStatic:    isStatic,
		IsAbstract:  isAbstract,
	}
}

// NewClass creates a class symbol with its own class scope.
func NewClass(name string, pos token.Position, classScope *Scope, parent *Symbol, isAbstract bool) *Symbol {
	return &Symbol{
		Kind:        ClassSymbol,
		Name:        name,
		Pos:         pos,
		ClassScope:  classScope,
		ParentClass: parent,
		IsAbstractC: isAbstract,
	}
}

// LambdaName synthesizes the name of a lambda symbol from its
// definition position, per section 3: "lambda@<pos>".
func LambdaName(pos token.Position) string {
	return fmt.Sprintf("lambda@%s", pos.String())
}

// NewLambda creates a lambda symbol with initial return type null, as
// required by section 4.4's lambda handling.
func NewLambda(pos token.Position, lambdaScope *Scope, params []*types.Type) *Symbol {
	return &Symbol{
		Kind:        LambdaSymbol,
		Name:        LambdaName(pos),
		Pos:         pos,
		LambdaScope: lambdaScope,
		LambdaType:  types.Fun(types.Null(), params...),
		Captured:    make(map[*Symbol]struct{}),
	}
}

// AddCapture records sym as captured by this lambda, unless it
// already is (captured is a set).
func (l *Symbol) AddCapture(sym *Symbol) {
	if l.Captured == nil {
		l.Captured = make(map[*Symbol]struct{})
	}
	l.Captured[sym] = struct{}{}
}

// CapturedSymbols returns the lambda's capture set as a slice, in no
// particular order (callers that need determinism should sort by
// Pos or Name).
func (l *Symbol) CapturedSymbols() []*Symbol {
	out := make([]*Symbol, 0, len(l.Captured))
	for s := range l.Captured {
		out = append(out, s)
	}
	return out
}

// AddReturnType accumulates a `return` expression's type for later
// Join-based inference of the lambda's result type.
func (l *Symbol) AddReturnType(t *types.Type) {
	l.ReturnTypes = append(l.ReturnTypes, t)
}

// FinalizeType replaces the lambda's signature with ret as its return
// type, keeping the existing parameter list. This is the one
// exception to type immutability noted in section 3.
func (l *Symbol) FinalizeType(ret *types.Type) {
	l.LambdaType = types.Fun(ret, l.LambdaType.Params...)
}
