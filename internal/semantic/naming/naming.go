// Package naming implements the Naming pass of section 4.4: scope
// and symbol construction, class hierarchy validation, override and
// abstract-completeness checking, and entry-point location.
package naming

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/types"
)

// Pass is the Naming phase, satisfying semantic.Pass.
type Pass struct{}

// New creates the Naming pass.
func New() *Pass { return &Pass{} }

// Name implements semantic.Pass.
func (p *Pass) Name() string { return "naming" }

// Run implements semantic.Pass.
func (p *Pass) Run(program *ast.Program, sink *diag.Sink) error {
	n := newNamer(sink)
	n.run(program)
	return nil
}

// namer holds the transient state of one Naming walk.
type namer struct {
	sink   *diag.Sink
	global *symtab.Scope
	stack  *symtab.Stack

	classDefs map[string]*ast.ClassDecl // first declaration, by name
	parentOf  map[string]string         // class name -> parent name (cleared on ClassNotFound)
	declOrder []string                  // unique class names, in source order

	resolved  map[string]*symtab.Symbol // class name -> its symbol, once created
	topoOrder []string                  // class names in parent-first order

	typeCache map[string]*types.Type // annotation text -> resolved type

	loopDepth int
}

func newNamer(sink *diag.Sink) *namer {
	global := symtab.NewScope(symtab.Global, nil)
	return &namer{
		sink:      sink,
		global:    global,
		stack:     symtab.NewStack(global),
		classDefs: make(map[string]*ast.ClassDecl),
		parentOf:  make(map[string]string),
		resolved:  make(map[string]*symtab.Symbol),
		typeCache: make(map[string]*types.Type),
	}
}

func (n *namer) run(program *ast.Program) {
	program.GlobalScope = n.global

	if !n.buildClassGraph(program) {
		return
	}
	for _, name := range n.declOrder {
		n.createClassSymbol(name)
	}
	for _, name := range n.topoOrder {
		n.resolveMembers(n.classDefs[name])
	}
	n.checkAbstractCompleteness()
	n.findEntryPoint()
}

// buildClassGraph implements Step 1. It returns false if member
// resolution must be aborted (a cycle or a missing parent class was
// found).
func (n *namer) buildClassGraph(program *ast.Program) bool {
	for _, decl := range program.Classes {
		if _, exists := n.classDefs[decl.Name]; exists {
			n.sink.Add(diag.NewDeclConflict(decl.Pos(), decl.Name))
			continue
		}
		n.classDefs[decl.Name] = decl
		n.declOrder = append(n.declOrder, decl.Name)
		n.parentOf[decl.Name] = decl.ParentName
	}

	ok := true
	for _, name := range n.declOrder {
		parent := n.parentOf[name]
		if parent == "" {
			continue
		}
		if _, known := n.classDefs[parent]; !known {
			n.sink.Add(diag.NewClassNotFound(n.classDefs[name].Pos(), parent))
			n.parentOf[name] = ""
			ok = false
		}
	}

	visitedAt := make(map[string]int)
	walkID := 0
	for _, name := range n.declOrder {
		walkID++
		cur := name
		for cur != "" {
			if visitedAt[cur] == walkID {
				n.sink.Add(diag.NewBadInheritance(n.classDefs[name].Pos(), name))
				ok = false
				break
			}
			visitedAt[cur] = walkID
			cur = n.parentOf[cur]
		}
	}

	return ok
}

// createClassSymbol implements Step 2: topological, parent-first,
// memoized by presence in n.resolved.
func (n *namer) createClassSymbol(name string) *symtab.Symbol {
	if sym, ok := n.resolved[name]; ok {
		return sym
	}
	decl := n.classDefs[name]

	var parentSym *symtab.Symbol
	var parentScope *symtab.Scope
	var parentType *types.Type
	if parentName := n.parentOf[name]; parentName != "" {
		parentSym = n.createClassSymbol(parentName)
		parentScope = parentSym.ClassScope
		parentType = parentSym.ClassType
	}

	classScope := symtab.NewScope(symtab.Class, parentScope)
	sym := symtab.NewClass(name, decl.Pos(), classScope, parentSym, decl.IsAbstract)
	sym.ClassType = types.Class(name, parentType)
	classScope.Owner = sym

	n.resolved[name] = sym
	n.global.Declare(sym)
	decl.Sym = sym
	n.topoOrder = append(n.topoOrder, name)
	return sym
}
