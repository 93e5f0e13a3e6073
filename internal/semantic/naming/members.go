package naming

import (
	"github.com/decafteam/decafc/internal/ast"
	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/symtab"
	"github.com/decafteam/decafc/internal/token"
	"github.com/decafteam/decafc/internal/types"
)

// resolveMembers implements Step 3 for one class: open its scope,
// declare fields, then methods (signing each and recursing into
// non-abstract bodies).
func (n *namer) resolveMembers(decl *ast.ClassDecl) {
	sym := n.resolved[decl.Name]
	classScope := sym.ClassScope
	n.stack.Open(classScope)
	defer n.stack.Close()

	for _, f := range decl.Fields {
		n.resolveField(decl, f, classScope)
	}
	for _, m := range decl.Methods {
		n.resolveMethod(decl, m, classScope)
	}
}

func (n *namer) resolveField(decl *ast.ClassDecl, f *ast.FieldDecl, classScope *symtab.Scope) {
	typ := n.resolveType(f.Type, classScope)
	if typ.IsVoid() {
		n.sink.Add(diag.NewBadVarType(f.Pos(), f.Name))
		typ = types.ErrorType()
	}
	if classScope.Parent != nil {
		if prior, ok := classScope.Parent.LookupStatic(f.Name); ok && prior.Kind == symtab.VariableSymbol && prior.IsMember {
			n.sink.Add(diag.NewOverridingVar(f.Pos(), f.Name, decl.Name))
		}
	}
	vsym := symtab.NewVariable(f.Name, f.Pos(), typ)
	vsym.IsMember = true
	if !classScope.Declare(vsym) {
		n.sink.Add(diag.NewDeclConflict(f.Pos(), f.Name))
		return
	}
	f.Sym = vsym
}

func (n *namer) resolveMethod(decl *ast.ClassDecl, m *ast.MethodDecl, classScope *symtab.Scope) {
	classSym := n.resolved[decl.Name]
	formalScope := symtab.NewScope(symtab.Formal, classScope)

	if !m.IsStatic {
		thisSym := symtab.NewVariable("this", m.Pos(), classSym.ClassType)
		formalScope.Declare(thisSym)
	}

	retType := n.resolveType(m.ReturnType, classScope)
	paramTypes := make([]*types.Type, len(m.Params))
	for i, p := range m.Params {
		pt := n.resolveType(p.Type, classScope)
		if pt.IsVoid() {
			n.sink.Add(diag.NewVoidAsPara(p.Pos()))
			pt = types.ErrorType()
		}
		paramTypes[i] = pt
	}

	sym := symtab.NewMethod(m.Name, m.Pos(), formalScope, classSym, m.IsStatic, m.IsAbstract)
	sym.MethodType = types.Fun(retType, paramTypes...)
	formalScope.Owner = sym

	for i, p := range m.Params {
		psym := symtab.NewVariable(p.Name, p.Pos(), paramTypes[i])
		psym.IsParameter = true
		if !formalScope.Declare(psym) {
			n.sink.Add(diag.NewDeclConflict(p.Pos(), p.Name))
			continue
		}
		p.Sym = psym
	}

	n.declareMethod(decl, m, classScope, sym)
	m.Sym = sym
	m.FormalScope = formalScope

	if !m.IsAbstract && m.Body != nil {
		n.stack.Open(formalScope)
		n.handleBlock(m.Body, formalScope)
		n.stack.Close()
	}
}

// declareMethod implements the collision rules of Step 3: an override
// of a compatible ancestor method, a BadOverride, or a plain
// DeclConflict.
func (n *namer) declareMethod(decl *ast.ClassDecl, m *ast.MethodDecl, classScope *symtab.Scope, sym *symtab.Symbol) {
	if _, ok := classScope.Get(m.Name); ok {
		n.sink.Add(diag.NewDeclConflict(m.Pos(), m.Name))
		return
	}
	if classScope.Parent != nil {
		if prior, ok := classScope.Parent.LookupStatic(m.Name); ok {
			if prior.Kind == symtab.MethodSymbol && !prior.IsStatic && !m.IsStatic {
				if m.IsAbstract && !prior.IsAbstract {
					n.sink.Add(diag.NewDeclConflict(m.Pos(), m.Name))
					return
				}
				if sym.MethodType.SubtypeOf(prior.MethodType) {
					classScope.Declare(sym)
					m.Overrides = prior
					return
				}
				n.sink.Add(diag.NewBadOverride(m.Pos(), m.Name, decl.Name))
				return
			}
			n.sink.Add(diag.NewDeclConflict(m.Pos(), m.Name))
			return
		}
	}
	classScope.Declare(sym)
}

// checkAbstractCompleteness implements Step 4.
func (n *namer) checkAbstractCompleteness() {
	for _, name := range n.topoOrder {
		decl := n.classDefs[name]
		sym := n.resolved[name]
		if decl.IsAbstract {
			continue
		}
		classScope := sym.ClassScope

		incomplete := false
		for _, m := range decl.Methods {
			if m.IsAbstract {
				incomplete = true
				break
			}
		}
		if !incomplete && classScope.Parent != nil {
			incomplete = hasUnimplementedAbstract(classScope.Parent, classScope)
		}
		if incomplete {
			n.sink.Add(diag.NewBadAbstractMethod(decl.Pos(), decl.Name))
		}
	}
}

// hasUnimplementedAbstract reports whether any abstract method
// declared somewhere in ancestorScope's chain is still abstract when
// resolved from classScope (i.e. was never concretely overridden).
func hasUnimplementedAbstract(ancestorScope, classScope *symtab.Scope) bool {
	for sc := ancestorScope; sc != nil; sc = sc.Parent {
		for _, sym := range sc.Symbols() {
			if sym.Kind != symtab.MethodSymbol || !sym.IsAbstract {
				continue
			}
			if resolved, ok := classScope.LookupStatic(sym.Name); !ok || resolved.IsAbstract {
				return true
			}
		}
	}
	return false
}

// findEntryPoint implements Step 5.
func (n *namer) findEntryPoint() {
	if mainClass, ok := n.resolved["Main"]; ok && !mainClass.IsAbstractC {
		if m, found := mainClass.ClassScope.Get("main"); found &&
			m.Kind == symtab.MethodSymbol && m.IsStatic && !m.IsAbstract &&
			len(m.MethodType.Params) == 0 && m.MethodType.Ret.IsVoid() {
			mainClass.IsMain = true
			return
		}
	}
	n.sink.Add(diag.NewNoMainClass(token.Position{}))
}
