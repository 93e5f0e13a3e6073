// Package types implements the type algebra of section 3 of the
// language specification: primitive and sentinel base types, derived
// array and function types, and class types linked into a single
// inheritance chain. Types are immutable once constructed, with the
// sole exception of a lambda's function type, which the typing pass
// refines once (see internal/symtab).
package types

import (
	"fmt"
	"strings"
)

// Kind tags the variant a Type holds.
type Kind int

const (
	KInt Kind = iota
	KBool
	KString
	KVoid
	KNull
	KError
	KArray
	KFun
	KClass
)

// Type is a single value of the type algebra. Only the fields
// relevant to Kind are meaningful; the rest are nil/zero.
type Type struct {
	Kind Kind

	// KArray
	Elem *Type

	// KFun
	Ret    *Type
	Params []*Type

	// KClass
	ClassName string
	Parent    *Type // optional parent class type, nil at the root
}

var (
	intType    = &Type{Kind: KInt}
	boolType   = &Type{Kind: KBool}
	stringType = &Type{Kind: KString}
	voidType   = &Type{Kind: KVoid}
	nullType   = &Type{Kind: KNull}
	errorType  = &Type{Kind: KError}
)

// Int returns the int primitive type.
func Int() *Type { return intType }

// Bool returns the bool primitive type.
func Bool() *Type { return boolType }

// Str returns the string primitive type.
func Str() *Type { return stringType }

// Void returns the void primitive type.
func Void() *Type { return voidType }

// Null returns the null primitive type.
func Null() *Type { return nullType }

// ErrorType returns the absorbing error sentinel.
func ErrorType() *Type { return errorType }

// Array constructs array(elem). elem must not be void or error;
// callers (the naming pass) are responsible for rejecting those
// before constructing the type, reporting a dedicated diagnostic
// (BadArrElement) rather than silently producing error.
func Array(elem *Type) *Type {
	return &Type{Kind: KArray, Elem: elem}
}

// Fun constructs fun(ret, params...). ret may be void. Fun does not
// check params: where a parameter is declared void, the passes report
// VoidAsPara and pass ErrorType() in its place.
func Fun(ret *Type, params ...*Type) *Type {
	return &Type{Kind: KFun, Ret: ret, Params: params}
}

// Class constructs class(name) with an optional parent link. parent
// may be nil for a root class.
func Class(name string, parent *Type) *Type {
	return &Type{Kind: KClass, ClassName: name, Parent: parent}
}

// IsClass, IsArray, IsFun, IsBase, IsVoid are the shape predicates
// exposed by section 4.1.
func (t *Type) IsClass() bool { return t != nil && t.Kind == KClass }
func (t *Type) IsArray() bool { return t != nil && t.Kind == KArray }
func (t *Type) IsFun() bool   { return t != nil && t.Kind == KFun }
func (t *Type) IsVoid() bool  { return t != nil && t.Kind == KVoid }

// IsBase reports whether t is one of the primitive or sentinel base
// types (everything except array/fun/class).
func (t *Type) IsBase() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KInt, KBool, KString, KVoid, KNull, KError:
		return true
	default:
		return false
	}
}

// NoError reports whether t is not the error sentinel. Downstream
// checks are suppressed whenever an operand fails this predicate.
func (t *Type) NoError() bool {
	return t != nil && t.Kind != KError
}

// String renders a type using the printing conventions of 4.1:
// primitives print their name, array(t) prints "t[]", and
// fun(r, a1..an) prints "r(a1, ..., an)".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KInt:
		return "int"
	case KBool:
		return "bool"
	case KString:
		return "string"
	case KVoid:
		return "void"
	case KNull:
		return "null"
	case KError:
		return "error"
	case KArray:
		return t.Elem.String() + "[]"
	case KFun:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		return fmt.Sprintf("%s(%s)", t.Ret.String(), strings.Join(parts, ", "))
	case KClass:
		return "class " + t.ClassName
	default:
		return "?"
	}
}

// Eq is structural equality: fun types compare component-wise, class
// types compare by name only (the unique identifier for a class).
func Eq(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KArray:
		return Eq(a.Elem, b.Elem)
	case KFun:
		if !Eq(a.Ret, b.Ret) || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Eq(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return true
	case KClass:
		return a.ClassName == b.ClassName
	default:
		return true
	}
}

// SubtypeOf implements the relation of section 3:
//   - reflexive
//   - null <: C for any class C
//   - C <: D iff D is a transitive parent of C
//   - fun(r,a1..an) <: fun(r',a1'..an') iff r<:r' and ai'<:ai (covariant
//     result, contravariant parameters)
//   - error is subtype and supertype of everything
func (a *Type) SubtypeOf(b *Type) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind == KError || b.Kind == KError {
		return true
	}
	if Eq(a, b) {
		return true
	}
	if a.Kind == KNull && b.Kind == KClass {
		return true
	}
	if a.Kind == KClass && b.Kind == KClass {
		for c := a.Parent; c != nil; c = c.Parent {
			if c.ClassName == b.ClassName {
				return true
			}
		}
		return false
	}
	if a.Kind == KFun && b.Kind == KFun {
		if len(a.Params) != len(b.Params) {
			return false
		}
		if !a.Ret.SubtypeOf(b.Ret) {
			return false
		}
		for i := range a.Params {
			if !b.Params[i].SubtypeOf(a.Params[i]) {
				return false
			}
		}
		return true
	}
	return false
}
