// Package diag implements the diagnostic sink of section 4.3: an
// append-only collector of typed, positioned error records drawn from
// the closed taxonomy of section 7.
package diag

// Kind tags one of the closed set of diagnostic kinds enumerated in
// section 7. The set is never extended at runtime.
type Kind int

const (
	DeclConflict Kind = iota
	OverridingVar
	ClassNotFound
	BadInheritance
	BadOverride
	BadAbstractMethod
	NewAbstractClass
	BadVarType
	AssignVarVoid
	BadArrElement
	VoidAsPara
	IncompatBinOp
	IncompatUnOp
	BadTestExpr
	BreakOutOfLoop
	MissingReturn
	BadReturnType
	IncompatibleReturn
	BadArgCount
	BadArgType
	BadLengthArg
	NotCallable
	NotArray
	NotClass
	UndeclVar
	FieldNotFound
	FieldNotAccess
	NotClassField
	AssignMethod
	AssignCapture
	ThisInStaticFunc
	RefNonStatic
	NoMainClass
	BadCountArgLambda
	BadNewArrayLength
)

func (k Kind) String() string {
	switch k {
	case DeclConflict:
		return "DeclConflict"
	case OverridingVar:
		return "OverridingVar"
	case ClassNotFound:
		return "ClassNotFound"
	case BadInheritance:
		return "BadInheritance"
	case BadOverride:
		return "BadOverride"
	case BadAbstractMethod:
		return "BadAbstractMethod"
	case NewAbstractClass:
		return "NewAbstractClass"
	case BadVarType:
		return "BadVarType"
	case AssignVarVoid:
		return "AssignVarVoid"
	case BadArrElement:
		return "BadArrElement"
	case VoidAsPara:
		return "VoidAsPara"
	case IncompatBinOp:
		return "IncompatBinOp"
	case IncompatUnOp:
		return "IncompatUnOp"
	case BadTestExpr:
		return "BadTestExpr"
	case BreakOutOfLoop:
		return "BreakOutOfLoop"
	case MissingReturn:
		return "MissingReturn"
	case BadReturnType:
		return "BadReturnType"
	case IncompatibleReturn:
		return "IncompatibleReturn"
	case BadArgCount:
		return "BadArgCount"
	case BadArgType:
		return "BadArgType"
	case BadLengthArg:
		return "BadLengthArg"
	case NotCallable:
		return "NotCallable"
	case NotArray:
		return "NotArray"
	case NotClass:
		return "NotClass"
	case UndeclVar:
		return "UndeclVar"
	case FieldNotFound:
		return "FieldNotFound"
	case FieldNotAccess:
		return "FieldNotAccess"
	case NotClassField:
		return "NotClassField"
	case AssignMethod:
		return "AssignMethod"
	case AssignCapture:
		return "AssignCapture"
	case ThisInStaticFunc:
		return "ThisInStaticFunc"
	case RefNonStatic:
		return "RefNonStatic"
	case NoMainClass:
		return "NoMainClass"
	case BadCountArgLambda:
		return "BadCountArgLambda"
	case BadNewArrayLength:
		return "BadNewArrayLength"
	default:
		return "?"
	}
}
