package diag

import (
	"fmt"

	"github.com/decafteam/decafc/internal/token"
)

// Diagnostic is one typed, positioned error record. Message is the
// fully rendered text (section 7's fixed, parameterized strings);
// Kind is carried alongside for programmatic consumers (internal/report).
type Diagnostic struct {
	Kind    Kind
	Pos     token.Position
	Message string
}

// Error renders the diagnostic in the fixed format required by
// section 6: "*** Error at (L,C): <message>". Test oracles depend on
// this byte-for-byte.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("*** Error at %s: %s", d.Pos.String(), d.Message)
}

func newf(kind Kind, pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// NewDeclConflict reports a name colliding with a prior declaration.
func NewDeclConflict(pos token.Position, name string) Diagnostic {
	return newf(DeclConflict, pos, "%s is already declared in this scope", name)
}

// NewOverridingVar reports a subclass variable shadowing a parent one.
func NewOverridingVar(pos token.Position, name, class string) Diagnostic {
	return newf(OverridingVar, pos, "%s field of 'class %s' is overriding another declaration", name, class)
}

// NewClassNotFound reports a reference to an undeclared class.
func NewClassNotFound(pos token.Position, name string) Diagnostic {
	return newf(ClassNotFound, pos, "class '%s' not found", name)
}

// NewBadInheritance reports a class's inheritance chain forming a
// cycle, rooted at the child where the cycle was detected.
func NewBadInheritance(pos token.Position, class string) Diagnostic {
	return newf(BadInheritance, pos, "illegal class inheritance (should be a DAG)")
}

// NewBadOverride reports a method whose signature is not a subtype of
// the one it overrides.
func NewBadOverride(pos token.Position, method, class string) Diagnostic {
	return newf(BadOverride, pos, "method '%s' of 'class %s' not compatible with the overridden method", method, class)
}

// NewBadAbstractMethod reports a non-abstract class with an
// unimplemented (or self-declared) abstract method.
func NewBadAbstractMethod(pos token.Position, class string) Diagnostic {
	return newf(BadAbstractMethod, pos, "'%s' is not abstract and does not override all abstract methods", class)
}

// NewNewAbstractClass reports instantiation of an abstract class.
func NewNewAbstractClass(pos token.Position, class string) Diagnostic {
	return newf(NewAbstractClass, pos, "cannot instantiate abstract class '%s'", class)
}

// NewBadVarType reports a field or local declared void.
func NewBadVarType(pos token.Position, name string) Diagnostic {
	return newf(BadVarType, pos, "variable '%s' declared void", name)
}

// NewAssignVarVoid reports `var x = <void-expr>`.
func NewAssignVarVoid(pos token.Position, name string) Diagnostic {
	return newf(AssignVarVoid, pos, "initializer of 'var' variable '%s' has void type", name)
}

// NewBadArrElement reports an array element type of void.
func NewBadArrElement(pos token.Position) Diagnostic {
	return newf(BadArrElement, pos, "array element type must be non-void known type")
}

// NewVoidAsPara reports a void parameter in a function-type literal.
func NewVoidAsPara(pos token.Position) Diagnostic {
	return newf(VoidAsPara, pos, "void type cannot be used as parameter type")
}

// NewIncompatBinOp reports a binary operator applied to incompatible
// operand types, e.g. "incompatible operands: int + bool".
func NewIncompatBinOp(pos token.Position, op string, left, right string) Diagnostic {
	return newf(IncompatBinOp, pos, "incompatible operands: %s %s %s", left, op, right)
}

// NewIncompatUnOp reports a unary operator applied to an incompatible
// operand type.
func NewIncompatUnOp(pos token.Position, op string, operand string) Diagnostic {
	return newf(IncompatUnOp, pos, "incompatible operand: %s %s", op, operand)
}

// NewBadTestExpr reports a non-bool if/while/for condition.
func NewBadTestExpr(pos token.Position) Diagnostic {
	return newf(BadTestExpr, pos, "test expression must have bool type")
}

// NewBreakOutOfLoop reports a break statement outside any loop.
func NewBreakOutOfLoop(pos token.Position) Diagnostic {
	return newf(BreakOutOfLoop, pos, "'break' is only allowed inside a loop")
}

// NewMissingReturn reports a non-void method or lambda branch that
// falls through without returning.
func NewMissingReturn(pos token.Position) Diagnostic {
	return newf(MissingReturn, pos, "missing return statement: control reaches end of non-void block")
}

// NewBadReturnType reports a returned expression whose type is not a
// subtype of the expected result type.
func NewBadReturnType(pos token.Position, expected, actual string) Diagnostic {
	return newf(BadReturnType, pos, "incompatible return type: %s is expected but %s given", expected, actual)
}

// NewIncompatibleReturn reports a lambda whose collected return types
// have no common upper bound.
func NewIncompatibleReturn(pos token.Position) Diagnostic {
	return newf(IncompatibleReturn, pos, "incompatible return types in blocked expression")
}

// NewBadArgCount reports a call with the wrong number of arguments.
func NewBadArgCount(pos token.Position, name string, expected, given int) Diagnostic {
	return newf(BadArgCount, pos, "function '%s' expects %d argument(s) but %d given", name, expected, given)
}

// NewBadArgType reports an argument whose type is not a subtype of
// the corresponding parameter type.
func NewBadArgType(pos token.Position, index int, expected, actual string) Diagnostic {
	return newf(BadArgType, pos, "incompatible argument %d: %s given but %s expected", index, actual, expected)
}

// NewBadIndexType reports an array index expression that is not
// int-typed. Reuses the BadArgType kind: an index is, structurally,
// the sole argument to the implicit indexing operator.
func NewBadIndexType(pos token.Position, actual string) Diagnostic {
	return newf(BadArgType, pos, "array index must be int but %s given", actual)
}

// NewBadLengthArg reports `.length()` invoked with arguments.
func NewBadLengthArg(pos token.Position, given int) Diagnostic {
	return newf(BadLengthArg, pos, "function 'length' expects 0 argument(s) but %d given", given)
}

// NewNotCallable reports a call target that is not a method or
// function-typed value.
func NewNotCallable(pos token.Position, name string) Diagnostic {
	return newf(NotCallable, pos, "'%s' is not a function", name)
}

// NewNotArray reports a non-array operand where an array was
// required (e.g. the LHS of an index selection).
func NewNotArray(pos token.Position, actual string) Diagnostic {
	return newf(NotArray, pos, "%s is not an array type", actual)
}

// NewNotClass reports a non-class operand where a class instance was
// required (e.g. the operand of instanceof/cast).
func NewNotClass(pos token.Position, actual string) Diagnostic {
	return newf(NotClass, pos, "%s is not a class type", actual)
}

// NewUndeclVar reports use of an undeclared, or self-referencing,
// variable name.
func NewUndeclVar(pos token.Position, name string) Diagnostic {
	return newf(UndeclVar, pos, "undeclared variable '%s'", name)
}

// NewFieldNotFound reports an unknown member name on a receiver.
func NewFieldNotFound(pos token.Position, name, class string) Diagnostic {
	return newf(FieldNotFound, pos, "field '%s' not found in 'class %s'", name, class)
}

// NewFieldNotAccess reports a field reachable only through
// protected-style visibility rules.
func NewFieldNotAccess(pos token.Position, name, class string) Diagnostic {
	return newf(FieldNotAccess, pos, "field '%s' of 'class %s' not accessible here", name, class)
}

// NewNotClassField reports an instance member accessed through a
// class-name receiver (or an intrinsic misused, per the `.length()`
// open question resolved in DESIGN.md).
func NewNotClassField(pos token.Position, name string) Diagnostic {
	return newf(NotClassField, pos, "'%s' is not accessible through a class name", name)
}

// NewAssignMethod reports an assignment whose target names a method.
func NewAssignMethod(pos token.Position, name string) Diagnostic {
	return newf(AssignMethod, pos, "cannot assign to method '%s'", name)
}

// NewAssignCapture reports an assignment to a symbol captured by the
// enclosing lambda.
func NewAssignCapture(pos token.Position, name string) Diagnostic {
	return newf(AssignCapture, pos, "cannot assign to variable '%s' captured from an enclosing scope", name)
}

// NewThisInStaticFunc reports a `this` reference inside a static
// method.
func NewThisInStaticFunc(pos token.Position) Diagnostic {
	return newf(ThisInStaticFunc, pos, "can not use 'this' in static function")
}

// NewRefNonStatic reports an instance member referenced from a static
// context without an explicit receiver.
func NewRefNonStatic(pos token.Position, name string) Diagnostic {
	return newf(RefNonStatic, pos, "can not reference a non-static field '%s' from static method", name)
}

// NewNoMainClass reports the absence of a valid program entry point.
func NewNoMainClass(pos token.Position) Diagnostic {
	return newf(NoMainClass, pos, "no legal Main class named 'Main' was found")
}

// NewBadCountArgLambda reports an immediately-invoked lambda called
// with the wrong number of arguments.
func NewBadCountArgLambda(pos token.Position, expected, given int) Diagnostic {
	return newf(BadCountArgLambda, pos, "lambda expression expects %d argument(s) but %d given", expected, given)
}

// NewBadNewArrayLength reports `new T[n]` where n is not int-typed.
func NewBadNewArrayLength(pos token.Position) Diagnostic {
	return newf(BadNewArrayLength, pos, "new array length must be an integer")
}
