package types

import "testing"

func TestSubtypeOfReflexive(t *testing.T) {
	if !Int().SubtypeOf(Int()) {
		t.Error("int should be a subtype of itself")
	}
}

func TestSubtypeOfClassChain(t *testing.T) {
	a := Class("A", nil)
	b := Class("B", a)
	c := Class("C", b)

	if !c.SubtypeOf(a) {
		t.Error("C should be a subtype of its grandparent A")
	}
	if a.SubtypeOf(c) {
		t.Error("A should not be a subtype of its descendant C")
	}
	if !Null().SubtypeOf(a) {
		t.Error("null should be a subtype of any class")
	}
}

func TestSubtypeOfFunctionVariance(t *testing.T) {
	a := Class("A", nil)
	b := Class("B", a)

	// f : (A) -> B, g : (A) -> A : f <: g requires A<:A (ok) and B<:A (ok)
	f := Fun(b, a)
	g := Fun(a, a)
	if !f.SubtypeOf(g) {
		t.Error("covariant result should make f a subtype of g")
	}

	// contravariant parameter: f' : (B) -> B is NOT a subtype of g' : (A) -> B,
	// since that direction would require A <: B, which is false.
	fPrime := Fun(b, b)
	gPrime := Fun(b, a)
	if fPrime.SubtypeOf(gPrime) {
		t.Error("fPrime should not be a subtype of gPrime: A is not <: B")
	}
	// the reverse holds: g' : (A) -> B <: f' : (B) -> B, since B <: A.
	if !gPrime.SubtypeOf(fPrime) {
		t.Error("gPrime should be a subtype of fPrime: B <: A holds for the contravariant parameter")
	}
}

func TestErrorAbsorbing(t *testing.T) {
	if !ErrorType().SubtypeOf(Int()) || !Int().SubtypeOf(ErrorType()) {
		t.Error("error must be subtype and supertype of everything")
	}
}

func TestJoinBaseTypes(t *testing.T) {
	if j := Join([]*Type{Int(), Int()}); !Eq(j, Int()) {
		t.Errorf("join of equal ints should be int, got %s", j)
	}
	if j := Join([]*Type{Int(), Bool()}); j.Kind != KError {
		t.Errorf("join of int and bool should be error, got %s", j)
	}
}

func TestJoinClasses(t *testing.T) {
	a := Class("A", nil)
	b := Class("B", a)
	c := Class("C", a)

	j := Join([]*Type{b, c})
	if !Eq(j, a) {
		t.Errorf("join of siblings B and C should be their common parent A, got %s", j)
	}

	j2 := Join([]*Type{b, Null()})
	if !Eq(j2, b) {
		t.Errorf("join of B and null should be B, got %s", j2)
	}
}

func TestMeetClasses(t *testing.T) {
	a := Class("A", nil)
	b := Class("B", a)

	m := Meet([]*Type{a, b})
	if !Eq(m, b) {
		t.Errorf("meet of A and B should be B (the subtype of both), got %s", m)
	}

	c := Class("C", a)
	m2 := Meet([]*Type{b, c})
	if m2.Kind != KError {
		t.Errorf("meet of unrelated siblings should be error, got %s", m2)
	}
}

func TestJoinFunctionTypes(t *testing.T) {
	a := Class("A", nil)
	b := Class("B", a)

	// join of (A)->B and (A)->B is itself
	f1 := Fun(b, a)
	f2 := Fun(b, a)
	j := Join([]*Type{f1, f2})
	if !Eq(j, f1) {
		t.Errorf("join of identical function types should equal them, got %s", j)
	}

	// join of (A)->B and (A)->A: result join(B,A) = A; params meet(A,A) = A
	f3 := Fun(a, a)
	j2 := Join([]*Type{f1, f3})
	want := Fun(a, a)
	if !Eq(j2, want) {
		t.Errorf("join mismatch: got %s want %s", j2, want)
	}
}

func TestPrinting(t *testing.T) {
	arr := Array(Int())
	if arr.String() != "int[]" {
		t.Errorf("array printing: got %s", arr.String())
	}
	fn := Fun(Bool(), Int(), Str())
	if fn.String() != "bool(int, string)" {
		t.Errorf("fun printing: got %s", fn.String())
	}
}
