package diag

import (
	"testing"

	"github.com/decafteam/decafc/internal/token"
)

func TestRenderFixedFormat(t *testing.T) {
	s := NewSink()
	s.Add(NewIncompatBinOp(token.Position{Line: 1, Column: 38}, "+", "int", "bool"))

	lines := s.Render()
	want := "*** Error at (1,38): incompatible operands: int + bool"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("got %v, want [%q]", lines, want)
	}
}

func TestSortedOrdersByPosition(t *testing.T) {
	s := NewSink()
	s.Add(NewUndeclVar(token.Position{Line: 3, Column: 5}, "y"))
	s.Add(NewUndeclVar(token.Position{Line: 1, Column: 9}, "x"))
	s.Add(NewBreakOutOfLoop(token.Position{Line: 1, Column: 2}))

	sorted := s.Sorted()
	if sorted[0].Pos.Line != 1 || sorted[0].Pos.Column != 2 {
		t.Fatalf("expected (1,2) first, got %v", sorted[0].Pos)
	}
	if sorted[1].Pos.Column != 9 {
		t.Fatalf("expected (1,9) second, got %v", sorted[1].Pos)
	}
	if sorted[2].Pos.Line != 3 {
		t.Fatalf("expected (3,5) last, got %v", sorted[2].Pos)
	}
}

func TestHasErrorsEmptySink(t *testing.T) {
	s := NewSink()
	if s.HasErrors() {
		t.Error("empty sink should report no errors")
	}
	s.Add(NewNoMainClass(token.Position{}))
	if !s.HasErrors() {
		t.Error("sink with one diagnostic should report errors")
	}
}

func TestBadAbstractMethodMessage(t *testing.T) {
	d := NewBadAbstractMethod(token.Position{Line: 1, Column: 1}, "B")
	want := "'B' is not abstract and does not override all abstract methods"
	if d.Message != want {
		t.Fatalf("got %q, want %q", d.Message, want)
	}
}

func TestBadArgCountMessage(t *testing.T) {
	d := NewBadArgCount(token.Position{Line: 1, Column: 1}, "f", 0, 1)
	want := "function 'f' expects 0 argument(s) but 1 given"
	if d.Message != want {
		t.Fatalf("got %q, want %q", d.Message, want)
	}
}

func TestFieldNotAccessMessage(t *testing.T) {
	d := NewFieldNotAccess(token.Position{Line: 1, Column: 1}, "x", "C")
	want := "field 'x' of 'class C' not accessible here"
	if d.Message != want {
		t.Fatalf("got %q, want %q", d.Message, want)
	}
}

func TestUndeclVarMessage(t *testing.T) {
	d := NewUndeclVar(token.Position{Line: 1, Column: 1}, "x")
	want := "undeclared variable 'x'"
	if d.Message != want {
		t.Fatalf("got %q, want %q", d.Message, want)
	}
}
