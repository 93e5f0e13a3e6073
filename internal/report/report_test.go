package report

import (
	"testing"

	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/token"
)

func TestBuildEmptySinkIsOK(t *testing.T) {
	doc, err := Build(diag.NewSink())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Parse(doc)
	if !got.OK {
		t.Error("expected OK true for an empty sink")
	}
	if len(got.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(got.Diagnostics))
	}
}

func TestBuildReflectsSortedOrder(t *testing.T) {
	s := diag.NewSink()
	s.Add(diag.NewUndeclVar(token.Position{Line: 3, Column: 5}, "y"))
	s.Add(diag.NewBreakOutOfLoop(token.Position{Line: 1, Column: 2}))

	doc, err := Build(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Parse(doc)
	if got.OK {
		t.Error("expected OK false when diagnostics are present")
	}
	if len(got.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(got.Diagnostics))
	}
	if got.Diagnostics[0].Line != 1 || got.Diagnostics[0].Column != 2 {
		t.Errorf("expected (1,2) first, got (%d,%d)", got.Diagnostics[0].Line, got.Diagnostics[0].Column)
	}
	if got.Diagnostics[0].Kind != "BreakOutOfLoop" {
		t.Errorf("got kind %q, want BreakOutOfLoop", got.Diagnostics[0].Kind)
	}
	if got.Diagnostics[1].Kind != "UndeclVar" {
		t.Errorf("got kind %q, want UndeclVar", got.Diagnostics[1].Kind)
	}
	if got.Diagnostics[1].Message != "undeclared variable 'y'" {
		t.Errorf("got message %q", got.Diagnostics[1].Message)
	}
}
