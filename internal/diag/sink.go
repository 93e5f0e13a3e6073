package diag

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sink is the append-only diagnostic collector of section 4.3.
// Emission never throws; Add always succeeds so callers can report
// multiple diagnostics per statement.
type Sink struct {
	items []Diagnostic
}

// NewSink creates an empty sink.
func NewSink() *Sink { return &Sink{} }

// Add appends d to the sink.
func (s *Sink) Add(d Diagnostic) {
	s.items = append(s.items, d)
}

// HasErrors reports whether any diagnostic has been recorded. The
// typing pass must not run when Naming's sink reports true (section 6
// driver contract).
func (s *Sink) HasErrors() bool {
	return len(s.items) > 0
}

// Len returns the number of recorded diagnostics.
func (s *Sink) Len() int { return len(s.items) }

var collator = collate.New(language.Und)

// Sorted returns the diagnostics ordered by source position, stable
// under ties broken by message text via a locale-independent
// collator (section 5: "a stable sort by (line, column) on
// finalization normalizes cross-class ordering").
func (s *Sink) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line < b.Pos.Line
		}
		if a.Pos.Column != b.Pos.Column {
			return a.Pos.Column < b.Pos.Column
		}
		return collator.CompareString(a.Message, b.Message) < 0
	})
	return out
}

// Render formats every diagnostic, in sorted order, as one line each
// in the fixed "*** Error at (L,C): <message>" format.
func (s *Sink) Render() []string {
	sorted := s.Sorted()
	lines := make([]string, len(sorted))
	for i, d := range sorted {
		lines[i] = d.Error()
	}
	return lines
}
