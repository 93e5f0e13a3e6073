package semantic_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/decafteam/decafc/internal/diag"
	"github.com/decafteam/decafc/internal/fixtures"
	"github.com/decafteam/decafc/internal/semantic"
	"github.com/decafteam/decafc/internal/semantic/naming"
	"github.com/decafteam/decafc/internal/semantic/typing"
)

// TestFixtureDiagnostics runs the whole fixture catalog through the
// two-phase driver and snapshots the rendered diagnostic text.
func TestFixtureDiagnostics(t *testing.T) {
	for _, name := range fixtures.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			program, ok := fixtures.Get(name)
			if !ok {
				t.Fatalf("unknown fixture %q", name)
			}

			sink := diag.NewSink()
			driver := semantic.NewDriver(naming.New(), typing.New())
			if err := driver.Run(program, semantic.TypeCheck, sink); err != nil {
				t.Fatalf("driver error: %v", err)
			}

			lines := sink.Render()
			if len(lines) == 0 {
				lines = []string{"<no diagnostics>"}
			}
			snaps.MatchSnapshot(t, lines)
		})
	}
}
