// Package report builds a JSON rendering of a diagnostic sink for
// editor and tooling consumption, as an alternative to the fixed
// "*** Error at (L,C): <message>" text form.
package report

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/decafteam/decafc/internal/diag"
)

// Document is the top-level shape of a rendered report: an overall
// success flag plus the sorted diagnostic list.
type Document struct {
	OK          bool
	Diagnostics []Entry
}

// Entry is one diagnostic, broken into addressable fields rather than
// the single rendered message string.
type Entry struct {
	Kind    string
	Line    int
	Column  int
	Message string
}

// Build renders sink's sorted diagnostics as a JSON document:
//
//	{"ok": bool, "diagnostics": [{"kind": "...", "line": N, "column": N, "message": "..."}]}
//
// The document is assembled incrementally with sjson, then re-read
// with gjson to confirm the array length and field shape survived the
// round trip before Build returns it.
func Build(sink *diag.Sink) (string, error) {
	sorted := sink.Sorted()

	doc := `{"ok":true,"diagnostics":[]}`
	var err error
	if len(sorted) > 0 {
		doc, err = sjson.Set(doc, "ok", false)
		if err != nil {
			return "", err
		}
	}

	for i, d := range sorted {
		prefix := fmt.Sprintf("diagnostics.%d.", i)
		doc, err = sjson.Set(doc, prefix+"kind", d.Kind.String())
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+"line", d.Pos.Line)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+"column", d.Pos.Column)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+"message", d.Message)
		if err != nil {
			return "", err
		}
	}

	result := gjson.Get(doc, "diagnostics")
	if !result.IsArray() {
		return "", fmt.Errorf("report: built document has no diagnostics array")
	}
	if len(result.Array()) != len(sorted) {
		return "", fmt.Errorf("report: built %d diagnostic entries, want %d", len(result.Array()), len(sorted))
	}
	for i, e := range result.Array() {
		for _, field := range []string{"kind", "line", "column", "message"} {
			if !e.Get(field).Exists() {
				return "", fmt.Errorf("report: diagnostic entry %d has no %q field", i, field)
			}
		}
	}

	return doc, nil
}

// Parse decodes a document built by Build back into a Document. It is
// used by tests and by tooling that wants typed access rather than
// raw JSON.
func Parse(doc string) Document {
	out := Document{OK: gjson.Get(doc, "ok").Bool()}
	for _, e := range gjson.Get(doc, "diagnostics").Array() {
		out.Diagnostics = append(out.Diagnostics, Entry{
			Kind:    e.Get("kind").String(),
			Line:    int(e.Get("line").Int()),
			Column:  int(e.Get("column").Int()),
			Message: e.Get("message").String(),
		})
	}
	return out
}
