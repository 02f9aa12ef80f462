package fuzztests

import (
	"testing"

	"unimath/internal/config"
	"unimath/internal/diag"
	"unimath/internal/engine"
	"unimath/internal/source"
)

func newEngine(f *testing.F) *engine.Engine {
	f.Helper()
	cfg := config.Default()
	cfg.Triggers = []string{`\`, "."}
	eng, err := engine.New(cfg, engine.Options{})
	if err != nil {
		f.Fatalf("engine.New: %v", err)
	}
	return eng
}

func FuzzIncrementalUpdate(f *testing.F) {
	addDocumentSeeds(f)
	eng := newEngine(f)
	f.Fuzz(func(t *testing.T, text string, at, length uint16, insert string) {
		if !usable(text, insert) {
			t.Skip()
		}
		before := source.NewDocument(text)
		prev := eng.Scan(before)

		from := int(at) % (len(text) + 1)
		to := min(from+int(length), len(text))
		r := source.Range{Start: before.PositionAt(from), End: before.PositionAt(to)}
		after, edit := before.Apply(source.ContentChange{Range: &r, Text: insert})

		got := eng.Update(prev, after, []source.LineEdit{edit})
		want := eng.Scan(after)
		if len(got) != len(want) {
			t.Fatalf("incremental %d diagnostics, rescan %d\ngot:  %+v\nwant: %+v", len(got), len(want), got, want)
		}
		for i := range want {
			if !got[i].Equal(want[i]) {
				t.Fatalf("diagnostic %d differs\ngot:  %+v\nwant: %+v", i, got[i], want[i])
			}
		}
	})
}

func FuzzScanFixes(f *testing.F) {
	addDocumentSeeds(f)
	eng := newEngine(f)
	f.Fuzz(func(t *testing.T, text string, _, _ uint16, _ string) {
		if !usable(text) {
			t.Skip()
		}
		doc := source.NewDocument(text)
		for _, d := range eng.Scan(doc) {
			if d.Code != diag.CodeConvertible {
				t.Fatalf("unexpected code %q", d.Code)
			}
			got, err := doc.Slice(d.Range)
			if err != nil {
				t.Fatalf("diagnostic range %v out of document: %v", d.Range, err)
			}
			if got != d.Text {
				t.Fatalf("diagnostic text %q does not match document %q", d.Text, got)
			}
			if len(eng.Actions([]diag.Diagnostic{d}, d.Range)) != len(d.Conversions) {
				t.Fatalf("expected one action per conversion for %+v", d)
			}
		}
	})
}
