package fuzztests

import (
	"testing"

	"unimath/internal/engine"
	"unimath/internal/source"
)

func FuzzCommit(f *testing.F) {
	addDocumentSeeds(f)
	eng := newEngine(f)
	f.Fuzz(func(t *testing.T, text string, at, other uint16, key string) {
		if !usable(text) {
			t.Skip()
		}
		doc := source.NewDocument(text)
		cursors := []source.Position{
			doc.PositionAt(int(at) % (len(text) + 1)),
			doc.PositionAt(int(other) % (len(text) + 1)),
			{Line: int(at), Character: int(other)}, // possibly out of range
		}
		res := eng.Commit(doc, cursors, key)
		if key == engine.SpaceKey && !res.Propagate {
			t.Fatal("space must always propagate")
		}
		if len(res.Edits) == 0 && !res.Propagate {
			t.Fatal("a commit without edits must propagate")
		}
		for _, e := range res.Edits {
			if _, err := doc.Slice(e.Delete); err != nil {
				t.Fatalf("edit range %v outside the document: %v", e.Delete, err)
			}
			if e.At != e.Delete.Start {
				t.Fatalf("insert position %v differs from delete start %v", e.At, e.Delete.Start)
			}
		}
		if _, err := doc.ApplyEdits(res.TextEdits()); err != nil {
			t.Fatalf("commit edits do not apply: %v", err)
		}
		for _, c := range cursors {
			eng.Complete(doc, c)
		}
	})
}
