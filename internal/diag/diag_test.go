package diag

import (
	"testing"

	"unimath/internal/source"
)

func TestNewConvertible(t *testing.T) {
	conv := []string{"α", "∝"}
	d := NewConvertible(CodeConvertible, source.LineRange(1, 2, 8), `\alpha`, conv)
	conv[0] = "changed"
	if d.Conversions[0] != "α" {
		t.Fatal("conversions were not copied")
	}
	if d.Severity != SevHint || d.Code != CodeConvertible {
		t.Errorf("diagnostic = %+v", d)
	}
	if want := `"\\alpha" can be converted to α, ∝`; d.Message != want {
		t.Errorf("Message = %q, want %q", d.Message, want)
	}
	if d.Line() != 1 {
		t.Errorf("Line = %d", d.Line())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevHint, CodeConvertible, source.LineRange(2, 0, 3), "c"))
	b.Add(New(SevHint, CodeConvertible, source.LineRange(0, 4, 6), "b"))
	b.Add(New(SevWarning, CodeLoadFile, source.LineRange(0, 4, 6), "a"))
	b.Add(New(SevHint, CodeConvertible, source.LineRange(0, 4, 6), "dup"))
	b.Sort()
	b.Dedup()

	got := b.Items()
	if len(got) != 3 {
		t.Fatalf("Len = %d, want 3: %+v", len(got), got)
	}
	if got[0].Message != "a" || got[1].Message != "b" || got[2].Message != "c" {
		t.Errorf("order = %q %q %q", got[0].Message, got[1].Message, got[2].Message)
	}
	if !b.HasWarnings() || b.HasErrors() {
		t.Errorf("HasWarnings/HasErrors wrong")
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(1)
	if !b.Add(Diagnostic{}) {
		t.Fatal("first Add failed")
	}
	if b.Add(Diagnostic{}) {
		t.Fatal("Add past the limit succeeded")
	}
	other := NewBag(0)
	other.Add(Diagnostic{Message: "x"})
	b.Merge(other)
	if b.Len() != 2 || b.Cap() != 2 {
		t.Fatalf("after Merge Len=%d Cap=%d", b.Len(), b.Cap())
	}
}

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	s.Set("file:///b.tex", nil)
	s.Set("file:///a.tex", []Diagnostic{{Message: "x"}})
	if got := s.URIs(); len(got) != 2 || got[0] != "file:///a.tex" {
		t.Fatalf("URIs = %v", got)
	}
	items, ok := s.Get("file:///b.tex")
	if !ok || items == nil || len(items) != 0 {
		t.Fatalf("Get(b) = %v, %v", items, ok)
	}
	s.Close("file:///a.tex")
	if _, ok := s.Get("file:///a.tex"); ok {
		t.Fatal("Close kept diagnostics")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestFormatShort(t *testing.T) {
	items := []Diagnostic{
		New(SevHint, CodeConvertible, source.LineRange(3, 0, 2), "second\nline"),
		New(SevHint, CodeConvertible, source.LineRange(0, 4, 6), "first"),
	}
	want := "hint unicode-math-input.convertible-symbol notes.tex:1:5 first\n" +
		"hint unicode-math-input.convertible-symbol notes.tex:4:1 second line"
	if got := FormatShort("notes.tex", items); got != want {
		t.Fatalf("FormatShort:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
	if FormatShort("x", nil) != "" {
		t.Fatal("empty input must render nothing")
	}
}

func TestParseSeverity(t *testing.T) {
	for _, sev := range []Severity{SevHint, SevInfo, SevWarning, SevError} {
		got, err := ParseSeverity(sev.String())
		if err != nil || got != sev {
			t.Errorf("ParseSeverity(%q) = %v, %v", sev.String(), got, err)
		}
	}
	if _, err := ParseSeverity("loud"); err == nil {
		t.Error("expected error")
	}
}
