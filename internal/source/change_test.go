package source

import (
	"errors"
	"testing"
)

func rng(sl, sc, el, ec int) *Range {
	return &Range{Start: Position{sl, sc}, End: Position{el, ec}}
}

func TestApplyChange(t *testing.T) {
	base := NewDocument("abc\ndef\nghi")
	tests := []struct {
		name     string
		change   ContentChange
		wantText string
		wantEdit LineEdit
	}{
		{
			name:     "insert within line",
			change:   ContentChange{Range: rng(1, 1, 1, 1), Text: "XY"},
			wantText: "abc\ndXYef\nghi",
			wantEdit: LineEdit{StartLine: 1, OldEndLine: 1, NewEndLine: 1},
		},
		{
			name:     "split line",
			change:   ContentChange{Range: rng(1, 0, 1, 3), Text: "x\ny"},
			wantText: "abc\nx\ny\nghi",
			wantEdit: LineEdit{StartLine: 1, OldEndLine: 1, NewEndLine: 2},
		},
		{
			name:     "join lines",
			change:   ContentChange{Range: rng(0, 3, 2, 0), Text: " "},
			wantText: "abc ghi",
			wantEdit: LineEdit{StartLine: 0, OldEndLine: 2, NewEndLine: 0},
		},
		{
			name:     "full replace",
			change:   ContentChange{Text: "one\ntwo"},
			wantText: "one\ntwo",
			wantEdit: LineEdit{StartLine: 0, OldEndLine: 2, NewEndLine: 1},
		},
		{
			name:     "range past end is clamped",
			change:   ContentChange{Range: rng(2, 1, 9, 9), Text: "!"},
			wantText: "abc\ndef\ng!",
			wantEdit: LineEdit{StartLine: 2, OldEndLine: 2, NewEndLine: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, edit := base.Apply(tt.change)
			if doc.Text() != tt.wantText {
				t.Fatalf("text = %q, want %q", doc.Text(), tt.wantText)
			}
			if edit != tt.wantEdit {
				t.Errorf("edit = %+v, want %+v", edit, tt.wantEdit)
			}
		})
	}
	if base.Text() != "abc\ndef\nghi" {
		t.Fatalf("Apply mutated the original document")
	}
}

func TestApplyAll(t *testing.T) {
	doc, edits := NewDocument("a\nb").ApplyAll([]ContentChange{
		{Range: rng(0, 1, 0, 1), Text: "\n"},
		{Range: rng(2, 0, 2, 1), Text: "c"},
	})
	if doc.Text() != "a\n\nc" {
		t.Fatalf("text = %q", doc.Text())
	}
	if len(edits) != 2 || edits[0].Delta() != 1 || edits[1].Delta() != 0 {
		t.Fatalf("edits = %+v", edits)
	}
}

func TestApplyEdits(t *testing.T) {
	doc := NewDocument("\\alpha + \\beta\n\\gamma")
	got, err := doc.ApplyEdits([]TextEdit{
		{Range: LineRange(0, 0, 6), NewText: "α"},
		{Range: LineRange(1, 0, 6), NewText: "γ"},
		{Range: LineRange(0, 9, 14), NewText: "β"},
	})
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	if got != "α + β\nγ" {
		t.Errorf("ApplyEdits = %q", got)
	}

	_, err = doc.ApplyEdits([]TextEdit{
		{Range: LineRange(0, 0, 6), NewText: "α"},
		{Range: LineRange(0, 3, 8), NewText: "x"},
	})
	if !errors.Is(err, ErrOverlap) || errors.Is(err, ErrOutOfRange) {
		t.Errorf("overlapping edits err = %v, want ErrOverlap only", err)
	}

	_, err = doc.ApplyEdits([]TextEdit{{Range: LineRange(0, 4, 2), NewText: "x"}})
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("inverted edit err = %v, want ErrOutOfRange", err)
	}
}
