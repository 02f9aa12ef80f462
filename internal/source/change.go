package source

import (
	"fmt"
	"sort"
	"strings"
)

// ContentChange is an edit reported by a host. A nil Range replaces the
// whole document.
type ContentChange struct {
	Range *Range
	Text  string
}

// LineEdit summarises a change in line terms: lines StartLine..OldEndLine of
// the old document became StartLine..NewEndLine of the new one.
type LineEdit struct {
	StartLine  int
	OldEndLine int
	NewEndLine int
}

// Delta is the number of lines the edit added (negative when removed).
func (e LineEdit) Delta() int {
	return e.NewEndLine - e.OldEndLine
}

// Apply returns the document produced by ch together with its line summary.
func (d *Document) Apply(ch ContentChange) (*Document, LineEdit) {
	if ch.Range == nil {
		next := NewDocument(ch.Text)
		return next, LineEdit{
			StartLine:  0,
			OldEndLine: d.LineCount() - 1,
			NewEndLine: next.LineCount() - 1,
		}
	}
	from := d.clampOffset(ch.Range.Start)
	to := d.clampOffset(ch.Range.End)
	if to < from {
		from, to = to, from
	}
	startLine := d.PositionAt(from).Line
	edit := LineEdit{
		StartLine:  startLine,
		OldEndLine: d.PositionAt(to).Line,
		NewEndLine: startLine + strings.Count(ch.Text, "\n"),
	}
	return NewDocument(d.text[:from] + ch.Text + d.text[to:]), edit
}

// ApplyAll applies changes in order.
func (d *Document) ApplyAll(changes []ContentChange) (*Document, []LineEdit) {
	edits := make([]LineEdit, 0, len(changes))
	cur := d
	for _, ch := range changes {
		var e LineEdit
		cur, e = cur.Apply(ch)
		edits = append(edits, e)
	}
	return cur, edits
}

// TextEdit replaces the text in Range with NewText.
type TextEdit struct {
	Range   Range
	NewText string
}

// ApplyEdits applies non-overlapping edits to the document. Edits are
// applied back to front so earlier ranges stay valid.
func (d *Document) ApplyEdits(edits []TextEdit) (string, error) {
	type span struct {
		from, to int
		text     string
	}
	spans := make([]span, 0, len(edits))
	for _, e := range edits {
		from, err := d.Offset(e.Range.Start)
		if err != nil {
			return "", err
		}
		to, err := d.Offset(e.Range.End)
		if err != nil {
			return "", err
		}
		if to < from {
			return "", fmt.Errorf("edit %s is inverted: %w", e.Range, ErrOutOfRange)
		}
		spans = append(spans, span{from: from, to: to, text: e.NewText})
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].from > spans[j].from
	})
	text := d.text
	limit := len(text)
	for _, s := range spans {
		if s.to > limit {
			return "", fmt.Errorf("edit at byte %d: %w", s.from, ErrOverlap)
		}
		text = text[:s.from] + s.text + text[s.to:]
		limit = s.from
	}
	return text, nil
}
