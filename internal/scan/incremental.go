package scan

import (
	"slices"

	"unimath/internal/diag"
	"unimath/internal/source"
)

// Update brings prev, the diagnostics of the document before edits, in line
// with src, the document after them. Diagnostics above an edit are kept,
// those on edited lines are dropped, those below are shifted by the line
// delta, and only the edited lines are rescanned. The result equals
// Scan(src). With no edits prev is returned as is.
func (s *Scanner) Update(prev []diag.Diagnostic, src source.TextSource, edits []source.LineEdit) []diag.Diagnostic {
	if len(edits) == 0 {
		return prev
	}
	kept := slices.Clone(prev)
	for _, e := range edits {
		kept = shiftDiagnostics(kept, e)
	}
	dirty := AffectedLines(edits)

	out := kept[:0:0]
	for _, d := range kept {
		if _, found := slices.BinarySearch(dirty, d.Line()); !found {
			out = append(out, d)
		}
	}
	rep := &diag.SliceReporter{Items: out}
	for _, line := range dirty {
		if line < 0 || line >= src.LineCount() {
			continue
		}
		text, err := src.Line(line)
		if err != nil {
			continue
		}
		s.ScanLine(line, text, rep)
	}
	diag.Sort(rep.Items)
	return rep.Items
}

// AffectedLines lists, in final coordinates, the lines Update rescans.
func AffectedLines(edits []source.LineEdit) []int {
	var dirty []int
	for _, e := range edits {
		dirty = shiftLines(dirty, e)
		for line := e.StartLine; line <= e.NewEndLine; line++ {
			dirty = append(dirty, line)
		}
	}
	slices.Sort(dirty)
	return slices.Compact(dirty)
}

func shiftDiagnostics(items []diag.Diagnostic, e source.LineEdit) []diag.Diagnostic {
	out := items[:0]
	for _, d := range items {
		switch line := d.Line(); {
		case line < e.StartLine:
			out = append(out, d)
		case line > e.OldEndLine:
			d.Range = d.Range.ShiftLines(e.Delta())
			out = append(out, d)
		}
	}
	return out
}

func shiftLines(lines []int, e source.LineEdit) []int {
	out := lines[:0]
	for _, line := range lines {
		switch {
		case line < e.StartLine:
			out = append(out, line)
		case line > e.OldEndLine:
			out = append(out, line+e.Delta())
		}
	}
	return out
}
