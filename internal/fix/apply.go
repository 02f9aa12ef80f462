package fix

import (
	"sort"

	"unimath/internal/source"
)

// TextEdit replaces Range with NewText. A non-empty OldText guards the edit:
// it is skipped unless the current text under Range equals it.
type TextEdit struct {
	Range   source.Range
	NewText string
	OldText string
}

// SkippedEdit is an edit Apply refused, with the reason.
type SkippedEdit struct {
	Edit   TextEdit
	Reason string
}

// Apply applies the edits that are in range, match their guard and do not
// overlap an earlier accepted edit. Edits are accepted in document order and
// written bottom-up.
func Apply(text string, edits []TextEdit) (string, []SkippedEdit) {
	doc := source.NewDocument(text)
	ordered := make([]TextEdit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Range.Start == ordered[j].Range.Start {
			return ordered[i].Range.End.Before(ordered[j].Range.End)
		}
		return ordered[i].Range.Start.Before(ordered[j].Range.Start)
	})

	var accepted []source.TextEdit
	var acceptedRanges []source.Range
	var acceptedEdits []TextEdit
	var skipped []SkippedEdit
	for _, e := range ordered {
		current, err := doc.Slice(e.Range)
		if err != nil {
			skipped = append(skipped, SkippedEdit{Edit: e, Reason: "edit range out of range"})
			continue
		}
		if e.OldText != "" && current != e.OldText {
			skipped = append(skipped, SkippedEdit{Edit: e, Reason: "existing text does not match expected content"})
			continue
		}
		if conflictsWithExisting(acceptedRanges, e.Range) {
			skipped = append(skipped, SkippedEdit{Edit: e, Reason: "conflicts with previously applied edits"})
			continue
		}
		accepted = append(accepted, source.TextEdit{Range: e.Range, NewText: e.NewText})
		acceptedRanges = append(acceptedRanges, e.Range)
		acceptedEdits = append(acceptedEdits, e)
	}
	if len(accepted) == 0 {
		return text, skipped
	}
	out, err := doc.ApplyEdits(accepted)
	if err != nil {
		for _, e := range acceptedEdits {
			skipped = append(skipped, SkippedEdit{Edit: e, Reason: err.Error()})
		}
		return text, skipped
	}
	return out, skipped
}

func conflictsWithExisting(existing []source.Range, r source.Range) bool {
	for _, prev := range existing {
		if rangesConflict(prev, r) {
			return true
		}
	}
	return false
}

// rangesConflict treats ranges as half-open. Two insertions never conflict;
// an insertion conflicts with a range that strictly contains its position.
func rangesConflict(a, b source.Range) bool {
	switch {
	case a.Empty() && b.Empty():
		return false
	case a.Empty():
		return !a.Start.Before(b.Start) && a.Start.Before(b.End)
	case b.Empty():
		return !b.Start.Before(a.Start) && b.Start.Before(a.End)
	}
	return a.Overlaps(b)
}
