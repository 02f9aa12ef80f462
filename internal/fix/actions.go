package fix

import (
	"fmt"

	"unimath/internal/diag"
	"unimath/internal/source"
)

// Action is a quick-fix: replace Target with Replacement.
type Action struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Replacement string       `json:"replacement"`
	Target      source.Range `json:"target"`
	Preferred   bool         `json:"preferred,omitempty"`
}

// Actions returns one action per distinct conversion of d. The first
// conversion is the preferred one.
func Actions(d diag.Diagnostic) []Action {
	if len(d.Conversions) == 0 {
		return nil
	}
	out := make([]Action, 0, len(d.Conversions))
	seen := make(map[string]bool, len(d.Conversions))
	for _, conv := range d.Conversions {
		if conv == "" || seen[conv] {
			continue
		}
		seen[conv] = true
		out = append(out, Action{
			ID:          actionID(d.Range, len(out)),
			Title:       fmt.Sprintf("Convert to %s", conv),
			Replacement: conv,
			Target:      d.Range,
			Preferred:   len(out) == 0,
		})
	}
	return out
}

// ActionsAt returns the actions of every diagnostic carrying code that
// touches r, in diagnostic order.
func ActionsAt(items []diag.Diagnostic, code diag.Code, r source.Range) []Action {
	var out []Action
	for _, d := range items {
		if d.Code != code {
			continue
		}
		if !d.Range.Overlaps(r) && !d.Range.Contains(r.Start) {
			continue
		}
		out = append(out, Actions(d)...)
	}
	return out
}

// actionID is stable for a given range and conversion index, e.g. "3:5-11#0".
func actionID(r source.Range, idx int) string {
	return fmt.Sprintf("%d:%d-%d#%d", r.Start.Line+1, r.Start.Character+1, r.End.Character+1, idx)
}
