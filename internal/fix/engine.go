package fix

import (
	"errors"
	"fmt"
	"sort"

	"unimath/internal/diag"
	"unimath/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines which actions ApplyDiagnostics picks.
type ApplyMode uint8

const (
	// ApplyModeOnce applies a single action: the first unambiguous one, or
	// the preferred action of the first diagnostic.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every diagnostic that has exactly one conversion.
	ApplyModeAll
	// ApplyModeID applies the action with ApplyOptions.TargetID.
	ApplyModeID
)

func (m ApplyMode) String() string {
	switch m {
	case ApplyModeOnce:
		return "once"
	case ApplyModeAll:
		return "all"
	case ApplyModeID:
		return "id"
	default:
		return "unknown"
	}
}

type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
	// Code restricts fixes to diagnostics with this code when set.
	Code diag.Code
}

// AppliedFix records a successfully applied action.
type AppliedFix struct {
	ID          string
	Title       string
	Code        diag.Code
	Message     string
	Range       source.Range
	Replacement string
}

// SkippedFix captures a skipped action with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// ApplyResult is the outcome for one document.
type ApplyResult struct {
	Applied []AppliedFix
	Skipped []SkippedFix
	Text    string
}

type candidate struct {
	diag   diag.Diagnostic
	action Action
	order  int
}

// ApplyDiagnostics selects actions from diagnostics according to opts and
// applies them to text. The returned result always carries the final text.
func ApplyDiagnostics(text string, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{
		Applied: make([]AppliedFix, 0),
		Skipped: make([]SkippedFix, 0),
		Text:    text,
	}

	candidates, buildSkips := gatherCandidates(diagnostics, opts.Code)
	result.Skipped = append(result.Skipped, buildSkips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, selectionSkips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, selectionSkips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	edits := make([]TextEdit, len(selected))
	for i, cand := range selected {
		edits[i] = TextEdit{
			Range:   cand.action.Target,
			NewText: cand.action.Replacement,
			OldText: cand.diag.Text,
		}
	}
	out, skippedEdits := Apply(text, edits)
	rejected := make(map[source.Range]string, len(skippedEdits))
	for _, s := range skippedEdits {
		rejected[s.Edit.Range] = s.Reason
	}
	for _, cand := range selected {
		if reason, ok := rejected[cand.action.Target]; ok {
			result.Skipped = append(result.Skipped, SkippedFix{
				ID:     cand.action.ID,
				Title:  cand.action.Title,
				Reason: reason,
			})
			continue
		}
		result.Applied = append(result.Applied, AppliedFix{
			ID:          cand.action.ID,
			Title:       cand.action.Title,
			Code:        cand.diag.Code,
			Message:     cand.diag.Message,
			Range:       cand.action.Target,
			Replacement: cand.action.Replacement,
		})
	}
	result.Text = out
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

func gatherCandidates(diagnostics []diag.Diagnostic, code diag.Code) ([]candidate, []SkippedFix) {
	cands := make([]candidate, 0, len(diagnostics))
	skips := make([]SkippedFix, 0)
	seen := make(map[string]bool)
	order := 0
	for _, d := range diagnostics {
		if code != "" && d.Code != code {
			continue
		}
		actions := Actions(d)
		if len(actions) == 0 {
			skips = append(skips, SkippedFix{Title: d.Message, Reason: "diagnostic has no conversions"})
			continue
		}
		for _, a := range actions {
			if seen[a.ID] {
				skips = append(skips, SkippedFix{ID: a.ID, Title: a.Title, Reason: "duplicate fix id"})
				continue
			}
			seen[a.ID] = true
			cands = append(cands, candidate{diag: d, action: a, order: order})
			order++
		}
	}
	return cands, skips
}

// sortCandidates orders by range, insertion order, code, preference and id.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := candidates[i].action.Target, candidates[j].action.Target
		if ri.Start != rj.Start {
			return ri.Start.Before(rj.Start)
		}
		if ri.End != rj.End {
			return ri.End.Before(rj.End)
		}
		if candidates[i].order != candidates[j].order {
			return candidates[i].order < candidates[j].order
		}
		if candidates[i].diag.Code != candidates[j].diag.Code {
			return candidates[i].diag.Code < candidates[j].diag.Code
		}
		if candidates[i].action.Preferred != candidates[j].action.Preferred {
			return candidates[i].action.Preferred
		}
		return candidates[i].action.ID < candidates[j].action.ID
	})
}

func unambiguous(c candidate) bool {
	return len(c.diag.Conversions) == 1
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.action.ID == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{ID: opts.TargetID, Reason: "fix id not found"}}
	case ApplyModeAll:
		selected := make([]candidate, 0, len(candidates))
		skipped := make([]SkippedFix, 0)
		for _, cand := range candidates {
			if unambiguous(cand) {
				selected = append(selected, cand)
				continue
			}
			skipped = append(skipped, SkippedFix{
				ID:     cand.action.ID,
				Title:  cand.action.Title,
				Reason: fmt.Sprintf("ambiguous: %d conversions", len(cand.diag.Conversions)),
			})
		}
		return selected, skipped
	case ApplyModeOnce:
		var fallback *candidate
		for i := range candidates {
			cand := candidates[i]
			if unambiguous(cand) {
				return []candidate{cand}, nil
			}
			if fallback == nil && cand.action.Preferred {
				fallback = &candidates[i]
			}
		}
		if fallback != nil {
			return []candidate{*fallback}, nil
		}
		return nil, nil
	default:
		return nil, nil
	}
}
