package fix

import (
	"errors"
	"testing"

	"unimath/internal/diag"
	"unimath/internal/source"
)

const sample = "\\alpha + \\beta\n\\x"

func sampleDiagnostics() []diag.Diagnostic {
	code := diag.CodeConvertible
	return []diag.Diagnostic{
		diag.NewConvertible(code, source.LineRange(0, 0, 6), `\alpha`, []string{"α"}),
		diag.NewConvertible(code, source.LineRange(0, 9, 14), `\beta`, []string{"β", "ϐ"}),
		diag.NewConvertible(code, source.LineRange(1, 0, 2), `\x`, []string{"ξ"}),
	}
}

func TestActions(t *testing.T) {
	d := diag.NewConvertible(diag.CodeConvertible, source.LineRange(2, 4, 10), `\alpha`, []string{"α", "∝", "α"})
	got := Actions(d)
	if len(got) != 2 {
		t.Fatalf("Actions = %+v, want 2", got)
	}
	if got[0].Replacement != "α" || !got[0].Preferred || got[0].Title != "Convert to α" {
		t.Errorf("first action = %+v", got[0])
	}
	if got[1].Replacement != "∝" || got[1].Preferred {
		t.Errorf("second action = %+v", got[1])
	}
	if got[0].ID != "3:5-11#0" || got[1].ID != "3:5-11#1" {
		t.Errorf("ids = %q %q", got[0].ID, got[1].ID)
	}
	for _, a := range got {
		if a.Target != d.Range {
			t.Errorf("target = %v, want %v", a.Target, d.Range)
		}
	}
	if Actions(diag.Diagnostic{}) != nil {
		t.Error("diagnostic without conversions produced actions")
	}
}

func TestActionsAt(t *testing.T) {
	items := sampleDiagnostics()
	items = append(items, diag.NewConvertible("other.code", source.LineRange(0, 0, 6), `\alpha`, []string{"A"}))

	got := ActionsAt(items, diag.CodeConvertible, source.LineRange(0, 3, 3))
	if len(got) != 1 || got[0].Replacement != "α" {
		t.Fatalf("cursor inside alpha: %+v", got)
	}
	got = ActionsAt(items, diag.CodeConvertible, source.LineRange(0, 0, 14))
	if len(got) != 3 {
		t.Fatalf("whole first line: %+v", got)
	}
	if got := ActionsAt(items, diag.CodeConvertible, source.LineRange(0, 7, 8)); len(got) != 0 {
		t.Fatalf("between words: %+v", got)
	}
}

func TestApply(t *testing.T) {
	out, skipped := Apply(sample, []TextEdit{
		{Range: source.LineRange(1, 0, 2), NewText: "ξ", OldText: `\x`},
		{Range: source.LineRange(0, 0, 6), NewText: "α"},
		{Range: source.LineRange(0, 3, 8), NewText: "overlap"},
		{Range: source.LineRange(0, 9, 14), NewText: "β", OldText: `\gamma`},
		{Range: source.LineRange(4, 0, 1), NewText: "?"},
	})
	if out != "α + \\beta\nξ" {
		t.Fatalf("Apply = %q", out)
	}
	if len(skipped) != 3 {
		t.Fatalf("skipped = %+v", skipped)
	}
	reasons := map[string]bool{}
	for _, s := range skipped {
		reasons[s.Reason] = true
	}
	for _, want := range []string{
		"conflicts with previously applied edits",
		"existing text does not match expected content",
		"edit range out of range",
	} {
		if !reasons[want] {
			t.Errorf("missing skip reason %q in %+v", want, skipped)
		}
	}
}

func TestApplyInsertionInsideReplacedRange(t *testing.T) {
	out, skipped := Apply("ab", []TextEdit{
		{Range: source.LineRange(0, 1, 1), NewText: "X"},
		{Range: source.LineRange(0, 0, 2), NewText: "Y"},
	})
	if len(skipped) != 1 || out != "Y" {
		t.Fatalf("Apply = %q, skipped %+v", out, skipped)
	}
}

func TestApplyDiagnosticsModes(t *testing.T) {
	tests := []struct {
		name      string
		opts      ApplyOptions
		want      string
		applied   int
		skipped   int
		errNoFixs bool
	}{
		{name: "all applies unambiguous", opts: ApplyOptions{Mode: ApplyModeAll}, want: "α + \\beta\nξ", applied: 2, skipped: 2},
		{name: "once picks first unambiguous", opts: ApplyOptions{Mode: ApplyModeOnce}, want: "α + \\beta\n\\x", applied: 1},
		{name: "id picks alternative", opts: ApplyOptions{Mode: ApplyModeID, TargetID: "1:10-15#1"}, want: "\\alpha + ϐ\n\\x", applied: 1},
		{name: "unknown id", opts: ApplyOptions{Mode: ApplyModeID, TargetID: "9:9-9#9"}, want: sample, skipped: 1, errNoFixs: true},
		{name: "code filter", opts: ApplyOptions{Mode: ApplyModeAll, Code: "other"}, want: sample, errNoFixs: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ApplyDiagnostics(sample, sampleDiagnostics(), tt.opts)
			if tt.errNoFixs {
				if !errors.Is(err, ErrNoFixes) {
					t.Fatalf("err = %v, want ErrNoFixes", err)
				}
			} else if err != nil {
				t.Fatalf("ApplyDiagnostics: %v", err)
			}
			if res.Text != tt.want {
				t.Errorf("Text = %q, want %q", res.Text, tt.want)
			}
			if len(res.Applied) != tt.applied || len(res.Skipped) != tt.skipped {
				t.Errorf("applied %d skipped %d, want %d/%d (%+v)", len(res.Applied), len(res.Skipped), tt.applied, tt.skipped, res.Skipped)
			}
		})
	}
}

func TestApplyDiagnosticsOnceFallsBackToPreferred(t *testing.T) {
	items := sampleDiagnostics()[1:2]
	res, err := ApplyDiagnostics(sample, items, ApplyOptions{Mode: ApplyModeOnce})
	if err != nil {
		t.Fatalf("ApplyDiagnostics: %v", err)
	}
	if res.Text != "\\alpha + β\n\\x" {
		t.Fatalf("Text = %q", res.Text)
	}
}

func TestApplyDiagnosticsStaleText(t *testing.T) {
	stale := []diag.Diagnostic{
		diag.NewConvertible(diag.CodeConvertible, source.LineRange(0, 0, 6), `\gamma`, []string{"γ"}),
	}
	res, err := ApplyDiagnostics(sample, stale, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "existing text does not match expected content" {
		t.Fatalf("Skipped = %+v", res.Skipped)
	}
	if res.Text != sample {
		t.Fatalf("text changed: %q", res.Text)
	}
}
