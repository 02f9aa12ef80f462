package scan

import (
	"testing"

	"unimath/internal/convert"
	"unimath/internal/diag"
	"unimath/internal/resolve"
	"unimath/internal/source"
	"unimath/internal/symbols"
)

func newScanner(opts Options) *Scanner {
	if opts.Triggers == nil {
		opts.Triggers = []string{`\`}
	}
	if opts.DoNotWarn == "" {
		opts.DoNotWarn = DefaultDoNotWarn
	}
	return New(convert.New(resolve.Default(), symbols.Builtin()), opts)
}

func TestScanLine(t *testing.T) {
	s := newScanner(Options{})
	tests := []struct {
		name  string
		line  string
		want  []string // matched texts
		conv  [][]string
		start []int
	}{
		{name: "symbols", line: `let \alpha be \beta`, want: []string{`\alpha`, `\beta`}, conv: [][]string{{"α"}, {"β"}}, start: []int{4, 14}},
		{name: "braced font", line: `v = \mathbf{ab}`, want: []string{`\mathbf{ab}`}, conv: [][]string{{"𝐚𝐛"}}, start: []int{4}},
		{name: "unconvertible font content", line: `\mathbf{a!}`},
		{name: "implicit trigger", line: `alpha`, want: []string{"alpha"}, conv: [][]string{{"α"}}, start: []int{0}},
		{name: "utf16 columns", line: `𝐚 \alpha`, want: []string{`\alpha`}, conv: [][]string{{"α"}}, start: []int{3}},
		{name: "punctuation joins tokens", line: `x=\alpha`},
		{name: "do not warn", line: `\alpha % UNICODE-MATH-INPUT: Do not warn current line`},
		{name: "empty", line: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &diag.SliceReporter{}
			s.ScanLine(5, tt.line, rep)
			if len(rep.Items) != len(tt.want) {
				t.Fatalf("got %d diagnostics, want %d: %+v", len(rep.Items), len(tt.want), rep.Items)
			}
			for i, d := range rep.Items {
				if d.Text != tt.want[i] {
					t.Errorf("diag %d text = %q, want %q", i, d.Text, tt.want[i])
				}
				if len(d.Conversions) != len(tt.conv[i]) || d.Conversions[0] != tt.conv[i][0] {
					t.Errorf("diag %d conversions = %v, want %v", i, d.Conversions, tt.conv[i])
				}
				wantRange := source.LineRange(5, tt.start[i], tt.start[i]+source.UTF16Len(tt.want[i]))
				if d.Range != wantRange {
					t.Errorf("diag %d range = %v, want %v", i, d.Range, wantRange)
				}
				if d.Code != diag.CodeConvertible || d.Severity != diag.SevHint {
					t.Errorf("diag %d code/severity = %s/%s", i, d.Code, d.Severity)
				}
			}
		})
	}
}

func TestRequireTrigger(t *testing.T) {
	s := newScanner(Options{RequireTrigger: true})
	rep := &diag.SliceReporter{}
	s.ScanLine(0, `alpha \alpha in R`, rep)
	if len(rep.Items) != 1 || rep.Items[0].Text != `\alpha` {
		t.Fatalf("diagnostics = %+v", rep.Items)
	}
}

func TestConversionsAreDistinctAcrossTriggers(t *testing.T) {
	syms := symbols.New(map[string]string{"a": "A1", ";a": "A2"})
	s := New(convert.New(resolve.Default(), syms), Options{Triggers: []string{";", ";;", "#"}})
	got := s.Conversions(";;a")
	if len(got) != 2 || got[0] != "A2" || got[1] != "A1" {
		t.Fatalf("Conversions(;;a) = %v, want [A2 A1]", got)
	}

	s = New(convert.New(resolve.Default(), symbols.Builtin()), Options{Triggers: []string{`\`, "."}})
	if got := s.Conversions("alpha"); len(got) != 1 || got[0] != "α" {
		t.Fatalf("Conversions(alpha) = %v, want [α]", got)
	}
	if got := s.Conversions(".alpha"); len(got) != 1 || got[0] != "α" {
		t.Fatalf("Conversions(.alpha) = %v, want [α]", got)
	}
}

func TestCustomCodeAndMarker(t *testing.T) {
	s := newScanner(Options{Code: "custom.code", DoNotWarn: "NOWARN"})
	doc := source.NewDocument("\\alpha\n\\beta NOWARN\n" + `\gamma % UNICODE-MATH-INPUT: Do not warn current line`)
	got := s.Scan(doc)
	if len(got) != 2 {
		t.Fatalf("Scan = %+v", got)
	}
	if got[0].Code != "custom.code" || got[1].Line() != 2 {
		t.Errorf("Scan = %+v", got)
	}
}

func TestDoNotWarnLineYieldsNothing(t *testing.T) {
	s := newScanner(Options{})
	doc := source.NewDocument(`% UNICODE-MATH-INPUT: Do not warn current line \alpha \mathbf{x} in R`)
	if got := s.Scan(doc); len(got) != 0 {
		t.Fatalf("Scan = %+v, want none", got)
	}
}

func TestScanSortsByPosition(t *testing.T) {
	s := newScanner(Options{})
	doc := source.NewDocument("\\beta \\alpha\n\n\\gamma")
	got := s.Scan(doc)
	if len(got) != 3 {
		t.Fatalf("Scan = %+v", got)
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Range.Start.Before(got[i].Range.Start) {
			t.Fatalf("not sorted: %v then %v", got[i-1].Range, got[i].Range)
		}
	}
}
