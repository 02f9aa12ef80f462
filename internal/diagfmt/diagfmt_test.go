package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"unimath/internal/diag"
	"unimath/internal/source"
)

func sampleResult(t *testing.T) []FileResult {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("/home/user/notes/intro.md", []byte("intro\nlet \\alpha\tbe\n\\to end\n"))
	items := []diag.Diagnostic{
		diag.NewConvertible(diag.CodeConvertible, source.LineRange(1, 4, 10), `\alpha`, []string{"α"}),
		diag.NewConvertible(diag.CodeConvertible, source.LineRange(2, 0, 3), `\to`, []string{"→", "⟶"}),
	}
	return []FileResult{{File: fs.Get(id), Items: items}}
}

func TestPrettyLayout(t *testing.T) {
	var buf bytes.Buffer
	err := Pretty(&buf, sampleResult(t), PrettyOpts{PathMode: PathModeBasename, ShowFixes: true})
	if err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := strings.Join([]string{
		`intro.md:2:5: HINT unicode-math-input.convertible-symbol: "\\alpha" can be converted to α`,
		`2 | let \alpha be`,
		`  |     ^~~~~~`,
		`  = fix: Convert to α`,
		`intro.md:3:1: HINT unicode-math-input.convertible-symbol: "\\to" can be converted to →, ⟶`,
		`3 | \to end`,
		`  | ^~~`,
		`  = fix: Convert to →`,
		`  = fix: Convert to ⟶`,
		``,
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyContextAndColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleResult(t)[:1], PrettyOpts{Context: 1, Color: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"1 |", "2 |", "3 |", "\x1b["} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "/home/user/notes/intro.md") {
		t.Errorf("auto path mode should keep short absolute paths:\n%s", out)
	}
}

func TestUnderlineUsesDisplayWidth(t *testing.T) {
	text := "中文 \\alpha"
	r := source.LineRange(0, source.UTF16Len("中文 "), source.UTF16Len(text))
	pad, span := underline(text, r)
	if pad != 5 || span != 6 {
		t.Errorf("underline = (%d, %d), want (5, 6)", pad, span)
	}
	pad, span = underline("ab", source.LineRange(0, 2, 2))
	if pad != 2 || span != 1 {
		t.Errorf("empty range underline = (%d, %d), want (2, 1)", pad, span)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	err := JSON(&buf, sampleResult(t), JSONOpts{
		PathMode:        PathModeBasename,
		IncludeFixes:    true,
		IncludePreviews: true,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Location != (LocationJSON{File: "intro.md", StartLine: 2, StartCol: 5, EndLine: 2, EndCol: 11}) {
		t.Errorf("location = %+v", first.Location)
	}
	if len(first.Fixes) != 1 || first.Fixes[0].AfterLine != "let α\tbe" || !first.Fixes[0].IsPreferred {
		t.Errorf("fixes = %+v", first.Fixes)
	}
	if len(out.Diagnostics[1].Fixes) != 2 {
		t.Errorf("second diagnostic should offer both conversions")
	}
}

func TestJSONMax(t *testing.T) {
	out := BuildDiagnosticsOutput(sampleResult(t), JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("Count = %d, want 1", out.Count)
	}
	if out.Diagnostics[0].Fixes != nil {
		t.Error("fixes should be omitted unless requested")
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{
		"":         PathModeAuto,
		"abs":      PathModeAbsolute,
		"relative": PathModeRelative,
		"basename": PathModeBasename,
	} {
		got, ok := ParsePathMode(in)
		if !ok || got != want {
			t.Errorf("ParsePathMode(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParsePathMode("weird"); ok {
		t.Error("expected failure for unknown mode")
	}
}

func TestShort(t *testing.T) {
	var buf bytes.Buffer
	results := append(sampleResult(t), FileResult{})
	if err := Short(&buf, results, PathModeBasename, ""); err != nil {
		t.Fatalf("Short: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "hint unicode-math-input.convertible-symbol intro.md:2:5 ") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "intro.md:3:1") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}
