package charmap

import (
	"testing"
	"unicode/utf8"
)

func TestEveryFontOwnsATable(t *testing.T) {
	fonts := All()
	if len(fonts) != fontCount {
		t.Fatalf("All() returned %d fonts, want %d", len(fonts), fontCount)
	}
	seen := make(map[Font]bool, len(fonts))
	for _, f := range fonts {
		if seen[f] {
			t.Fatalf("font %s listed twice", f)
		}
		seen[f] = true
		if f.String() == "unknown" {
			t.Errorf("font %d has no name", uint8(f))
		}
		if len(Table(f)) == 0 {
			t.Errorf("font %s has no table", f)
		}
	}
}

func TestTablesAreDistinct(t *testing.T) {
	for _, a := range All() {
		for _, b := range All() {
			if a >= b {
				continue
			}
			ta, tb := Table(a), Table(b)
			if len(ta) == 0 || len(tb) == 0 {
				continue
			}
			same := len(ta) == len(tb)
			if same {
				for k, v := range ta {
					if tb[k] != v {
						same = false
						break
					}
				}
			}
			if same {
				t.Errorf("fonts %s and %s share an identical table", a, b)
			}
		}
	}
}

func TestTablesMapSingleRunes(t *testing.T) {
	for _, f := range All() {
		for src, dst := range Table(f) {
			if !utf8.ValidRune(src) || !utf8.ValidRune(dst) {
				t.Errorf("%s: invalid rune pair %q -> %q", f, src, dst)
			}
			if src >= utf8.RuneSelf {
				t.Errorf("%s: source %q is not ASCII", f, src)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		font Font
		in   rune
		want rune
		ok   bool
	}{
		{name: "bold a", font: FontBold, in: 'a', want: '𝐚', ok: true},
		{name: "bold digit", font: FontBold, in: '7', want: '𝟕', ok: true},
		{name: "italic h hole", font: FontItalic, in: 'h', want: 'ℎ', ok: true},
		{name: "blackboard R hole", font: FontMathBB, in: 'R', want: 'ℝ', ok: true},
		{name: "fraktur Z hole", font: FontMathFrak, in: 'Z', want: 'ℨ', ok: true},
		{name: "calligraphic e hole", font: FontMathCal, in: 'e', want: 'ℯ', ok: true},
		{name: "subscript 2", font: FontSubscript, in: '2', want: '₂', ok: true},
		{name: "superscript n", font: FontSuperscript, in: 'n', want: 'ⁿ', ok: true},
		{name: "smallcaps q", font: FontSmallCaps, in: 'q', want: 'ꞯ', ok: true},
		{name: "subscript z missing", font: FontSubscript, in: 'z', ok: false},
		{name: "superscript q missing", font: FontSuperscript, in: 'q', ok: false},
		{name: "italic digit missing", font: FontItalic, in: '1', ok: false},
		{name: "invalid font", font: Font(0), in: 'a', ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.font, tt.in)
			if ok != tt.ok {
				t.Fatalf("Lookup(%s, %q) ok = %v, want %v", tt.font, tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Lookup(%s, %q) = %q, want %q", tt.font, tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFont(t *testing.T) {
	for _, f := range All() {
		got, err := ParseFont(f.String())
		if err != nil {
			t.Fatalf("ParseFont(%q): %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseFont(%q) = %s", f.String(), got)
		}
	}
	if got, err := ParseFont(" MathBB "); err != nil || got != FontMathBB {
		t.Errorf("ParseFont should trim and ignore case, got %s, %v", got, err)
	}
	if _, err := ParseFont("gothic"); err == nil {
		t.Error("expected error for unknown font")
	}
}

func TestFontTextRoundTrip(t *testing.T) {
	var f Font
	if err := f.UnmarshalText([]byte("mathfrak")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	text, err := f.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "mathfrak" {
		t.Errorf("MarshalText = %q", text)
	}
	if _, err := Font(0).MarshalText(); err == nil {
		t.Error("expected error for zero font")
	}
}
