package convert

import (
	"testing"
	"unicode/utf8"

	"unimath/internal/charmap"
	"unimath/internal/resolve"
	"unimath/internal/symbols"
)

func newDefault() *Converter {
	return New(resolve.Default(), symbols.Builtin())
}

func TestConvert(t *testing.T) {
	c := newDefault()
	tests := []struct {
		word string
		want string
		ok   bool
	}{
		{word: "alpha", want: "α", ok: true},
		{word: "mathbf{a}", want: "𝐚", ok: true},
		{word: "mathbf{abc}", want: "𝐚𝐛𝐜", ok: true},
		{word: "mathbb{R}", want: "ℝ", ok: true},
		{word: "_{12}", want: "₁₂", ok: true},
		{word: "^2", want: "²", ok: true},
		{word: "bf:x", want: "𝐱", ok: true},
		{word: "mathit{h}", want: "ℎ", ok: true},
		{word: "mathbfab", want: "𝐚𝐛", ok: true},
		{word: "mathbbR", want: "ℝ", ok: true},
		{word: "mathbf{ab", ok: false},
		{word: "mathbf{a!}", ok: false},
		{word: "mathit{a1}", ok: false},
		{word: "_z", ok: false},
		{word: "mathbf{}", ok: false},
		{word: "b:", ok: false},
		{word: "notasymbol", ok: false},
		{word: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := c.Convert(tt.word)
			if ok != tt.ok {
				t.Fatalf("Convert(%q) ok = %v, want %v (got %q)", tt.word, ok, tt.ok, got)
			}
			if !ok {
				if got != "" {
					t.Fatalf("failed conversion returned %q", got)
				}
				return
			}
			if got == "" {
				t.Fatalf("Convert(%q) succeeded with an empty string", tt.word)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

// A font conversion that succeeds maps rune for rune.
func TestFontConversionPreservesLength(t *testing.T) {
	c := newDefault()
	for _, cmd := range c.Fonts().Braced() {
		var content []rune
		for src := range charmap.Table(cmd.Font) {
			content = append(content, src)
			if len(content) == 6 {
				break
			}
		}
		word := resolve.Wrap(cmd, string(content))
		got, ok := c.Convert(word)
		if !ok {
			t.Fatalf("Convert(%q) failed", word)
		}
		if utf8.RuneCountInString(got) != len(content) {
			t.Errorf("Convert(%q) = %q has %d runes, want %d", word, got, utf8.RuneCountInString(got), len(content))
		}
	}
}

// Appending one unmapped rune to any convertible content fails the whole word.
func TestNoPartialConversion(t *testing.T) {
	c := newDefault()
	for _, cmd := range c.Fonts().Braced() {
		if _, ok := charmap.Lookup(cmd.Font, '!'); ok {
			t.Fatalf("%s unexpectedly maps '!'", cmd.Font)
		}
		for _, content := range []string{"!", "a!", "!1", "1!a"} {
			word := resolve.Wrap(cmd, content)
			if got, ok := c.Convert(word); ok {
				t.Errorf("Convert(%q) = %q, want no conversion", word, got)
			}
		}
	}
}

func TestFontMatchDoesNotFallBackToSymbols(t *testing.T) {
	syms := symbols.New(map[string]string{"mathbf{z!}": "X"})
	c := New(resolve.Default(), syms)
	if got, ok := c.Convert("mathbf{z!}"); ok {
		t.Fatalf("Convert = %q; a resolved font command must not use the symbol table", got)
	}
}

func TestMapString(t *testing.T) {
	got, ok := MapString(charmap.FontSuperscript, "n+1")
	if !ok || got != "ⁿ⁺¹" {
		t.Fatalf("MapString = %q, %v", got, ok)
	}
	if _, ok := MapString(charmap.FontSuperscript, ""); ok {
		t.Fatal("empty content must fail")
	}
	if _, ok := MapString(charmap.Font(0), "a"); ok {
		t.Fatal("invalid font must fail")
	}
}
