// Package convert turns a word (trigger excluded) into its Unicode form.
package convert

import (
	"strings"

	"unimath/internal/charmap"
	"unimath/internal/resolve"
	"unimath/internal/symbols"
)

// Converter combines the font commands with the symbol table. It holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	fonts   *resolve.Table
	symbols *symbols.Table
}

func New(fonts *resolve.Table, syms *symbols.Table) *Converter {
	return &Converter{fonts: fonts, symbols: syms}
}

// Convert returns the converted text, or ok == false. A word that resolves to
// a font command never falls back to the symbol table.
func (c *Converter) Convert(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	if m, ok := c.fonts.Resolve(word); ok {
		return MapString(m.Font, m.Content)
	}
	return c.symbols.Lookup(word)
}

// Resolve exposes the font match for word.
func (c *Converter) Resolve(word string) (resolve.Match, bool) {
	return c.fonts.Resolve(word)
}

func (c *Converter) Fonts() *resolve.Table {
	return c.fonts
}

func (c *Converter) Symbols() *symbols.Table {
	return c.symbols
}

// MapString maps every rune of content through the font's table. One missing
// rune fails the whole string; empty content fails too.
func MapString(font charmap.Font, content string) (string, bool) {
	if content == "" {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(content) * 4)
	for _, r := range content {
		mapped, ok := charmap.Lookup(font, r)
		if !ok {
			return "", false
		}
		b.WriteRune(mapped)
	}
	return b.String(), true
}
