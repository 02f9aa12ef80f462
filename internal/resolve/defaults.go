package resolve

import "unimath/internal/charmap"

// DefaultBraced is the built-in braced command table.
func DefaultBraced() []Command {
	return []Command{
		{"_", charmap.FontSubscript},
		{"^", charmap.FontSuperscript},
		{"mathbf", charmap.FontBold},
		{"bf", charmap.FontBold},
		{"mathit", charmap.FontItalic},
		{"it", charmap.FontItalic},
		{"mathcal", charmap.FontMathCal},
		{"cal", charmap.FontMathCal},
		{"mathfrak", charmap.FontMathFrak},
		{"frak", charmap.FontMathFrak},
		{"mathbb", charmap.FontMathBB},
		{"Bbb", charmap.FontMathBB},
		{"mathsf", charmap.FontMathSF},
		{"sf", charmap.FontMathSF},
		{"mathtt", charmap.FontMathTT},
		{"tt", charmap.FontMathTT},
		{"mathscr", charmap.FontMathScr},
		{"scr", charmap.FontMathScr},
		{"textsc", charmap.FontSmallCaps},
	}
}

// DefaultLegacy is the built-in bare prefix table.
func DefaultLegacy() []Command {
	return []Command{
		{"^", charmap.FontSuperscript},
		{"_", charmap.FontSubscript},
		{"b:", charmap.FontBold},
		{"bf:", charmap.FontBold},
		{"mathbf:", charmap.FontBold},
		{"mathbf", charmap.FontBold},
		{"i:", charmap.FontItalic},
		{"it:", charmap.FontItalic},
		{"mathit:", charmap.FontItalic},
		{"mathit", charmap.FontItalic},
		{"cal:", charmap.FontMathCal},
		{"mathcal:", charmap.FontMathCal},
		{"mathcal", charmap.FontMathCal},
		{"frak:", charmap.FontMathFrak},
		{"mathfrak:", charmap.FontMathFrak},
		{"mathfrak", charmap.FontMathFrak},
		{"Bbb:", charmap.FontMathBB},
		{"mathbb:", charmap.FontMathBB},
		{"mathbb", charmap.FontMathBB},
	}
}

// Default builds a table from the built-in commands.
func Default() *Table {
	return NewTable(DefaultBraced(), DefaultLegacy())
}
