package charmap

import (
	"fmt"
	"strings"
)

// Font is a named character-style family. Every Font owns exactly one table.
type Font uint8

const (
	FontSubscript Font = iota + 1
	FontSuperscript
	FontBold
	FontItalic
	FontMathCal
	FontMathFrak
	FontMathBB
	FontMathSF
	FontMathTT
	FontMathScr
	FontSmallCaps

	fontCount = int(FontSmallCaps)
)

// All returns every font in declaration order.
func All() []Font {
	out := make([]Font, 0, fontCount)
	for f := FontSubscript; f <= FontSmallCaps; f++ {
		out = append(out, f)
	}
	return out
}

func (f Font) String() string {
	switch f {
	case FontSubscript:
		return "subscript"
	case FontSuperscript:
		return "superscript"
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	case FontMathCal:
		return "mathcal"
	case FontMathFrak:
		return "mathfrak"
	case FontMathBB:
		return "mathbb"
	case FontMathSF:
		return "mathsf"
	case FontMathTT:
		return "mathtt"
	case FontMathScr:
		return "mathscr"
	case FontSmallCaps:
		return "smallcaps"
	}
	return "unknown"
}

// Valid reports whether f is one of the declared fonts.
func (f Font) Valid() bool {
	return f >= FontSubscript && f <= FontSmallCaps
}

// ParseFont converts a configuration name (case-insensitive) into a Font.
func ParseFont(name string) (Font, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, f := range All() {
		if f.String() == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown font %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (f Font) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid font %d", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Font) UnmarshalText(text []byte) error {
	parsed, err := ParseFont(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
