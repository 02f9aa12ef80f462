// Package charmap holds the per-font character tables.
//
// A table maps one source rune to one target rune. Tables are sparse: a rune
// that is absent from a font's table cannot be written in that font, and the
// converter treats the whole word as unconvertible rather than emitting a
// partially styled string.
//
// Font dispatch is an exhaustive switch in Table; charmap_test.go checks that
// every Font returned by All owns a non-empty table.
package charmap
