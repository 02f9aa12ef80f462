package source

import "fmt"

// Position is a zero-based location in a document. Character counts UTF-16
// code units from the start of the line, the unit editor hosts use.
type Position struct {
	Line      int `json:"line" msgpack:"l"`
	Character int `json:"character" msgpack:"c"`
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Character+1)
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start Position `json:"start" msgpack:"s"`
	End   Position `json:"end" msgpack:"e"`
}

// LineRange builds a single-line range.
func LineRange(line, start, end int) Range {
	return Range{
		Start: Position{Line: line, Character: start},
		End:   Position{Line: line, Character: end},
	}
}

func (r Range) Empty() bool {
	return r.Start == r.End
}

// SingleLine reports whether the range starts and ends on the same line.
func (r Range) SingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Len is the width of a single-line range in UTF-16 units, or -1 otherwise.
func (r Range) Len() int {
	if !r.SingleLine() {
		return -1
	}
	return r.End.Character - r.Start.Character
}

// Contains reports whether p lies within r; the end position is included so a
// cursor sitting right after a word still belongs to it.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && !r.End.Before(p)
}

// Overlaps reports whether the two ranges share at least one character.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Cover returns the smallest range containing both r and other.
func (r Range) Cover(other Range) Range {
	if other.Start.Before(r.Start) {
		r.Start = other.Start
	}
	if r.End.Before(other.End) {
		r.End = other.End
	}
	return r
}

// ShiftLines moves the range by delta lines.
func (r Range) ShiftLines(delta int) Range {
	r.Start.Line += delta
	r.End.Line += delta
	return r
}

func (r Range) String() string {
	if r.SingleLine() {
		return fmt.Sprintf("%d:%d-%d", r.Start.Line+1, r.Start.Character+1, r.End.Character+1)
	}
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// StrWithRange pairs a piece of text with the range it occupies.
type StrWithRange struct {
	Str   string
	Range Range
}
