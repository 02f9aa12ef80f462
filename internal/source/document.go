package source

import (
	"fmt"
	"sort"
	"strings"
)

// TextSource is the read-only view of a document the engine works against.
type TextSource interface {
	LineCount() int
	// Line returns line n without its terminator.
	Line(n int) (string, error)
}

// Document is an immutable text buffer with a line index.
type Document struct {
	text    string
	lineIdx []uint32
}

var _ TextSource = (*Document)(nil)

func NewDocument(text string) *Document {
	return &Document{text: text, lineIdx: buildLineIndex(text)}
}

func (d *Document) Text() string {
	return d.text
}

func (d *Document) LineCount() int {
	return len(d.lineIdx) + 1
}

// lineBounds returns the byte span of line n, excluding the '\n'.
func (d *Document) lineBounds(n int) (start, end int, err error) {
	if n < 0 || n >= d.LineCount() {
		return 0, 0, fmt.Errorf("line %d of %d: %w", n, d.LineCount(), ErrOutOfRange)
	}
	if n > 0 {
		start = int(d.lineIdx[n-1]) + 1
	}
	end = len(d.text)
	if n < len(d.lineIdx) {
		end = int(d.lineIdx[n])
	}
	return start, end, nil
}

func (d *Document) Line(n int) (string, error) {
	start, end, err := d.lineBounds(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(d.text[start:end], "\r"), nil
}

// Offset converts pos into a byte offset. Positions past the end of their
// line are rejected.
func (d *Document) Offset(pos Position) (int, error) {
	start, _, err := d.lineBounds(pos.Line)
	if err != nil {
		return 0, err
	}
	line, _ := d.Line(pos.Line)
	col, err := ByteOffset(line, pos.Character)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", pos.Line, err)
	}
	return start + col, nil
}

// clampOffset is the lenient form of Offset used for incoming edits.
func (d *Document) clampOffset(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= d.LineCount() {
		return len(d.text)
	}
	start, _, _ := d.lineBounds(pos.Line)
	line, _ := d.Line(pos.Line)
	return start + clampByteOffset(line, pos.Character)
}

// PositionAt converts a byte offset back into a position.
func (d *Document) PositionAt(offset int) Position {
	offset = max(0, min(offset, len(d.text)))
	line := sort.Search(len(d.lineIdx), func(i int) bool {
		return int(d.lineIdx[i]) >= offset
	})
	start := 0
	if line > 0 {
		start = int(d.lineIdx[line-1]) + 1
	}
	return Position{Line: line, Character: UTF16Len(d.text[start:offset])}
}

// Slice returns the text covered by r.
func (d *Document) Slice(r Range) (string, error) {
	from, err := d.Offset(r.Start)
	if err != nil {
		return "", err
	}
	to, err := d.Offset(r.End)
	if err != nil {
		return "", err
	}
	if to < from {
		return "", fmt.Errorf("range %s is inverted: %w", r, ErrOutOfRange)
	}
	return d.text[from:to], nil
}

// LinePrefix returns the text of pos.Line up to pos.Character.
func LinePrefix(src TextSource, pos Position) (string, error) {
	line, err := src.Line(pos.Line)
	if err != nil {
		return "", err
	}
	off, err := ByteOffset(line, pos.Character)
	if err != nil {
		return "", err
	}
	return line[:off], nil
}
