package source

import (
	"fmt"
	"unicode/utf8"
)

func runeUnits(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// UTF16Len counts the UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// ByteOffset maps a UTF-16 character index within line to a byte offset.
// An index pointing inside a surrogate pair resolves to the start of that
// rune.
func ByteOffset(line string, character int) (int, error) {
	if character < 0 {
		return 0, fmt.Errorf("character %d: %w", character, ErrOutOfRange)
	}
	units := 0
	for i, r := range line {
		if units >= character {
			return i, nil
		}
		need := runeUnits(r)
		if units+need > character {
			return i, nil
		}
		units += need
	}
	if units < character {
		return 0, fmt.Errorf("character %d past line end %d: %w", character, units, ErrOutOfRange)
	}
	return len(line), nil
}

func clampByteOffset(line string, character int) int {
	off, err := ByteOffset(line, max(0, character))
	if err != nil {
		return len(line)
	}
	return off
}

// Character is the inverse of ByteOffset.
func Character(line string, byteOff int) int {
	byteOff = max(0, min(byteOff, len(line)))
	for byteOff > 0 && byteOff < len(line) && !utf8.RuneStart(line[byteOff]) {
		byteOff--
	}
	return UTF16Len(line[:byteOff])
}
