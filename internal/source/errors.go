package source

import "errors"

// ErrOutOfRange reports a position or range that does not exist in a document.
// Hosts supplying such positions get "no result" for the single operation.
var ErrOutOfRange = errors.New("position out of range")

// ErrOverlap reports edits that touch the same text.
var ErrOverlap = errors.New("overlapping edits")
