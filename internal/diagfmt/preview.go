package diagfmt

import (
	"fmt"

	"unimath/internal/fix"
	"unimath/internal/source"
)

type fixPreview struct {
	before string
	after  string
}

// buildFixPreview renders the diagnostic line before and after applying action.
func buildFixPreview(doc *source.Document, action fix.Action) (fixPreview, error) {
	if doc == nil {
		return fixPreview{}, fmt.Errorf("nil document")
	}
	if !action.Target.SingleLine() {
		return fixPreview{}, fmt.Errorf("fix %s spans lines", action.ID)
	}
	line, err := doc.Line(action.Target.Start.Line)
	if err != nil {
		return fixPreview{}, err
	}
	from, err := source.ByteOffset(line, action.Target.Start.Character)
	if err != nil {
		return fixPreview{}, err
	}
	to, err := source.ByteOffset(line, action.Target.End.Character)
	if err != nil {
		return fixPreview{}, err
	}
	if to < from {
		return fixPreview{}, fmt.Errorf("fix %s has an inverted range", action.ID)
	}
	return fixPreview{
		before: line,
		after:  line[:from] + action.Replacement + line[to:],
	}, nil
}
