// Package segment finds the trigger and the partially typed word in front of
// a cursor.
package segment

import (
	"errors"
	"fmt"
	"strings"

	"unimath/internal/source"
)

var ErrEmptyTrigger = errors.New("empty trigger")

// TriggerSet is the ordered list of strings that start a command.
type TriggerSet []string

// Validate rejects an empty set and empty triggers.
func (ts TriggerSet) Validate() error {
	if len(ts) == 0 {
		return errors.New("no triggers configured")
	}
	var errs []error
	for i, t := range ts {
		if t == "" {
			errs = append(errs, fmt.Errorf("trigger %d: %w", i, ErrEmptyTrigger))
		}
	}
	return errors.Join(errs...)
}

// Context is the trigger and word the cursor is completing. The two ranges
// are adjacent.
type Context struct {
	Trigger source.StrWithRange
	Word    source.StrWithRange
}

// Total is the range replaced by completion and commit.
func (c Context) Total() source.Range {
	return c.Trigger.Range.Cover(c.Word.Range)
}

// Find segments prefix, the text of line up to the cursor. The trigger whose
// last occurrence ends furthest right wins; on equal ends the longer one.
func Find(prefix string, line int, triggers TriggerSet) (Context, bool) {
	if prefix == "" {
		return Context{}, false
	}
	bestStart, bestEnd := -1, -1
	for _, t := range triggers {
		if t == "" {
			continue
		}
		start := strings.LastIndex(prefix, t)
		if start < 0 {
			continue
		}
		end := start + len(t)
		if end > bestEnd || (end == bestEnd && start < bestStart) {
			bestStart, bestEnd = start, end
		}
	}
	if bestStart < 0 {
		return Context{}, false
	}

	triggerCol := source.UTF16Len(prefix[:bestStart])
	wordCol := triggerCol + source.UTF16Len(prefix[bestStart:bestEnd])
	cursorCol := wordCol + source.UTF16Len(prefix[bestEnd:])
	return Context{
		Trigger: source.StrWithRange{
			Str:   prefix[bestStart:bestEnd],
			Range: source.LineRange(line, triggerCol, wordCol),
		},
		Word: source.StrWithRange{
			Str:   prefix[bestEnd:],
			Range: source.LineRange(line, wordCol, cursorCol),
		},
	}, true
}

// At segments the text in front of pos. A cursor at column 0 has no context;
// a position outside the document is reported as an error wrapping
// source.ErrOutOfRange.
func At(src source.TextSource, pos source.Position, triggers TriggerSet) (Context, bool, error) {
	if pos.Character == 0 {
		if pos.Line < 0 || pos.Line >= src.LineCount() {
			return Context{}, false, fmt.Errorf("segment at %s: %w", pos, source.ErrOutOfRange)
		}
		return Context{}, false, nil
	}
	prefix, err := source.LinePrefix(src, pos)
	if err != nil {
		return Context{}, false, fmt.Errorf("segment at %s: %w", pos, err)
	}
	ctx, ok := Find(prefix, pos.Line, triggers)
	return ctx, ok, nil
}
