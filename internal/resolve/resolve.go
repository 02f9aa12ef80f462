// Package resolve decides which font a word asks for.
//
// Two syntaxes are recognised. The braced form "<prefix>{content}" is matched
// with one anchored regular expression per command, in table order. The
// legacy bare form "<prefix>content" picks the longest configured prefix.
package resolve

import (
	"regexp"
	"slices"
	"sort"

	"unimath/internal/charmap"
)

// Command binds a prefix to a font.
type Command struct {
	Prefix string
	Font   charmap.Font
}

// Match is the outcome of a successful resolution.
type Match struct {
	Font    charmap.Font
	Prefix  string
	Content string
	Braced  bool
}

type bracedCommand struct {
	Command
	re *regexp.Regexp
}

// Table is immutable once built.
type Table struct {
	braced []bracedCommand
	legacy []Command // original order
	byLen  []Command // longest prefix first, ties keep original order
}

// NewTable compiles the braced commands and indexes the legacy prefixes.
// Commands with an empty prefix are ignored.
func NewTable(braced, legacy []Command) *Table {
	t := &Table{
		braced: make([]bracedCommand, 0, len(braced)),
		legacy: make([]Command, 0, len(legacy)),
	}
	for _, cmd := range braced {
		if cmd.Prefix == "" {
			continue
		}
		t.braced = append(t.braced, bracedCommand{
			Command: cmd,
			re:      regexp.MustCompile(`^` + regexp.QuoteMeta(cmd.Prefix) + `\{(.*)\}$`),
		})
	}
	for _, cmd := range legacy {
		if cmd.Prefix == "" {
			continue
		}
		t.legacy = append(t.legacy, cmd)
	}
	t.byLen = slices.Clone(t.legacy)
	sort.SliceStable(t.byLen, func(i, j int) bool {
		return len(t.byLen[i].Prefix) > len(t.byLen[j].Prefix)
	})
	return t
}

// Resolve tries the braced commands first, then the legacy prefixes.
func (t *Table) Resolve(word string) (Match, bool) {
	if t == nil || word == "" {
		return Match{}, false
	}
	if m, ok := t.resolveBraced(word); ok {
		return m, true
	}
	return t.resolveLegacy(word)
}

func (t *Table) resolveBraced(word string) (Match, bool) {
	for _, cmd := range t.braced {
		sub := cmd.re.FindStringSubmatch(word)
		if sub == nil {
			continue
		}
		return Match{Font: cmd.Font, Prefix: cmd.Prefix, Content: sub[1], Braced: true}, true
	}
	return Match{}, false
}

func (t *Table) resolveLegacy(word string) (Match, bool) {
	for _, cmd := range t.byLen {
		if len(word) >= len(cmd.Prefix) && word[:len(cmd.Prefix)] == cmd.Prefix {
			return Match{Font: cmd.Font, Prefix: cmd.Prefix, Content: word[len(cmd.Prefix):]}, true
		}
	}
	return Match{}, false
}

// Braced returns the braced commands in table order.
func (t *Table) Braced() []Command {
	out := make([]Command, len(t.braced))
	for i, cmd := range t.braced {
		out[i] = cmd.Command
	}
	return out
}

// Legacy returns the bare prefixes in table order.
func (t *Table) Legacy() []Command {
	return slices.Clone(t.legacy)
}

// Wrap renders content in the braced form of cmd.
func Wrap(cmd Command, content string) string {
	return cmd.Prefix + "{" + content + "}"
}
