package resolve

import (
	"fmt"

	"unimath/internal/charmap"
)

// Conflict describes a prefix that is bound more than once. Resolution still
// works (first match wins) but later bindings are unreachable.
type Conflict struct {
	Prefix string
	Braced bool
	Fonts  []charmap.Font // in table order, first one wins
}

func (c Conflict) String() string {
	kind := "legacy prefix"
	if c.Braced {
		kind = "braced command"
	}
	return fmt.Sprintf("%s %q is bound to %v; %s wins", kind, c.Prefix, c.Fonts, c.Fonts[0])
}

// Conflicts lists every prefix bound more than once, braced commands first.
func (t *Table) Conflicts() []Conflict {
	var out []Conflict
	out = appendConflicts(out, t.Braced(), true)
	out = appendConflicts(out, t.legacy, false)
	return out
}

func appendConflicts(out []Conflict, cmds []Command, braced bool) []Conflict {
	fonts := make(map[string][]charmap.Font, len(cmds))
	order := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		if _, ok := fonts[cmd.Prefix]; !ok {
			order = append(order, cmd.Prefix)
		}
		fonts[cmd.Prefix] = append(fonts[cmd.Prefix], cmd.Font)
	}
	for _, prefix := range order {
		if len(fonts[prefix]) > 1 {
			out = append(out, Conflict{Prefix: prefix, Braced: braced, Fonts: fonts[prefix]})
		}
	}
	return out
}
