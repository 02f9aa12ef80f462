// Package symbols holds the whole-word command table: a command name such as
// "alpha" maps to its Unicode value "α". Lookups always use the full word with
// the trigger already removed; font commands are resolved elsewhere.
package symbols

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Entry is a single command and its value.
type Entry struct {
	Name  string
	Value string
}

// Table is an immutable command table. The zero value is empty.
type Table struct {
	values map[string]string
	names  []string
}

// Builtin returns the default table.
func Builtin() *Table {
	return New(nil)
}

// New builds a table from the builtin commands overlaid with extra. Values are
// normalised to NFC once here so lookups never allocate. Entries in extra with an
// empty name or value are ignored.
func New(extra map[string]string) *Table {
	values := make(map[string]string, len(builtin)+len(extra))
	for name, value := range builtin {
		values[name] = norm.NFC.String(value)
	}
	for name, value := range extra {
		if name == "" || value == "" {
			continue
		}
		values[name] = norm.NFC.String(value)
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Table{values: values, names: names}
}

// Lookup returns the value for the full command name.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil || name == "" {
		return "", false
	}
	v, ok := t.values[name]
	return v, ok
}

// Len reports the number of commands.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Entries returns every command sorted by name.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.names))
	for _, name := range t.names {
		out = append(out, Entry{Name: name, Value: t.values[name]})
	}
	return out
}
