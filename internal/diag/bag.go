package diag

import (
	"sort"
)

// Bag collects diagnostics up to a limit. A limit of zero means unlimited.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(limit int) *Bag {
	limit = max(limit, 0)
	return &Bag{
		items: make([]Diagnostic, 0, min(limit, 64)),
		max:   limit,
	}
}

// Add appends d unless the limit was reached.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

func (b *Bag) HasErrors() bool {
	return b.hasAtLeast(SevError)
}

func (b *Bag) HasWarnings() bool {
	return b.hasAtLeast(SevWarning)
}

func (b *Bag) hasAtLeast(sev Severity) bool {
	for i := range b.items {
		if b.items[i].Severity >= sev {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the internal slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other, raising the limit if needed.
func (b *Bag) Merge(other *Bag) {
	if total := len(b.items) + len(other.items); b.max > 0 && total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
}

// Sort orders by start, end, severity (desc) and code.
func (b *Bag) Sort() {
	Sort(b.items)
}

// Dedup drops diagnostics repeating the code and range of an earlier one.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		r    rangeKey
	}
	seen := make(map[key]bool, len(b.items))
	out := b.items[:0]
	for _, d := range b.items {
		k := key{code: d.Code, r: rangeKeyOf(d)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	b.items = out
}

type rangeKey [4]int

func rangeKeyOf(d Diagnostic) rangeKey {
	r := d.Range
	return rangeKey{r.Start.Line, r.Start.Character, r.End.Line, r.End.Character}
}

// Sort orders diagnostics deterministically in place.
func Sort(items []Diagnostic) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i], items[j]
		if di.Range.Start != dj.Range.Start {
			return di.Range.Start.Before(dj.Range.Start)
		}
		if di.Range.End != dj.Range.End {
			return di.Range.End.Before(dj.Range.End)
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
