package diag

import "sort"

// Store keeps the current diagnostics of every open document, keyed by URI.
// It is not synchronised: callers serialise events per document.
type Store struct {
	docs map[string][]Diagnostic
}

func NewStore() *Store {
	return &Store{docs: make(map[string][]Diagnostic)}
}

// Set replaces the diagnostics of uri.
func (s *Store) Set(uri string, items []Diagnostic) {
	if items == nil {
		items = []Diagnostic{}
	}
	s.docs[uri] = items
}

// Get returns the diagnostics of uri and whether it is tracked.
func (s *Store) Get(uri string) ([]Diagnostic, bool) {
	items, ok := s.docs[uri]
	return items, ok
}

// Close discards everything recorded for uri.
func (s *Store) Close(uri string) {
	delete(s.docs, uri)
}

// URIs lists the tracked documents in sorted order.
func (s *Store) URIs() []string {
	out := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		out = append(out, uri)
	}
	sort.Strings(out)
	return out
}

func (s *Store) Len() int {
	return len(s.docs)
}
