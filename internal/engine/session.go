package engine

import (
	"errors"
	"fmt"

	"unimath/internal/diag"
	"unimath/internal/source"
	"unimath/internal/trace"
)

// ErrNotOpen is returned for events on a document that was never opened.
var ErrNotOpen = errors.New("document not open")

// Session tracks open documents and their diagnostics. Like diag.Store it is
// not synchronised; the host delivers events for a document in order.
type Session struct {
	eng   *Engine
	docs  map[string]*source.Document
	store *diag.Store
}

func (e *Engine) NewSession() *Session {
	return &Session{
		eng:   e,
		docs:  make(map[string]*source.Document),
		store: diag.NewStore(),
	}
}

func (s *Session) Engine() *Engine { return s.eng }

// Open starts tracking uri, replacing any previous content.
func (s *Session) Open(uri, text string) []diag.Diagnostic {
	doc := source.NewDocument(text)
	s.docs[uri] = doc
	items := s.eng.Scan(doc)
	s.store.Set(uri, items)
	return items
}

// Change applies host edits in order and updates the diagnostics
// incrementally. Positions outside the document are clamped and traced.
func (s *Session) Change(uri string, changes []source.ContentChange) ([]diag.Diagnostic, error) {
	doc, ok := s.docs[uri]
	if !ok {
		err := fmt.Errorf("change %s: %w", uri, ErrNotOpen)
		trace.Error(s.eng.opts.Tracer, trace.ScopeDocument, "change", err, 0)
		return nil, err
	}
	next, edits := doc, make([]source.LineEdit, 0, len(changes))
	for _, ch := range changes {
		if ch.Range != nil {
			if _, err := next.Slice(*ch.Range); err != nil {
				trace.Error(s.eng.opts.Tracer, trace.ScopeDocument, "change-clamped", fmt.Errorf("change %s: %w", uri, err), 0)
			}
		}
		var e source.LineEdit
		next, e = next.Apply(ch)
		edits = append(edits, e)
	}
	prev, _ := s.store.Get(uri)
	items := s.eng.Update(prev, next, edits)
	s.docs[uri] = next
	s.store.Set(uri, items)
	return items, nil
}

// Close forgets uri and its diagnostics.
func (s *Session) Close(uri string) {
	delete(s.docs, uri)
	s.store.Close(uri)
}

func (s *Session) Diagnostics(uri string) ([]diag.Diagnostic, bool) {
	return s.store.Get(uri)
}

func (s *Session) Document(uri string) (*source.Document, bool) {
	doc, ok := s.docs[uri]
	return doc, ok
}

// URIs lists the open documents in sorted order.
func (s *Session) URIs() []string {
	return s.store.URIs()
}

// Reload switches the session to eng and rescans every open document.
func (s *Session) Reload(eng *Engine) {
	s.eng = eng
	for uri, doc := range s.docs {
		s.store.Set(uri, eng.Scan(doc))
	}
}
