// Package complete builds completion candidates for a trigger and word.
package complete

import (
	"strings"

	"unimath/internal/convert"
	"unimath/internal/source"
)

type Kind uint8

const (
	KindText     Kind = iota + 1 // converted preview
	KindKeyword                  // font command or prefix
	KindConstant                 // symbol
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindKeyword:
		return "keyword"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Candidate is one completion item. Range is always the trigger+word span so
// accepting it replaces exactly what was typed.
type Candidate struct {
	Label      string       `json:"label"`
	Detail     string       `json:"detail,omitempty"`
	InsertText string       `json:"insertText"`
	Range      source.Range `json:"range"`
	IsSnippet  bool         `json:"isSnippet,omitempty"`
	Kind       Kind         `json:"kind"`
}

// Generator renders the candidate list. The per-trigger lists are computed
// once in New.
type Generator struct {
	conv      *convert.Converter
	byTrigger map[string][]Candidate
}

func New(conv *convert.Converter, triggers []string) *Generator {
	g := &Generator{conv: conv, byTrigger: make(map[string][]Candidate, len(triggers))}
	for _, trigger := range triggers {
		if _, ok := g.byTrigger[trigger]; ok {
			continue
		}
		g.byTrigger[trigger] = g.build(trigger)
	}
	return g
}

func (g *Generator) build(trigger string) []Candidate {
	fonts := g.conv.Fonts()
	syms := g.conv.Symbols()
	braced, legacy := fonts.Braced(), fonts.Legacy()
	out := make([]Candidate, 0, len(braced)+len(legacy)+syms.Len())
	for _, cmd := range braced {
		out = append(out, Candidate{
			Label:      trigger + cmd.Prefix + "{}",
			Detail:     cmd.Font.String(),
			InsertText: EscapeSnippet(trigger+cmd.Prefix) + "{$1}",
			IsSnippet:  true,
			Kind:       KindKeyword,
		})
	}
	for _, cmd := range legacy {
		out = append(out, Candidate{
			Label:      trigger + cmd.Prefix,
			Detail:     cmd.Font.String(),
			InsertText: trigger + cmd.Prefix,
			Kind:       KindKeyword,
		})
	}
	for _, e := range syms.Entries() {
		out = append(out, Candidate{
			Label:      trigger + e.Name,
			Detail:     e.Value,
			InsertText: e.Value,
			Kind:       KindConstant,
		})
	}
	return out
}

// Generate returns every candidate for trigger, all carrying total. When word
// already converts through a font command the converted text comes first.
func (g *Generator) Generate(trigger, word string, total source.Range) []Candidate {
	base, ok := g.byTrigger[trigger]
	if !ok {
		base = g.build(trigger)
	}
	out := make([]Candidate, 0, len(base)+1)
	if preview, ok := g.preview(trigger, word); ok {
		out = append(out, preview)
	}
	out = append(out, base...)
	for i := range out {
		out[i].Range = total
	}
	return out
}

func (g *Generator) preview(trigger, word string) (Candidate, bool) {
	if _, ok := g.conv.Resolve(word); !ok {
		return Candidate{}, false
	}
	converted, ok := g.conv.Convert(word)
	if !ok {
		return Candidate{}, false
	}
	return Candidate{
		Label:      trigger + word,
		Detail:     converted,
		InsertText: converted,
		Kind:       KindText,
	}, true
}

var snippetEscaper = strings.NewReplacer(`\`, `\\`, `$`, `\$`, `}`, `\}`)

// EscapeSnippet escapes the characters that are special in snippet syntax.
func EscapeSnippet(s string) string {
	return snippetEscaper.Replace(s)
}
