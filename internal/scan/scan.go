// Package scan flags text that would convert if the user committed it.
//
// Every maximal match of WordPattern on a line is tested against each
// configured trigger. Lines containing the do-not-warn marker are skipped.
// Diagnostics never span lines, which is what makes Update exact.
package scan

import (
	"regexp"
	"slices"
	"strings"

	"unimath/internal/convert"
	"unimath/internal/diag"
	"unimath/internal/source"
)

// WordPattern matches the characters a command may consist of.
var WordPattern = regexp.MustCompile(`[\w|()\[\]:!#$%&*+./<=>?@^\-~\\;{}]+`)

const DefaultDoNotWarn = "UNICODE-MATH-INPUT: Do not warn current line"

type Options struct {
	Triggers []string
	// DoNotWarn disables scanning of any line containing it. Empty disables
	// the marker.
	DoNotWarn string
	Code      diag.Code
	// RequireTrigger only tests matches that start with a trigger.
	RequireTrigger bool
}

// Scanner is immutable and safe for concurrent use.
type Scanner struct {
	conv *convert.Converter
	opts Options
}

func New(conv *convert.Converter, opts Options) *Scanner {
	if opts.Code == "" {
		opts.Code = diag.CodeConvertible
	}
	opts.Triggers = slices.Clone(opts.Triggers)
	return &Scanner{conv: conv, opts: opts}
}

// Conversions returns the distinct conversions of a matched token in
// first-seen order.
func (s *Scanner) Conversions(match string) []string {
	var out []string
	for _, trigger := range s.opts.Triggers {
		word := match
		switch {
		case trigger != "" && strings.HasPrefix(match, trigger):
			word = match[len(trigger):]
		case s.opts.RequireTrigger:
			continue
		}
		converted, ok := s.conv.Convert(word)
		if !ok || slices.Contains(out, converted) {
			continue
		}
		out = append(out, converted)
	}
	return out
}

// Skipped reports whether text carries the do-not-warn marker.
func (s *Scanner) Skipped(text string) bool {
	return s.opts.DoNotWarn != "" && strings.Contains(text, s.opts.DoNotWarn)
}

// ScanLine reports the diagnostics of a single line.
func (s *Scanner) ScanLine(line int, text string, r diag.Reporter) {
	if text == "" || s.Skipped(text) {
		return
	}
	for _, loc := range WordPattern.FindAllStringIndex(text, -1) {
		match := text[loc[0]:loc[1]]
		conversions := s.Conversions(match)
		if len(conversions) == 0 {
			continue
		}
		start := source.UTF16Len(text[:loc[0]])
		end := start + source.UTF16Len(match)
		r.Report(diag.NewConvertible(s.opts.Code, source.LineRange(line, start, end), match, conversions))
	}
}

// Scan rescans the whole document.
func (s *Scanner) Scan(src source.TextSource) []diag.Diagnostic {
	rep := &diag.SliceReporter{Items: []diag.Diagnostic{}}
	for n := range src.LineCount() {
		text, err := src.Line(n)
		if err != nil {
			continue
		}
		s.ScanLine(n, text, rep)
	}
	diag.Sort(rep.Items)
	return rep.Items
}
