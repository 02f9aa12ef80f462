// Package engine ties the conversion pieces together behind the operations an
// editor host calls: completion, commit, diagnostics and quick fixes.
//
// An Engine is immutable. A configuration change builds a new one with
// Reload; documents tracked by a Session are rescanned against it.
package engine

import (
	"fmt"
	"strconv"

	"unimath/internal/complete"
	"unimath/internal/config"
	"unimath/internal/convert"
	"unimath/internal/diag"
	"unimath/internal/fix"
	"unimath/internal/scan"
	"unimath/internal/segment"
	"unimath/internal/source"
	"unimath/internal/trace"
)

type Options struct {
	Tracer trace.Tracer
}

type Engine struct {
	cfg      *config.Config
	opts     Options
	triggers segment.TriggerSet
	conv     *convert.Converter
	gen      *complete.Generator
	scanner  *scan.Scanner
	warnings []string
}

// New validates cfg and builds the tables. Validation warnings do not fail
// construction; they are available from Warnings.
func New(cfg *config.Config, opts Options) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	warnings, err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = cfg.Clone()
	conv := convert.New(cfg.Fonts(), cfg.SymbolTable())
	e := &Engine{
		cfg:      cfg,
		opts:     opts,
		triggers: segment.TriggerSet(cfg.Triggers),
		conv:     conv,
		gen:      complete.New(conv, cfg.Triggers),
		scanner:  scan.New(conv, cfg.ScanOptions()),
		warnings: warnings,
	}
	for _, w := range warnings {
		trace.Point(opts.Tracer, trace.ScopeEngine, "config-warning", w, 0)
	}
	return e, nil
}

// Reload builds a new engine for cfg with the same options.
func (e *Engine) Reload(cfg *config.Config) (*Engine, error) {
	return New(cfg, e.opts)
}

// Config returns a copy of the configuration the engine was built from.
func (e *Engine) Config() *config.Config { return e.cfg.Clone() }

func (e *Engine) Warnings() []string { return append([]string(nil), e.warnings...) }

func (e *Engine) Converter() *convert.Converter { return e.conv }

func (e *Engine) Triggers() segment.TriggerSet { return e.triggers }

// Convert converts a word typed after a trigger.
func (e *Engine) Convert(word string) (string, bool) {
	return e.conv.Convert(word)
}

// Context segments the text in front of pos. Malformed positions are traced
// and reported as no context.
func (e *Engine) Context(src source.TextSource, pos source.Position) (segment.Context, bool) {
	ctx, ok, err := segment.At(src, pos, e.triggers)
	if err != nil {
		trace.Error(e.opts.Tracer, trace.ScopeLine, "context", err, 0)
		return segment.Context{}, false
	}
	return ctx, ok
}

// Complete lists completion candidates for the cursor at pos. It returns nil
// when no trigger precedes the cursor.
func (e *Engine) Complete(src source.TextSource, pos source.Position) []complete.Candidate {
	span := trace.Begin(e.opts.Tracer, trace.ScopeEngine, "complete", 0)
	ctx, ok := e.Context(src, pos)
	if !ok {
		span.End("no context")
		return nil
	}
	out := e.gen.Generate(ctx.Trigger.Str, ctx.Word.Str, ctx.Total())
	span.WithExtra("candidates", strconv.Itoa(len(out))).End(ctx.Trigger.Str + ctx.Word.Str)
	return out
}

// Scan computes the diagnostics of a whole document.
func (e *Engine) Scan(src source.TextSource) []diag.Diagnostic {
	span := trace.Begin(e.opts.Tracer, trace.ScopeEngine, "scan", 0)
	out := e.scanner.Scan(src)
	span.WithExtra("lines", strconv.Itoa(src.LineCount())).
		WithExtra("diagnostics", strconv.Itoa(len(out))).
		End("")
	return out
}

// Update recomputes diagnostics after edits, rescanning only edited lines.
func (e *Engine) Update(prev []diag.Diagnostic, src source.TextSource, edits []source.LineEdit) []diag.Diagnostic {
	span := trace.Begin(e.opts.Tracer, trace.ScopeEngine, "update", 0)
	out := e.scanner.Update(prev, src, edits)
	span.WithExtra("edits", strconv.Itoa(len(edits))).
		WithExtra("diagnostics", strconv.Itoa(len(out))).
		End("")
	return out
}

// Actions returns the quick fixes for this engine's diagnostics overlapping r.
func (e *Engine) Actions(items []diag.Diagnostic, r source.Range) []fix.Action {
	return fix.ActionsAt(items, e.cfg.DiagnosticCode, r)
}
