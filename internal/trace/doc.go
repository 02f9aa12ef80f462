// Package trace records what the conversion engine does while it works.
//
// Tracing is off by default and costs nothing in that state: New returns
// the Nop tracer and Begin hands back an inert Span. When enabled from the
// command line, events stream to a writer, collect in a ring buffer for a
// post-mortem dump, or both:
//
//	unimath scan --trace=- --trace-level=detail notes.md
//
// # Scopes
//
// Events carry a scope that orders them from coarse to fine:
//
//   - ScopeCommand: one CLI invocation or one editor request
//   - ScopeEngine: engine operations (scan, update, complete, commit)
//   - ScopeDocument: per-document work inside a batch
//   - ScopeLine: individual lines and ranges
//
// The Level decides how deep a tracer listens; see Level.ShouldEmit.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeEngine, "scan", 0)
//	defer span.End("")
package trace
