package engine

import (
	"slices"
	"strconv"

	"unimath/internal/source"
	"unimath/internal/trace"
)

// SpaceKey is the commit key that is always passed on to the host.
const SpaceKey = "space"

// Edit replaces Delete with Insert. At is where the inserted text begins.
type Edit struct {
	Delete source.Range
	Insert string
	At     source.Position
}

type CommitResult struct {
	Edits []Edit
	// Propagate tells the host to perform the key's normal action as well.
	Propagate bool
}

// TextEdits converts the result for source.Document.ApplyEdits.
func (r CommitResult) TextEdits() []source.TextEdit {
	out := make([]source.TextEdit, 0, len(r.Edits))
	for _, e := range r.Edits {
		out = append(out, source.TextEdit{Range: e.Delete, NewText: e.Insert})
	}
	return out
}

// Commit converts the command in front of every cursor. Cursors are handled
// independently: one without a convertible command, or with a malformed
// position, does not affect the others. Cursors inside the same command
// produce a single edit, the one deleting the most text.
func (e *Engine) Commit(src source.TextSource, cursors []source.Position, key string) CommitResult {
	span := trace.Begin(e.opts.Tracer, trace.ScopeEngine, "commit", 0)
	var res CommitResult
	for _, pos := range cursors {
		ctx, ok := e.Context(src, pos)
		if !ok {
			continue
		}
		converted, ok := e.conv.Convert(ctx.Word.Str)
		if !ok {
			trace.Point(e.opts.Tracer, trace.ScopeLine, "commit-skip", ctx.Trigger.Str+ctx.Word.Str, span.ID())
			continue
		}
		total := ctx.Total()
		res.Edits = mergeEdit(res.Edits, Edit{Delete: total, Insert: converted, At: total.Start})
	}
	res.Propagate = len(res.Edits) == 0 || key == SpaceKey
	span.WithExtra("edits", strconv.Itoa(len(res.Edits))).
		WithExtra("propagate", strconv.FormatBool(res.Propagate)).
		End(key)
	return res
}

// mergeEdit adds e unless it collides with accepted edits. A collision keeps
// whichever side deletes more; on a tie the earlier edit stays. The result
// never holds two overlapping or identical deletions.
func mergeEdit(edits []Edit, e Edit) []Edit {
	var clash []int
	for i, prev := range edits {
		if prev.Delete == e.Delete || prev.Delete.Overlaps(e.Delete) {
			clash = append(clash, i)
		}
	}
	if len(clash) == 0 {
		return append(edits, e)
	}
	for _, i := range clash {
		if edits[i].Delete.Len() >= e.Delete.Len() {
			return edits
		}
	}
	edits[clash[0]] = e
	for _, i := range slices.Backward(clash[1:]) {
		edits = slices.Delete(edits, i, i+1)
	}
	return edits
}
