// Package pipeline runs the scanner and the fixer over many files at once,
// reporting per-file progress to a sink.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"unimath/internal/diag"
	"unimath/internal/engine"
	"unimath/internal/fix"
	"unimath/internal/observ"
	"unimath/internal/scancache"
	"unimath/internal/source"
	"unimath/internal/trace"
)

// Request configures one run.
type Request struct {
	Files  []string // already expanded, see Expand
	Engine *engine.Engine
	// Cache is consulted before scanning; nil disables caching.
	Cache          *scancache.Cache
	Jobs           int
	MaxDiagnostics int
	Progress       ProgressSink
	// Fix, when set, applies quick fixes after scanning.
	Fix *fix.ApplyOptions
	// Write saves fixed files back to disk.
	Write bool
}

// FileResult is the outcome for one file. File is nil when loading failed.
type FileResult struct {
	Path        string
	File        *source.File
	Diagnostics []diag.Diagnostic
	Cached      bool
	Fix         *fix.ApplyResult
	Written     bool
	Err         error
}

type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Timer   *observ.Timer
}

// Count is the number of diagnostics across all files.
func (r *Result) Count() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Diagnostics)
	}
	return n
}

// Failed reports whether any file could not be processed.
func (r *Result) Failed() bool {
	for _, f := range r.Files {
		if f.Err != nil {
			return true
		}
	}
	return false
}

// Run loads every file, then scans (and optionally fixes) them in parallel.
// Per-file problems are recorded in FileResult.Err; the returned error is
// reserved for cancellation.
func Run(ctx context.Context, req *Request) (*Result, error) {
	if req == nil || req.Engine == nil {
		return nil, errors.New("pipeline: missing engine")
	}
	tracer := trace.FromContext(ctx)
	res := &Result{
		FileSet: source.NewFileSet(),
		Files:   make([]FileResult, len(req.Files)),
		Timer:   observ.NewTimer(),
	}
	emitQueued(req.Progress, req.Files)

	loadIdx := res.Timer.Begin("load")
	ids := make([]source.FileID, len(req.Files))
	loaded := 0
	for i, path := range req.Files {
		res.Files[i].Path = path
		emit(req.Progress, path, StageLoad, StatusWorking, nil)
		id, err := res.FileSet.Load(path)
		if err != nil {
			err = fmt.Errorf("failed to load file: %w", err)
			res.Files[i].Err = err
			res.Files[i].Diagnostics = []diag.Diagnostic{
				diag.New(diag.SevError, diag.CodeLoadFile, source.Range{}, err.Error()),
			}
			trace.Error(tracer, trace.ScopeDocument, "load", err, trace.CurrentSpan(ctx))
			emit(req.Progress, path, StageLoad, StatusError, err)
			continue
		}
		ids[i] = id
		loaded++
	}
	res.Timer.End(loadIdx, strconv.Itoa(loaded)+" files")

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	fingerprint := req.Engine.Config().Fingerprint()

	processIdx := res.Timer.Begin("process")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(min(jobs, len(req.Files)), 1))
	for i := range req.Files {
		if res.Files[i].Err != nil {
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// Results are written by index, one goroutine per slot.
			res.Files[i] = processFile(gctx, req, res.FileSet, ids[i], req.Files[i], fingerprint)
			return nil
		})
	}
	err := g.Wait()
	res.Timer.End(processIdx, strconv.Itoa(res.Count())+" diagnostics")
	if err != nil {
		return res, err
	}
	return res, nil
}

func processFile(ctx context.Context, req *Request, fileSet *source.FileSet, id source.FileID, path string, fingerprint string) FileResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDocument, "doc:"+path, trace.CurrentSpan(ctx))
	defer span.End("")

	file := fileSet.Get(id)
	out := FileResult{Path: path, File: file}
	key := scancache.KeyFor(file.Hash, fingerprint)

	emit(req.Progress, path, StageCache, StatusWorking, nil)
	items, hit, err := req.Cache.Get(key)
	if err != nil {
		// A corrupt entry is a miss; it is overwritten below.
		trace.Error(tracer, trace.ScopeDocument, "cache-get", err, span.ID())
	}
	if hit {
		out.Cached = true
		span.WithExtra("cached", "true")
	} else {
		emit(req.Progress, path, StageScan, StatusWorking, nil)
		items = req.Engine.Scan(file.Doc)
		if err := req.Cache.Put(key, path, items); err != nil {
			trace.Error(tracer, trace.ScopeDocument, "cache-put", err, span.ID())
		}
	}
	bag := diag.NewBag(req.MaxDiagnostics)
	for _, d := range items {
		if !bag.Add(d) {
			break
		}
	}
	out.Diagnostics = bag.Items()

	if req.Fix != nil {
		emit(req.Progress, path, StageFix, StatusWorking, nil)
		opts := *req.Fix
		if opts.Code == "" {
			opts.Code = req.Engine.Config().DiagnosticCode
		}
		result, err := fix.ApplyDiagnostics(file.Doc.Text(), items, opts)
		out.Fix = result
		if err != nil && !errors.Is(err, fix.ErrNoFixes) {
			out.Err = err
			emit(req.Progress, path, StageFix, StatusError, err)
			return out
		}
		if req.Write && result != nil && len(result.Applied) > 0 {
			emit(req.Progress, path, StageWrite, StatusWorking, nil)
			if err := fileSet.Save(id, result.Text); err != nil {
				out.Err = fmt.Errorf("failed to save %s: %w", path, err)
				emit(req.Progress, path, StageWrite, StatusError, out.Err)
				return out
			}
			out.Written = true
		}
	}
	emit(req.Progress, path, StageScan, StatusDone, nil)
	return out
}
