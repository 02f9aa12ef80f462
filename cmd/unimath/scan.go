package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"unimath/internal/diag"
	"unimath/internal/diagfmt"
	"unimath/internal/engine"
	"unimath/internal/pipeline"
	"unimath/internal/scancache"
	"unimath/internal/trace"
)

const cacheApp = "unimath"

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <file|directory>...",
	Short: "Report convertible commands in documents",
	Long: `Scan files for commands that can be converted to Unicode. Directories are
walked for text documents (` + extensionList + `).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

var extensionList = func() string {
	out := ""
	for i, ext := range pipeline.DefaultExtensions {
		if i > 0 {
			out += " "
		}
		out += ext
	}
	return out
}()

func init() {
	addPipelineFlags(scanCmd)
	scanCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	scanCmd.Flags().String("path-mode", "auto", "how to print paths (auto|absolute|relative|basename)")
	scanCmd.Flags().Int("context", 0, "lines of context around each diagnostic")
	scanCmd.Flags().Bool("suggest", false, "show available fixes")
	scanCmd.Flags().Bool("preview", false, "include before/after previews of fixes (json)")
	scanCmd.Flags().Bool("fail", false, "exit with status 1 when anything is reported")
}

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().Int("jobs", 0, "parallel workers (0 = number of CPUs)")
	cmd.Flags().Bool("no-cache", false, "do not read or write the scan cache")
	cmd.Flags().Bool("clear-cache", false, "drop every cached scan before running")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

type pipelineSettings struct {
	request *pipeline.Request
	ui      uiMode
	timings bool
}

// preparePipeline reads the shared flags and builds the request for args.
func preparePipeline(cmd *cobra.Command, args []string, eng *engine.Engine) (*pipelineSettings, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return nil, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return nil, err
	}

	files, err := pipeline.Expand(args, pipeline.DefaultExtensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no documents found")
	}

	var cache *scancache.Cache
	if !noCache {
		cache, err = scancache.Open(cacheApp)
		if err != nil {
			// Scanning works without a cache.
			trace.Error(trace.FromContext(cmd.Context()), trace.ScopeCommand, "cache-open", err, 0)
			cache = nil
		}
	}
	if clearCache && cache != nil {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	return &pipelineSettings{
		request: &pipeline.Request{
			Files:          files,
			Engine:         eng,
			Cache:          cache,
			Jobs:           jobs,
			MaxDiagnostics: maxDiagnostics,
		},
		ui:      mode,
		timings: timings,
	}, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return &flagError{flag: "format", value: format, want: "pretty|short|json"}
	}
	pathModeFlag, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return err
	}
	pathMode, ok := diagfmt.ParsePathMode(pathModeFlag)
	if !ok {
		return &flagError{flag: "path-mode", value: pathModeFlag, want: "auto|absolute|relative|basename"}
	}
	contextLines, err := cmd.Flags().GetInt("context")
	if err != nil {
		return err
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return err
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return err
	}
	failOnReport, err := cmd.Flags().GetBool("fail")
	if err != nil {
		return err
	}

	eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	settings, err := preparePipeline(cmd, args, eng)
	if err != nil {
		return err
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeCommand, "scan", 0)
	ctx := trace.WithSpan(cmd.Context(), span)
	result, err := runPipeline(ctx, "scanning", settings.ui, settings.request)
	span.End("")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	results := formatResults(result)
	wd, _ := os.Getwd()
	switch format {
	case "pretty":
		err = diagfmt.Pretty(out, results, diagfmt.PrettyOpts{
			Color:     useColor(cmd),
			Context:   contextLines,
			PathMode:  pathMode,
			BaseDir:   wd,
			ShowFixes: suggest || preview,
		})
	case "short":
		err = diagfmt.Short(out, results, pathMode, wd)
	case "json":
		err = diagfmt.JSON(out, results, diagfmt.JSONOpts{
			PathMode:        pathMode,
			BaseDir:         wd,
			IncludeFixes:    suggest || preview,
			IncludePreviews: preview,
		})
	}
	if err != nil {
		return err
	}

	reportFailures(cmd.ErrOrStderr(), result)
	if settings.timings {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Timer.Summary())
	}
	if result.Failed() {
		return fmt.Errorf("some files could not be scanned")
	}
	if failOnReport && result.Count() > 0 {
		return fmt.Errorf("%d convertible command(s) found", result.Count())
	}
	return nil
}

func formatResults(result *pipeline.Result) []diagfmt.FileResult {
	out := make([]diagfmt.FileResult, 0, len(result.Files))
	for _, f := range result.Files {
		if f.File == nil {
			continue
		}
		items := append([]diag.Diagnostic(nil), f.Diagnostics...)
		diag.Sort(items)
		out = append(out, diagfmt.FileResult{File: f.File, Items: items})
	}
	return out
}

func reportFailures(w io.Writer, result *pipeline.Result) {
	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", f.Path, f.Err)
		}
	}
}
