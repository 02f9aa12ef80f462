package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"unimath/internal/fix"
	"unimath/internal/pipeline"
	"unimath/internal/trace"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|directory>...",
	Short: "Apply conversions to documents",
	Long:  "Scan documents, then apply the available conversions according to the chosen strategy and write the files back.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	addPipelineFlags(fixCmd)
	fixCmd.Flags().Bool("all", false, "apply every unambiguous conversion")
	fixCmd.Flags().Bool("once", false, "apply the first available conversion (default)")
	fixCmd.Flags().String("id", "", "apply the fix with a specific identifier")
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing")
}

func readApplyOptions(cmd *cobra.Command) (fix.ApplyOptions, error) {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fix.ApplyOptions{}, err
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return fix.ApplyOptions{}, err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fix.ApplyOptions{}, err
	}
	if targetID != "" && (applyAll || applyOnce) {
		return fix.ApplyOptions{}, fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnce {
		return fix.ApplyOptions{}, fmt.Errorf("--all and --once are mutually exclusive")
	}
	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}
	return fix.ApplyOptions{Mode: mode, TargetID: targetID}, nil
}

func runFix(cmd *cobra.Command, args []string) error {
	opts, err := readApplyOptions(cmd)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
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
	settings.request.Fix = &opts
	settings.request.Write = !dryRun

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeCommand, "fix", 0).
		WithExtra("mode", opts.Mode.String())
	ctx := trace.WithSpan(cmd.Context(), span)
	result, err := runPipeline(ctx, "fixing", settings.ui, settings.request)
	span.End("")
	if err != nil {
		return err
	}

	applied := printFixSummary(cmd.OutOrStdout(), result, dryRun)
	reportFailures(cmd.ErrOrStderr(), result)
	if settings.timings {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Timer.Summary())
	}
	if result.Failed() {
		return fmt.Errorf("some files could not be fixed")
	}
	if applied == 0 && opts.Mode == fix.ApplyModeID {
		return fmt.Errorf("no fix with id %q", opts.TargetID)
	}
	return nil
}

// printFixSummary lists applied and skipped fixes per file and returns the
// number applied.
func printFixSummary(w io.Writer, result *pipeline.Result, dryRun bool) int {
	verb := "applied"
	if dryRun {
		verb = "would apply"
	}
	total := 0
	for _, f := range result.Files {
		if f.Fix == nil {
			continue
		}
		for _, a := range f.Fix.Applied {
			fmt.Fprintf(w, "%s:%s: %s %s (%s)\n", f.Path, a.Range.Start, verb, a.Title, a.ID)
		}
		for _, s := range f.Fix.Skipped {
			fmt.Fprintf(w, "%s: skipped %s: %s\n", f.Path, s.Title, s.Reason)
		}
		total += len(f.Fix.Applied)
	}
	if total == 0 {
		fmt.Fprintln(w, "nothing to fix")
	}
	return total
}
