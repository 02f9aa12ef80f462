package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"unimath/internal/config"
	"unimath/internal/engine"
	"unimath/internal/source"
	"unimath/internal/trace"
)

const configFileHint = config.FileName

type flagError struct {
	flag  string
	value string
	want  string
}

func (e *flagError) Error() string {
	return fmt.Sprintf("invalid --%s value %q (expected %s)", e.flag, e.value, e.want)
}

// loadEngine discovers the configuration and builds an engine traced with the
// command's tracer. Validation warnings go to stderr unless --quiet is set.
func loadEngine(cmd *cobra.Command) (*engine.Engine, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Discover(explicit, wd)
	if err != nil {
		return nil, err
	}
	eng, err := engine.New(cfg, engine.Options{Tracer: trace.FromContext(cmd.Context())})
	if err != nil {
		return nil, err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, err
	}
	if !quiet {
		printWarnings(cmd.ErrOrStderr(), cfg.Path, eng.Warnings())
	}
	return eng, nil
}

func printWarnings(w io.Writer, path string, warnings []string) {
	if path == "" {
		path = "configuration"
	}
	for _, msg := range warnings {
		fmt.Fprintf(w, "%s: warning: %s\n", path, msg)
	}
}

// readDocument returns the contents of path, or of stdin when path is empty
// or "-".
func readDocument(cmd *cobra.Command, path string) (*source.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return source.NewDocument(string(data)), nil
}

// parseCursor reads a "LINE:COL" cursor. Both parts are 1-based on the
// command line; the column counts UTF-16 code units like an editor host does.
func parseCursor(value string) (source.Position, error) {
	lineStr, colStr, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return source.Position{}, fmt.Errorf("invalid cursor %q (expected LINE:COL)", value)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return source.Position{}, fmt.Errorf("invalid cursor line %q: %w", lineStr, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return source.Position{}, fmt.Errorf("invalid cursor column %q: %w", colStr, err)
	}
	if line < 1 || col < 1 {
		return source.Position{}, fmt.Errorf("invalid cursor %q (line and column start at 1)", value)
	}
	return source.Position{Line: line - 1, Character: col - 1}, nil
}
