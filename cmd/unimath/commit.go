package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unimath/internal/engine"
	"unimath/internal/source"
)

var commitCmd = &cobra.Command{
	Use:   "commit --at LINE:COL [--at LINE:COL...] [file]",
	Short: "Convert the commands in front of one or more cursors",
	Long: `Simulate the commit key: every command directly in front of a cursor is
replaced by its conversion and the resulting document is printed. With --write
the file is updated in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().StringSlice("at", nil, "cursor position as LINE:COL (1-based), repeatable")
	commitCmd.Flags().String("key", "tab", "key that triggered the commit ("+engine.SpaceKey+" always propagates)")
	commitCmd.Flags().String("format", "text", "output format (text|json)")
	commitCmd.Flags().Bool("write", false, "write the result back to the file")
	_ = commitCmd.MarkFlagRequired("at")
}

type commitEditJSON struct {
	Delete source.Range    `json:"delete"`
	Insert string          `json:"insert"`
	At     source.Position `json:"at"`
}

type commitOutput struct {
	Edits     []commitEditJSON `json:"edits"`
	Propagate bool             `json:"propagate"`
	Text      string           `json:"text"`
}

func runCommit(cmd *cobra.Command, args []string) error {
	atValues, err := cmd.Flags().GetStringSlice("at")
	if err != nil {
		return err
	}
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return &flagError{flag: "format", value: format, want: "text|json"}
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if write && (path == "" || path == "-") {
		return fmt.Errorf("--write needs a file argument")
	}

	cursors := make([]source.Position, 0, len(atValues))
	for _, v := range atValues {
		pos, err := parseCursor(v)
		if err != nil {
			return err
		}
		cursors = append(cursors, pos)
	}
	doc, err := readDocument(cmd, path)
	if err != nil {
		return err
	}
	eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	result := eng.Commit(doc, cursors, key)
	text, err := doc.ApplyEdits(result.TextEdits())
	if err != nil {
		return fmt.Errorf("failed to apply commit edits: %w", err)
	}
	if write && len(result.Edits) > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if format == "json" {
		out := commitOutput{Edits: make([]commitEditJSON, 0, len(result.Edits)), Propagate: result.Propagate, Text: text}
		for _, e := range result.Edits {
			out.Edits = append(out.Edits, commitEditJSON(e))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	if !write {
		fmt.Fprint(cmd.OutOrStdout(), text)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d edit(s), propagate=%t\n", len(result.Edits), result.Propagate)
	}
	return nil
}
