package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"unimath/internal/complete"
)

var completeCmd = &cobra.Command{
	Use:   "complete --at LINE:COL [file]",
	Short: "List completion candidates at a cursor",
	Long:  "Read a document (a file, or stdin when omitted) and list the completion candidates for the command in front of the cursor.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runComplete,
}

func init() {
	completeCmd.Flags().String("at", "", "cursor position as LINE:COL (1-based)")
	completeCmd.Flags().String("format", "text", "output format (text|json)")
	_ = completeCmd.MarkFlagRequired("at")
}

func runComplete(cmd *cobra.Command, args []string) error {
	at, err := cmd.Flags().GetString("at")
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
	pos, err := parseCursor(at)
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := readDocument(cmd, path)
	if err != nil {
		return err
	}
	eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	candidates := eng.Complete(doc, pos)
	if format == "json" {
		if candidates == nil {
			candidates = []complete.Candidate{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, c := range candidates {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Label, c.Kind, c.Detail)
	}
	return tw.Flush()
}
