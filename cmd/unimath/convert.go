package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unimath/internal/segment"
)

var convertCmd = &cobra.Command{
	Use:   "convert <word>...",
	Short: "Convert command words to Unicode",
	Long: `Convert each word and print the result on its own line. A leading
trigger is optional: "alpha", "\alpha" and "mathbf{x}" are all accepted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

var errNotConvertible = errors.New("some words could not be converted")

func runConvert(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	failed := false
	for _, arg := range args {
		word := stripTrigger(arg, eng.Triggers())
		result, ok := eng.Convert(word)
		if !ok {
			failed = true
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: no conversion\n", arg)
			continue
		}
		fmt.Fprintln(out, result)
	}
	if failed {
		return errNotConvertible
	}
	return nil
}

// stripTrigger removes the longest trigger that prefixes word.
func stripTrigger(word string, triggers segment.TriggerSet) string {
	best := ""
	for _, t := range triggers {
		if len(t) > len(best) && strings.HasPrefix(word, t) {
			best = t
		}
	}
	return word[len(best):]
}
