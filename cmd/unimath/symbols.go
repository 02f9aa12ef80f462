package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"unimath/internal/charmap"
	"unimath/internal/resolve"
	"unimath/internal/symbols"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [filter]",
	Short: "List the known commands",
	Long:  "Print the symbol table, or with --fonts the font commands, optionally filtered by a substring of the name.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().Bool("fonts", false, "list font commands instead of symbols")
	symbolsCmd.Flags().Bool("plain", false, "print tab separated rows without a table border")
}

const fontSample = "ABCabc123"

func runSymbols(cmd *cobra.Command, args []string) error {
	fonts, err := cmd.Flags().GetBool("fonts")
	if err != nil {
		return err
	}
	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return err
	}
	filter := ""
	if len(args) == 1 {
		filter = args[0]
	}
	eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	var headers []string
	var rows [][]string
	if fonts {
		headers = []string{"command", "font", "sample"}
		rows = fontRows(eng.Converter().Fonts(), filter)
	} else {
		headers = []string{"command", "value"}
		rows = symbolRows(eng.Converter().Symbols(), filter)
	}
	return renderRows(cmd.OutOrStdout(), headers, rows, plain || !useColor(cmd))
}

func symbolRows(t *symbols.Table, filter string) [][]string {
	var rows [][]string
	for _, e := range t.Entries() {
		if filter != "" && !strings.Contains(e.Name, filter) {
			continue
		}
		rows = append(rows, []string{e.Name, e.Value})
	}
	return rows
}

func fontRows(t *resolve.Table, filter string) [][]string {
	var rows [][]string
	add := func(cmd resolve.Command, braced bool) {
		if filter != "" && !strings.Contains(cmd.Prefix, filter) {
			return
		}
		name := cmd.Prefix
		if braced {
			name = resolve.Wrap(cmd, "…")
		}
		rows = append(rows, []string{name, cmd.Font.String(), fontSampleFor(cmd.Font)})
	}
	for _, c := range t.Braced() {
		add(c, true)
	}
	for _, c := range t.Legacy() {
		add(c, false)
	}
	return rows
}

// fontSampleFor maps the characters the font supports and drops the rest.
func fontSampleFor(font charmap.Font) string {
	var b strings.Builder
	for _, r := range fontSample {
		if mapped, ok := charmap.Lookup(font, r); ok {
			b.WriteRune(mapped)
		}
	}
	return b.String()
}

func renderRows(w io.Writer, headers []string, rows [][]string, plain bool) error {
	if plain {
		for _, row := range rows {
			if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
		return nil
	}
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}
