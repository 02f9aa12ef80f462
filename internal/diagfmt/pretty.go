package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"unimath/internal/diag"
	"unimath/internal/fix"
	"unimath/internal/source"
)

// Pretty renders diagnostics for humans:
//
//	notes.md:1:5: HINT unicode-math-input.convertible-symbol: "\alpha" can be converted to α
//	  1 | let \alpha
//	    |     ^~~~~~
//	    = fix: Convert to α
//
// Items are printed in the order given; callers sort beforehand.
func Pretty(w io.Writer, results []FileResult, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	var b strings.Builder
	for _, res := range results {
		if res.File == nil {
			continue
		}
		path := opts.PathMode.format(res.File, opts.BaseDir)
		for _, d := range res.Items {
			writeDiagnostic(&b, p, path, res.File.Doc, d, opts)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type palette struct {
	path, gutter, fix *color.Color
	sev               map[diag.Severity]*color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		path:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		fix:    mk(color.FgGreen),
		sev: map[diag.Severity]*color.Color{
			diag.SevHint:    mk(color.FgCyan, color.Bold),
			diag.SevInfo:    mk(color.FgBlue, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevError:   mk(color.FgRed, color.Bold),
		},
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	if c, ok := p.sev[s]; ok {
		return c
	}
	return p.path
}

func writeDiagnostic(b *strings.Builder, p palette, path string, doc *source.Document, d diag.Diagnostic, opts PrettyOpts) {
	sev := p.severity(d.Severity)
	fmt.Fprintf(b, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%s", path, d.Range.Start),
		sev.Sprint(d.Severity.String()),
		d.Code,
		d.Message,
	)
	if doc == nil {
		return
	}

	line := d.Range.Start.Line
	first := max(line-opts.Context, 0)
	last := min(line+opts.Context, doc.LineCount()-1)
	width := len(strconv.Itoa(last + 1))
	blank := strings.Repeat(" ", width)

	for n := first; n <= last; n++ {
		text, err := doc.Line(n)
		if err != nil {
			break
		}
		fmt.Fprintf(b, "%s %s\n", p.gutter.Sprintf("%*d |", width, n+1), displayLine(text))
		if n != line {
			continue
		}
		pad, span := underline(text, d.Range)
		fmt.Fprintf(b, "%s %s%s\n",
			p.gutter.Sprintf("%s |", blank),
			strings.Repeat(" ", pad),
			sev.Sprint("^"+strings.Repeat("~", span-1)),
		)
	}
	if opts.ShowFixes {
		for _, a := range fix.Actions(d) {
			fmt.Fprintf(b, "%s %s\n", p.gutter.Sprintf("%s =", blank), p.fix.Sprintf("fix: %s", a.Title))
		}
	}
}

// displayLine replaces tabs so that display columns match runewidth.
func displayLine(text string) string {
	return strings.ReplaceAll(text, "\t", " ")
}

// underline returns the display column where the range starts on its first
// line and how many columns the caret run covers, at least one.
func underline(text string, r source.Range) (pad, span int) {
	from, err := source.ByteOffset(text, r.Start.Character)
	if err != nil {
		from = len(text)
	}
	to := len(text)
	if r.SingleLine() {
		if off, err := source.ByteOffset(text, r.End.Character); err == nil {
			to = off
		}
	}
	to = max(to, from)
	pad = runewidth.StringWidth(displayLine(text[:from]))
	span = max(runewidth.StringWidth(displayLine(text[from:to])), 1)
	return pad, span
}
