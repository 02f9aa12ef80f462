package diagfmt

import (
	"encoding/json"
	"io"

	"unimath/internal/fix"
	"unimath/internal/source"
)

// LocationJSON is a one-based line/column location.
type LocationJSON struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
}

// FixJSON is one quick fix of a diagnostic.
type FixJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	NewText     string `json:"new_text"`
	IsPreferred bool   `json:"is_preferred,omitempty"`
	BeforeLine  string `json:"before_line,omitempty"`
	AfterLine   string `json:"after_line,omitempty"`
}

// DiagnosticJSON is a diagnostic in JSON output.
type DiagnosticJSON struct {
	Severity    string       `json:"severity"`
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	Text        string       `json:"text"`
	Conversions []string     `json:"conversions"`
	Location    LocationJSON `json:"location"`
	Fixes       []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the root of JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(path string, r source.Range) LocationJSON {
	return LocationJSON{
		File:      path,
		StartLine: r.Start.Line + 1,
		StartCol:  r.Start.Character + 1,
		EndLine:   r.End.Line + 1,
		EndCol:    r.End.Character + 1,
	}
}

// BuildDiagnosticsOutput assembles JSON output without serialising it.
func BuildDiagnosticsOutput(results []FileResult, opts JSONOpts) DiagnosticsOutput {
	diagnostics := make([]DiagnosticJSON, 0)
	for _, res := range results {
		if res.File == nil {
			continue
		}
		path := opts.PathMode.format(res.File, opts.BaseDir)
		for _, d := range res.Items {
			if opts.Max > 0 && len(diagnostics) >= opts.Max {
				break
			}
			dj := DiagnosticJSON{
				Severity:    d.Severity.String(),
				Code:        string(d.Code),
				Message:     d.Message,
				Text:        d.Text,
				Conversions: append([]string{}, d.Conversions...),
				Location:    makeLocation(path, d.Range),
			}
			if opts.IncludeFixes {
				for _, a := range fix.Actions(d) {
					fj := FixJSON{
						ID:          a.ID,
						Title:       a.Title,
						NewText:     a.Replacement,
						IsPreferred: a.Preferred,
					}
					if opts.IncludePreviews {
						if preview, err := buildFixPreview(res.File.Doc, a); err == nil {
							fj.BeforeLine = preview.before
							fj.AfterLine = preview.after
						}
					}
					dj.Fixes = append(dj.Fixes, fj)
				}
			}
			diagnostics = append(diagnostics, dj)
		}
	}
	return DiagnosticsOutput{Diagnostics: diagnostics, Count: len(diagnostics)}
}

// JSON writes diagnostics as indented JSON.
func JSON(w io.Writer, results []FileResult, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(results, opts))
}
