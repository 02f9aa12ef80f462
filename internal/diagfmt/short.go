package diagfmt

import (
	"fmt"
	"io"

	"unimath/internal/diag"
)

// Short writes one line per diagnostic in the diag.FormatShort layout, which
// is stable enough for golden files and grep.
func Short(w io.Writer, results []FileResult, mode PathMode, baseDir string) error {
	for _, res := range results {
		if res.File == nil {
			continue
		}
		text := diag.FormatShort(mode.format(res.File, baseDir), res.Items)
		if text == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
