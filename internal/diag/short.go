package diag

import (
	"fmt"
	"strings"
)

// FormatShort renders one line per diagnostic:
//
//	hint <code> <path>:<line>:<col> <message>
//
// Lines and columns are one-based. Diagnostics are sorted first.
func FormatShort(path string, items []Diagnostic) string {
	if len(items) == 0 {
		return ""
	}
	sorted := make([]Diagnostic, len(items))
	copy(sorted, items)
	Sort(sorted)

	var b strings.Builder
	for i, d := range sorted {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s",
			strings.ToLower(d.Severity.String()), d.Code, path,
			d.Range.Start.Line+1, d.Range.Start.Character+1, sanitizeMessage(d.Message))
		if i < len(sorted)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
