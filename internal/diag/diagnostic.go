package diag

import (
	"fmt"
	"slices"
	"strings"

	"unimath/internal/source"
)

type Diagnostic struct {
	Range       source.Range `json:"range" msgpack:"r"`
	Severity    Severity     `json:"severity" msgpack:"s"`
	Code        Code         `json:"code" msgpack:"c"`
	Message     string       `json:"message" msgpack:"m"`
	Text        string       `json:"text" msgpack:"t"`
	Conversions []string     `json:"conversions" msgpack:"v"`
}

// New builds a diagnostic with an explicit message.
func New(sev Severity, code Code, r source.Range, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Range: r, Message: msg}
}

// NewConvertible builds the hint emitted for text with known conversions.
func NewConvertible(code Code, r source.Range, text string, conversions []string) Diagnostic {
	return Diagnostic{
		Range:       r,
		Severity:    SevHint,
		Code:        code,
		Message:     ConvertibleMessage(text, conversions),
		Text:        text,
		Conversions: slices.Clone(conversions),
	}
}

// ConvertibleMessage lists every conversion of text.
func ConvertibleMessage(text string, conversions []string) string {
	return fmt.Sprintf("%q can be converted to %s", text, strings.Join(conversions, ", "))
}

// Equal compares every field, conversions included.
func (d Diagnostic) Equal(other Diagnostic) bool {
	return d.Range == other.Range &&
		d.Severity == other.Severity &&
		d.Code == other.Code &&
		d.Message == other.Message &&
		d.Text == other.Text &&
		slices.Equal(d.Conversions, other.Conversions)
}

// Line is the line the diagnostic sits on.
func (d Diagnostic) Line() int {
	return d.Range.Start.Line
}
