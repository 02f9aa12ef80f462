package diag

// Code classifies a diagnostic. Hosts match on it to offer quick-fixes, so it
// is an opaque configured string rather than a number.
type Code string

const (
	// CodeConvertible is the default code of scanner diagnostics.
	CodeConvertible Code = "unicode-math-input.convertible-symbol"
	// CodeLoadFile reports a file the CLI could not read.
	CodeLoadFile Code = "unimath.io.load"
)

func (c Code) String() string {
	return string(c)
}
