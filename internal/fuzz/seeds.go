package fuzztests

import (
	"testing"
	"unicode/utf8"
)

const maxFuzzInput = 16 << 10

var documentSeeds = []string{
	"",
	`\alpha`,
	"let \\alpha be \\beta\n\\to end\n",
	`\mathbf{abc} and \mathbb{R}`,
	`\mathbf{a!} \_{12} \^{n}`,
	"x.\\alpha",
	"\\alpha UNICODE-MATH-INPUT: Do not warn current line\n\\beta",
	"{\n}\n\\\n\\\\\n",
	"naïve \\gamma 😀 \\delta",
	"\\bf:x \\cal:A \\mathfrak{Z}",
}

func addDocumentSeeds(f *testing.F) {
	for i, doc := range documentSeeds {
		insert := documentSeeds[(i+1)%len(documentSeeds)]
		f.Add(doc, uint16(i*3), uint16(i), insert)
	}
}

// usable drops inputs the harnesses do not model: oversized text, invalid
// UTF-8, and carriage returns, which hosts normalise before calling in.
func usable(parts ...string) bool {
	for _, s := range parts {
		if len(s) > maxFuzzInput || !utf8.ValidString(s) {
			return false
		}
		for i := 0; i < len(s); i++ {
			if s[i] == '\r' {
				return false
			}
		}
	}
	return true
}
