package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"

	"fortio.org/safecast"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r alone.
// The flag reports whether at least one pair was replaced.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i++
			changed = true
			continue
		}
		out = append(out, content[i])
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bom) {
		return content[len(bom):], true
	}
	return content, false
}

// restoreLayout undoes normalizeCRLF and removeBOM according to flags.
func restoreLayout(content []byte, flags FileFlags) []byte {
	if flags&FileNormalizedCRLF != 0 {
		content = bytes.ReplaceAll(content, []byte("\n"), []byte("\r\n"))
	}
	if flags&FileHadBOM != 0 {
		content = append(slices.Clone(bom), content...)
	}
	return content
}

// buildLineIndex records the byte offset of every '\n' in text.
func buildLineIndex(text string) []uint32 {
	out := make([]uint32, 0, 16)
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		off, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("line offset overflow: %w", err))
		}
		out = append(out, off)
	}
	return out
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
