package source

type FileID uint32

type FileFlags uint8

const (
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is a document loaded from disk (or stdin) together with the layout
// details stripped while loading.
type File struct {
	ID    FileID
	Path  string
	Doc   *Document
	Hash  [32]byte
	Flags FileFlags
}

// Restore renders text with the BOM and line endings the file had on disk.
func (f *File) Restore(text string) []byte {
	return restoreLayout([]byte(text), f.Flags)
}
