// Package source manages source files, byte offsets, and their mapping to
// line/column positions, supplying the default in-memory implementation
// so the front-end packages are testable standalone.
package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags records how a file entered the FileSet.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (stdin, a test,
	// or preprocessor-synthesized text) rather than loaded from disk.
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM records that a UTF-8 BOM was present at byte 0; the BOM
	// stays in Content (round-trip requires it) but the lexer diagnoses and
	// treats it as trivia.
	FileHadBOM
)

// File captures metadata and raw content for a single source file.
//
// Content is stored byte-for-byte as read: no CRLF normalization, no BOM
// stripping. Preserving the exact bytes is what makes the lexer's
// round-trip invariant possible -- normalizing here would silently
// rewrite bytes the lexer is supposed to account for as trivia.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of every '\n', ascending
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable 1-based position in a source file.
type LineCol struct {
	Line uint32
	Col  uint32
}
