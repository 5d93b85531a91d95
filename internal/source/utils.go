package source

import (
	"path/filepath"
	"sort"
)

// buildLineIndex records the byte offset of every '\n' in content, in
// ascending order. Both bare '\n' and '\r\n' line endings land the same
// offset (the '\n' byte); the '\r' is left in Content for the lexer to see
// as trivia rather than being trimmed here.
func buildLineIndex(content []byte) []uint32 {
	var idx []uint32
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, uint32(i))
		}
	}
	return idx
}

// toLineCol converts a byte offset into a 1-based line/column position
// using a line index built by buildLineIndex.
func toLineCol(lineIdx []uint32, offset uint32) LineCol {
	// lineIdx[i] is the offset of the i-th newline; the line containing
	// offset is the count of newlines strictly before it, plus one.
	line := sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= offset
	})
	lineStart := uint32(0)
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{
		Line: uint32(line) + 1,
		Col:  offset - lineStart + 1,
	}
}

// normalizePath makes path suitable for use as a FileSet index key: slashes
// are cleaned but the path is otherwise left as given. It intentionally
// does not resolve symlinks or make the path absolute, since virtual files
// (stdin, macro expansions) do not live on disk at all.
func normalizePath(path string) string {
	if path == "" {
		return path
	}
	return filepath.ToSlash(filepath.Clean(path))
}
