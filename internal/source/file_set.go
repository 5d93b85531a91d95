package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every source file fed into a compilation and resolves byte
// offsets to file/line/column positions.
type FileSet struct {
	files   []File
	index   map[string]FileID
	baseDir string
}

// NewFileSet returns an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]FileID)}
}

// SetBaseDir records the directory relative-path diagnostics are printed
// against. Empty means "use the current working directory".
func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

// BaseDir returns the directory set by SetBaseDir, or "" if none was set.
func (fs *FileSet) BaseDir() string { return fs.baseDir }

// Add stores content under path and returns a fresh FileID. It always
// allocates a new ID, even if path was already added -- callers that want
// "latest wins" semantics should consult GetLatest afterward.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	norm := normalizePath(path)

	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: file count overflow: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    norm,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fs.index[norm] = id
	return id
}

// Load reads path from disk and adds it unmodified. A leading UTF-8 BOM is
// detected and flagged (FileHadBOM) but left in Content -- the lexer is
// responsible for diagnosing and consuming it as trivia, not this layer.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is supplied by the caller (CLI argument or include resolution)
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	flags := FileFlags(0)
	if hasBOM(content) {
		flags |= FileHadBOM
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content (tests, stdin, macro-expanded text)
// under a synthetic name.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file metadata for id. The pointer is valid for the
// lifetime of the FileSet.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetLatest returns the most recently added FileID for path.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fs.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into its start and end line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// GetLine returns the 1-based line lineNum of a file, or "" if it does not
// exist.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("source: line index overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}

// IncludeResolver locates the bytes for an `include directive, searching
// user directories before system directories.
type IncludeResolver interface {
	// Resolve returns the file path and content for name. angled is true
	// for `include <name>` and false for `include "name"`; both forms
	// search user directories before system directories.
	Resolve(name string, angled bool, fromDir string) (path string, content []byte, ok bool)
}

// DirIncludeResolver is the default IncludeResolver: a list of user
// directories searched before a list of system directories, plus the
// including file's own directory for quoted includes.
type DirIncludeResolver struct {
	UserDirs   []string
	SystemDirs []string
}

func (r *DirIncludeResolver) Resolve(name string, angled bool, fromDir string) (string, []byte, bool) {
	var dirs []string
	if !angled && fromDir != "" {
		dirs = append(dirs, fromDir)
	}
	dirs = append(dirs, r.UserDirs...)
	dirs = append(dirs, r.SystemDirs...)
	for _, d := range dirs {
		full := filepath.Join(d, name)
		// #nosec G304 -- full is built from configured include directories
		content, err := os.ReadFile(full)
		if err == nil {
			return full, content, true
		}
	}
	return "", nil, false
}

func hasBOM(content []byte) bool {
	return len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF
}
