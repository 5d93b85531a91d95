package driver

import (
	"fortio.org/safecast"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/parser"
	"github.com/mohamed/svlang/internal/preprocessor"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
)

// ParseResult is one file's preprocessed syntax tree, in its own
// standalone Builder - useful for inspecting a single file's parse
// without paying for a full Compilation.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *syntax.Builder
	FileID  syntax.FileID
	Bag     *diag.Bag
}

// ParseOptions configures Parse's preprocessing step.
type ParseOptions struct {
	MaxDiagnostics   int
	IncludeResolver  source.IncludeResolver
	PredefinedMacros map[string]string
}

// Parse preprocesses and parses path in isolation.
func Parse(path string, opts ParseOptions) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	pp := preprocessor.New(fs, fileID, preprocessor.Options{
		Reporter:         diag.BagReporter{Bag: bag},
		IncludeResolver:  opts.IncludeResolver,
		PredefinedMacros: opts.PredefinedMacros,
	})
	b := syntax.NewBuilder(syntax.Hints{})

	maxErrors, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	result := parser.ParseFile(pp, b, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: b,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}
