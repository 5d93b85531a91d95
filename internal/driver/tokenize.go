// Package driver wires internal/source, internal/preprocessor,
// internal/parser, and internal/compilation together into the handful of
// whole-file operations cmd/svlang's subcommands need: tokenize a file,
// parse a file, or check a set of files and elaborate a design.
//
// Each operation is a small, mostly stateless function returning a
// *Result plus an error, leaving all rendering to the caller.
package driver

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/lexer"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

// TokenizeResult is the raw lexical view of one file: no preprocessing,
// no macro expansion - exactly what internal/lexer produces token by
// token.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes path in isolation, with no macro or `include expansion -
// useful for inspecting how the lexer alone segments a file.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
