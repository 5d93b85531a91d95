// Package parser turns the significant token stream internal/preprocessor
// produces into an internal/syntax tree: one design unit (module,
// interface, program, or package) per top-level declaration, plus every
// item nested inside it.
//
// A Parser holds a token source, an arena Builder, and a diag.Reporter
// behind an Options{MaxErrors} cap; panic-mode recovery uses a
// skip-token-set resyncUntil.
package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/preprocessor"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

// Options configures a single ParseFile call.
type Options struct {
	// MaxErrors stops reporting (but not recovery) once this many errors
	// have been emitted. Zero means unbounded.
	MaxErrors uint
	Reporter  diag.Reporter
}

// Result is what ParseFile hands back: the parsed file's root ID and, if
// the configured Reporter was a diag.BagReporter, the diagnostics it
// collected.
type Result struct {
	File syntax.FileID
	Bag  *diag.Bag
}

// exprContext threads two flags down into the expression parser.
// constantOnly marks a constant-expression position and is passed on to
// nested operands; it does not change what is parsed. noHierarchicalName
// makes a dotted name parse as a plain identifier and stops operator
// climbing at `<`; no production in this package sets it.
type exprContext struct {
	constantOnly       bool
	noHierarchicalName bool
}

// Parser parses one token stream into one syntax.File.
type Parser struct {
	pp   *preprocessor.Preprocessor
	b    *syntax.Builder
	file syntax.FileID
	opts Options

	buf            []token.Token
	pendingLeading []token.Trivia
	currentErrors  uint
	lastSpan       source.Span
}

// ParseFile parses the entire token stream pp produces, allocating nodes
// into b, and returns the resulting file.
func ParseFile(pp *preprocessor.Preprocessor, b *syntax.Builder, opts Options) Result {
	p := &Parser{pp: pp, b: b, opts: opts}
	start := p.peek().Span
	p.file = b.NewFile(start)

	for !p.at(token.EOF) {
		if !p.parseTopLevel() {
			p.resyncTop()
		}
	}

	f := b.Files.Get(p.file)
	f.Span = f.Span.Cover(p.lastSpan)

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

// parseTopLevel dispatches on the design-unit keyword that starts every
// legal top-level construct.
func (p *Parser) parseTopLevel() bool {
	switch p.peek().Kind {
	case token.ModuleKeyword, token.MacromoduleKeyword:
		return p.parseUnit(syntax.UnitModule)
	case token.InterfaceKeyword:
		return p.parseUnit(syntax.UnitInterface)
	case token.ProgramKeyword:
		return p.parseUnit(syntax.UnitProgram)
	case token.PackageKeyword:
		return p.parseUnit(syntax.UnitPackage)
	default:
		p.err(diag.UnexpectedToken, "expected 'module', 'interface', 'program', or 'package'")
		return false
	}
}

var topLevelStarters = []token.Kind{
	token.ModuleKeyword, token.MacromoduleKeyword,
	token.InterfaceKeyword, token.ProgramKeyword, token.PackageKeyword,
}

func (p *Parser) resyncTop() {
	p.resyncUntil(topLevelStarters...)
}
