// Package preprocessor expands `include, `define, and conditional
// compilation directives, turning the raw token stream from
// internal/lexer into a stream of significant tokens with directive and
// macro syntax already resolved for internal/parser.
package preprocessor

import (
	"path/filepath"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/lexer"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

// maxTotalExpansions bounds the lifetime number of macro expansions a
// single Preprocessor will perform. Unlike a per-call recursion counter,
// this catches mutually self-referential macros (`` `define A `B ``,
// `` `define B `A ``) without needing to paint individual tokens with
// their expansion ancestry.
const maxTotalExpansions = 200000

// frame is one open file in the include stack: the root source file plus
// every file currently `include'd into it.
type frame struct {
	lex  *lexer.Lexer
	file *source.File
	dir  string
}

// Preprocessor wraps a stack of lexers (one per open `include level) and
// resolves directives and macro usages into a flat token stream.
type Preprocessor struct {
	fs     *source.FileSet
	opts   Options
	macros *macroTable
	conds  *condStack

	files []*frame
	// pending holds tokens queued for re-scan ahead of the current
	// file's lexer: macro expansions, __LINE__/__FILE__ substitutions,
	// and single-token pushbacks used to look one token ahead without
	// losing it.
	pending []token.Token

	defaultNetType   string
	totalExpansions  int
	exhaustedReported bool
}

// New returns a Preprocessor that begins reading from start.
func New(fs *source.FileSet, start source.FileID, opts Options) *Preprocessor {
	p := &Preprocessor{
		fs:     fs,
		opts:   opts,
		macros: newMacroTable(),
		conds:  newCondStack(),
	}
	for name, value := range opts.PredefinedMacros {
		p.macros.define(&MacroDef{Name: name, Body: p.lexPredefinedValue(value)})
	}
	p.pushFile(start, "")
	return p
}

// lexPredefinedValue tokenizes a `-D NAME=VALUE` command-line macro value
// into a macro body token list, reusing the lexer so predefined macros
// expand exactly like source-defined ones.
func (p *Preprocessor) lexPredefinedValue(value string) []token.Token {
	if value == "" {
		return nil
	}
	id := p.fs.AddVirtual("<command-line>", []byte(value))
	lx := lexer.New(p.fs.Get(id), lexer.Options{Reporter: diag.NopReporter{}})
	var toks []token.Token
	for {
		t := lx.Next()
		if t.Kind == token.EOF {
			return toks
		}
		toks = append(toks, t)
	}
}

func (p *Preprocessor) pushFile(id source.FileID, dir string) {
	f := p.fs.Get(id)
	d := dir
	if d == "" {
		d = filepath.Dir(f.Path)
	}
	p.files = append(p.files, &frame{
		lex:  lexer.New(f, lexer.Options{Reporter: p.opts.reporter()}),
		file: f,
		dir:  d,
	})
}

func (p *Preprocessor) popFile() {
	if len(p.files) > 1 {
		p.files = p.files[:len(p.files)-1]
	}
}

func (p *Preprocessor) current() *frame {
	return p.files[len(p.files)-1]
}

// includeDepth reports how many files are nested below the root file.
func (p *Preprocessor) includeDepth() int {
	return len(p.files) - 1
}

func (p *Preprocessor) reportAt(code diag.Code, sp source.Span, msg string) {
	p.opts.reporter().Report(code, diag.SevError, sp, msg, nil, nil)
}

func (p *Preprocessor) nextRaw() token.Token {
	if len(p.pending) > 0 {
		t := p.pending[0]
		p.pending = p.pending[1:]
		return t
	}
	return p.current().lex.Next()
}

func (p *Preprocessor) pushback(t token.Token) {
	p.pushbackAll([]token.Token{t})
}

func (p *Preprocessor) pushbackAll(toks []token.Token) {
	if len(toks) == 0 {
		return
	}
	buf := make([]token.Token, 0, len(toks)+len(p.pending))
	buf = append(buf, toks...)
	buf = append(buf, p.pending...)
	p.pending = buf
}

// startsNewLine reports whether an EndOfLine trivia sits somewhere in t's
// leading trivia, meaning t is the first token of a new physical line.
func startsNewLine(t token.Token) bool {
	for _, tr := range t.Leading {
		if tr.Kind == token.EndOfLine {
			return true
		}
	}
	return false
}

func macroNameOf(t token.Token) string {
	if t.Kind == token.MacroUsage {
		return t.ValueText
	}
	return t.IdentifierText()
}

// Next returns the next token the parser should see: directives are
// consumed and acted on, macro usages are expanded and rescanned, and
// text inside a false conditional branch is dropped.
func (p *Preprocessor) Next() token.Token {
	for {
		tok := p.nextRaw()

		switch tok.Kind {
		case token.EOF:
			if len(p.files) > 1 {
				p.popFile()
				continue
			}
			return tok

		case token.Directive:
			p.handleDirective(tok)
			continue

		case token.MacroUsage:
			if !p.conds.active() {
				continue
			}
			p.expandMacroUsage(tok)
			continue

		case token.MacroQuote, token.MacroEscapedQuote, token.MacroPaste:
			if p.conds.active() {
				p.reportAt(diag.MisplacedDirectiveChar, tok.Span, "preprocessor token outside macro expansion")
			}
			continue

		default:
			if !p.conds.active() {
				continue
			}
			return tok
		}
	}
}

// DefaultNetType returns the net type set by the most recent
// `default_nettype directive ("" if none has been seen, meaning `wire`).
func (p *Preprocessor) DefaultNetType() string {
	return p.defaultNetType
}
