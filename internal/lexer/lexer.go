package lexer

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

const utf8RuneSelf = 0x80

// Lexer turns a source file's bytes into a stream of tokens, attaching
// leading trivia (whitespace, comments, skipped text) to the following
// significant token so the stream stays lossless.
type Lexer struct {
	file       *source.File
	cursor     Cursor
	opts       Options
	look       *token.Token
	hold       []token.Trivia
	bomChecked bool
}

// New returns a Lexer positioned at the start of file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token, with its Leading trivia already
// populated. Past end of file it always returns an EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: lx.takeHold()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '\\':
		tok = lx.scanEscapedIdent()
	case ch == '$':
		tok = lx.scanDollar()
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '\'':
		tok = lx.scanTick()
	case ch == '"':
		tok = lx.scanString()
	case ch == '`':
		tok = lx.scanDirective()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.takeHold()
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	lx.opts.reporter().Report(code, diag.SevError, sp, msg, nil, nil)
}

// reportUnknownChar classifies an unrecognized byte for diagnosis: an
// embedded NUL, a non-printable control character, or the lead byte of a
// non-ASCII UTF-8 sequence appearing outside a string or comment.
func (lx *Lexer) reportUnknownChar(sp source.Span, ch byte) {
	switch {
	case ch == 0:
		lx.report(diag.EmbeddedNull, sp, "embedded NUL byte")
	case ch >= utf8RuneSelf:
		lx.report(diag.UTF8Char, sp, "non-ASCII character outside string or comment")
	case ch < 0x20 && ch != '\t' && ch != '\n' && ch != '\r':
		lx.report(diag.NonPrintableChar, sp, "non-printable character")
	default:
		lx.report(diag.NonPrintableChar, sp, "unrecognized character")
	}
}
