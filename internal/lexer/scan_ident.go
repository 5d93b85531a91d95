package lexer

import (
	"unicode"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/token"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9') || b == '$'
}
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanIdentOrKeyword scans a plain [a-zA-Z_][a-zA-Z0-9_$]* identifier,
// classifying it as a keyword if it matches the (case-sensitive,
// lowercase-only) keyword table. A non-ASCII rune becomes a one-rune
// Unknown token with a UTF8Char diagnostic.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.reportUnknownChar(sp, lx.file.Content[sp.Start])
		return token.Token{Kind: token.Unknown, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanEscapedIdent scans a "\..." identifier, which runs until the next
// whitespace character. The terminating whitespace is not consumed; it is
// picked up as ordinary trivia by the next call to collectLeadingTrivia.
func (lx *Lexer) scanEscapedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if isWhitespaceByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.EscapedWhitespace, sp, "escaped identifier has no characters before whitespace")
	}
	for {
		b := lx.cursor.Peek()
		if lx.cursor.EOF() || isWhitespaceByte(b) {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	value := text
	if len(value) > 0 {
		value = value[1:]
	}
	return token.Token{Kind: token.EscapedIdent, Span: sp, Text: text, ValueText: value}
}

// scanDollar scans a leading '$': either a $system_task identifier, or the
// lone Dollar punctuation token used for unconnected ports and unsized
// dimensions.
func (lx *Lexer) scanDollar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	if !isIdentStartByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Dollar, Span: sp, Text: "$"}
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{Kind: token.SystemIdent, Span: sp, Text: text, ValueText: text}
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
