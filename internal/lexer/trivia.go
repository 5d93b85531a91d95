package lexer

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/token"
)

// collectLeadingTrivia accumulates whitespace, newlines, and comments ahead
// of the next significant token into lx.hold. Runs of spaces/tabs coalesce
// into one Whitespace trivia; each line ending (CR, LF, or CRLF) becomes
// its own EndOfLine trivia.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	lx.checkBOM()
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\v' || b == '\f' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\v' && b2 != '\f' {
					break
				}
				lx.cursor.Bump()
			}
			lx.appendHold(token.Whitespace, start)
			continue
		}

		if b == '\r' || b == '\n' {
			lx.cursor.Bump()
			if b == '\r' && lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.appendHold(token.EndOfLine, start)
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// checkBOM detects and consumes a UTF-8 byte-order mark at the very start
// of the file, diagnosing it but keeping its bytes as trivia rather than
// stripping them, so the file's byte stream still round-trips.
func (lx *Lexer) checkBOM() {
	if lx.bomChecked || lx.cursor.Off != 0 {
		return
	}
	lx.bomChecked = true
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != 0xEF || b1 != 0xBB || b2 != 0xBF {
		return
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.UnicodeBOM, sp, "source file begins with a Unicode byte order mark")
	lx.appendHold(token.Whitespace, start)
}

func (lx *Lexer) appendHold(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// scanCommentIntoHold consumes a "//" line comment or a "/* */" block
// comment, if the cursor is looking at one. It reports if a block comment
// hits EOF unterminated, or if a "/*" appears inside another block comment
// (SystemVerilog block comments do not nest; the LRM still calls this out
// as likely-unintended).
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.appendHold(token.LineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		warnedNested := false
		for !lx.cursor.EOF() {
			b0, b1, ok := lx.cursor.Peek2()
			if !ok {
				break
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.appendHold(token.BlockComment, start)
				return true
			}
			if b0 == '/' && b1 == '*' && !warnedNested {
				warnedNested = true
				nestSp := lx.cursor.SpanFrom(lx.cursor.Mark())
				lx.report(diag.NestedBlockComment, nestSp, "'/*' inside a block comment")
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.UnterminatedBlockComment, sp, "unterminated block comment")
		lx.appendHold(token.BlockComment, start)
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}
