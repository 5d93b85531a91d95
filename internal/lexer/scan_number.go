package lexer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/fourstate"
	"github.com/mohamed/svlang/internal/token"
)

// scanNumber scans everything that starts with a decimal digit: a plain
// decimal integer, a sized/unsized based literal ("8'b1010", "'d3"'s size
// half), a real literal, or a time literal. The base-marker half of a
// based literal ("'b", "'h", ...) is handled by scanTick when a bare
// apostrophe is the first character; this function handles the size
// prefix and, when a based marker follows the digits it just scanned,
// delegates the digit text to fourstate.ParseBasedDigits itself rather
// than emitting the base marker as a separate token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
	intText := lx.textSince(start)

	if lx.cursor.Peek() == '\'' {
		return lx.scanBasedLiteral(start, intText)
	}

	isReal := false

	if lx.cursor.Peek() == '.' {
		if _, b1, ok := lx.cursor.Peek2(); ok && isDec(b1) {
			lx.cursor.Bump() // '.'
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			isReal = true
		} else {
			dotMark := lx.cursor.Mark()
			lx.cursor.Bump() // '.'
			sp := lx.cursor.SpanFrom(dotMark)
			lx.report(diag.MissingFractionalDigits, sp, "expected digit after '.' in real literal")
			isReal = true
		}
	}

	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			isReal = true
		} else {
			// Not actually an exponent (e.g. a time unit or trailing
			// identifier starting with 'e'); back off and let whatever
			// follows the number lex as its own token.
			lx.cursor.Reset(mark)
		}
	}

	if isReal {
		return lx.finishReal(start)
	}

	if _, flag, ok := lx.matchTimeUnit(); ok {
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		v, err := fourstate.ParseBasedDigits(64, false, fourstate.Decimal, strings.ReplaceAll(intText, "_", ""))
		if err != nil {
			v = fourstate.New(64, false)
		}
		return token.Token{
			Kind: token.TimeLit,
			Span: sp,
			Text: text,
			Numeric: &token.NumericValue{
				Flags: flag,
				Int:   v,
			},
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	v, err := fourstate.ParseBasedDigits(32, true, fourstate.Decimal, strings.ReplaceAll(text, "_", ""))
	if err != nil {
		v = fourstate.New(32, true)
	}
	return token.Token{
		Kind: token.IntegerLit,
		Span: sp,
		Text: text,
		Numeric: &token.NumericValue{
			Flags: token.DecimalBase | token.IsSigned | token.Unsized,
			Int:   v,
		},
	}
}

// scanTick handles a leading apostrophe: '{, an unsized based literal
// ('b1010), an unbased-unsized literal ('0 '1 'x 'z), or a bare cast
// apostrophe (type'(expr)).
func (lx *Lexer) scanTick() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\''

	if lx.cursor.Peek() == '{' {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.ApostropheOpenBrace, Span: sp, Text: "'{"}
	}

	switch lx.cursor.Peek() {
	case '0', '1':
		b := lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		v := fourstate.New(1, false)
		if b == '1' {
			v.SetBit(0, fourstate.D1)
		}
		return token.Token{Kind: token.UnbasedUnsizedLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End]), Numeric: &token.NumericValue{Int: v}}
	case 'x', 'X', 'z', 'Z':
		b := lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		v := fourstate.New(1, false)
		if b == 'x' || b == 'X' {
			v.SetBit(0, fourstate.DX)
		} else {
			v.SetBit(0, fourstate.DZ)
		}
		return token.Token{Kind: token.UnbasedUnsizedLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End]), Numeric: &token.NumericValue{Int: v}}
	}

	if isBaseIntroducer(lx.cursor.Peek()) {
		return lx.finishBasedLiteral(start, "")
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Apostrophe, Span: sp, Text: "'"}
}

func isBaseIntroducer(b byte) bool {
	switch b {
	case 's', 'S', 'b', 'B', 'o', 'O', 'd', 'D', 'h', 'H':
		return true
	default:
		return false
	}
}

// scanBasedLiteral handles the "8'b1010" form: the size prefix has already
// been scanned into sizeText, and the cursor sits on the apostrophe.
func (lx *Lexer) scanBasedLiteral(start Mark, sizeText string) token.Token {
	lx.cursor.Bump() // '\''
	return lx.finishBasedLiteral(start, sizeText)
}

// finishBasedLiteral scans the base marker and digits of a based literal.
// The caller must have already consumed the introducing apostrophe.
func (lx *Lexer) finishBasedLiteral(start Mark, sizeText string) token.Token {
	signed := false
	if lx.cursor.Peek() == 's' || lx.cursor.Peek() == 'S' {
		signed = true
		lx.cursor.Bump()
	}
	baseCh := lx.cursor.Bump()
	var base fourstate.Base
	var baseFlag token.NumericFlags
	switch baseCh {
	case 'b', 'B':
		base, baseFlag = fourstate.Binary, token.BinaryBase
	case 'o', 'O':
		base, baseFlag = fourstate.Octal, token.OctalBase
	case 'd', 'D':
		base, baseFlag = fourstate.Decimal, token.DecimalBase
	case 'h', 'H':
		base, baseFlag = fourstate.Hex, token.HexBase
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.ExpectedToken, sp, "expected base letter after '''")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// skip whitespace between the base marker and the digits, which the
	// LRM allows
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}

	digitsStart := lx.cursor.Mark()
	for isBasedDigitByte(lx.cursor.Peek(), base) {
		lx.cursor.Bump()
	}
	digits := lx.textSince(digitsStart)

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	width := 32
	flags := baseFlag
	if signed {
		flags |= token.IsSigned
	}
	if sizeText == "" {
		flags |= token.Unsized
	} else {
		if n, err := strconv.Atoi(strings.ReplaceAll(sizeText, "_", "")); err == nil && n > 0 {
			width = n
		}
	}

	v, err := fourstate.ParseBasedDigits(width, signed, base, digits)
	if err != nil {
		lx.report(diag.ExpectedToken, sp, "invalid digits for literal base")
		v = fourstate.New(width, signed)
	}

	return token.Token{
		Kind:    token.IntegerLit,
		Span:    sp,
		Text:    text,
		Numeric: &token.NumericValue{Flags: flags, Int: v},
	}
}

func isBasedDigitByte(b byte, base fourstate.Base) bool {
	if b == '_' || b == 'x' || b == 'X' || b == 'z' || b == 'Z' || b == '?' {
		return true
	}
	switch base {
	case fourstate.Binary:
		return isBinary(b)
	case fourstate.Octal:
		return isOctal(b)
	case fourstate.Hex:
		return isHex(b)
	default: // Decimal
		return isDec(b)
	}
}

func (lx *Lexer) finishReal(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	clean := strings.ReplaceAll(text, "_", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		lx.report(diag.ExpectedToken, sp, "invalid real literal")
	}
	return token.Token{Kind: token.RealLit, Span: sp, Text: text, Numeric: &token.NumericValue{Real: f}}
}

// matchTimeUnit greedily matches one of the SystemVerilog time-literal
// suffixes immediately following a number, with no intervening whitespace.
func (lx *Lexer) matchTimeUnit() (unit string, flag token.NumericFlags, ok bool) {
	switch {
	case lx.try2('m', 's'):
		return "ms", token.Milliseconds, true
	case lx.try2('u', 's'):
		return "us", token.Microseconds, true
	case lx.try2('n', 's'):
		return "ns", token.Nanoseconds, true
	case lx.try2('p', 's'):
		return "ps", token.Picoseconds, true
	case lx.try2('f', 's'):
		return "fs", token.Femtoseconds, true
	}
	if lx.cursor.Peek() == 's' {
		lx.cursor.Bump()
		return "s", token.Seconds, true
	}
	return "", 0, false
}

func (lx *Lexer) textSince(m Mark) string {
	sp := lx.cursor.SpanFrom(m)
	return string(lx.file.Content[sp.Start:sp.End])
}
