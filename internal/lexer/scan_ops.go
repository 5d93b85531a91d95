package lexer

import "github.com/mohamed/svlang/internal/token"

// scanOperatorOrPunct scans one operator or punctuation token, matching
// greedily from longest to shortest so that e.g. "<<<=" is never split
// into "<<<" followed by "=".
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch {
	case lx.try4('<', '<', '<', '='):
		return emit(token.TripleLeftShiftEqual)
	case lx.try4('>', '>', '>', '='):
		return emit(token.TripleRightShiftEqual)
	}

	switch {
	case lx.try3('<', '<', '<'):
		return emit(token.TripleLeftShift)
	case lx.try3('>', '>', '>'):
		return emit(token.TripleRightShift)
	case lx.try3('=', '=', '='):
		return emit(token.TripleEquals)
	case lx.try3('!', '=', '='):
		return emit(token.ExclamationDoubleEquals)
	case lx.try3('<', '<', '='):
		return emit(token.LeftShiftEqual)
	case lx.try3('>', '>', '='):
		return emit(token.RightShiftEqual)
	case lx.try3('=', '=', '?'):
		return emit(token.DoubleEqualsQuestion)
	case lx.try3('!', '=', '?'):
		return emit(token.ExclamationEqualsQuestion)
	case lx.try3('&', '&', '&'):
		return emit(token.TripleAnd)
	case lx.try3('-', '-', '>'):
		return emit(token.MinusDoubleArrow)
	case lx.try3('<', '-', '>'):
		return emit(token.LessThanMinusArrow)
	case lx.try3('|', '-', '>'):
		return emit(token.OrMinusArrow)
	case lx.try3('|', '=', '>'):
		return emit(token.OrMinusDoubleArrow)
	case lx.try3('#', '-', '#'):
		return emit(token.HashMinusHash)
	case lx.try3('#', '=', '#'):
		return emit(token.HashEqualsHash)
	}

	switch {
	case lx.try2('+', '+'):
		return emit(token.PlusPlus)
	case lx.try2('+', ':'):
		return emit(token.PlusColon)
	case lx.try2('+', '='):
		return emit(token.PlusEqual)
	case lx.try2('-', '-'):
		return emit(token.MinusMinus)
	case lx.try2('-', ':'):
		return emit(token.MinusColon)
	case lx.try2('-', '='):
		return emit(token.MinusEqual)
	case lx.try2('-', '>'):
		return emit(token.MinusArrow)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2('*', '='):
		return emit(token.StarEqual)
	case lx.try2('*', '>'):
		return emit(token.StarArrow)
	case lx.try2('*', ')'):
		return emit(token.StarCloseParenthesis)
	case lx.try2('/', '='):
		return emit(token.SlashEqual)
	case lx.try2('%', '='):
		return emit(token.PercentEqual)
	case lx.try2('=', '='):
		return emit(token.DoubleEquals)
	case lx.try2('=', '>'):
		return emit(token.EqualsArrow)
	case lx.try2('!', '='):
		return emit(token.ExclamationEquals)
	case lx.try2('<', '='):
		return emit(token.LessThanEquals)
	case lx.try2('>', '='):
		return emit(token.GreaterThanEquals)
	case lx.try2('<', '<'):
		return emit(token.LeftShift)
	case lx.try2('>', '>'):
		return emit(token.RightShift)
	case lx.try2('&', '&'):
		return emit(token.DoubleAnd)
	case lx.try2('&', '='):
		return emit(token.AndEqual)
	case lx.try2('|', '|'):
		return emit(token.DoubleOr)
	case lx.try2('|', '='):
		return emit(token.OrEqual)
	case lx.try2('~', '&'):
		return emit(token.TildeAnd)
	case lx.try2('~', '|'):
		return emit(token.TildeOr)
	case lx.try2('~', '^'):
		return emit(token.TildeXor)
	case lx.try2('^', '~'):
		return emit(token.XorTilde)
	case lx.try2('^', '='):
		return emit(token.XorEqual)
	case lx.try2(':', ':'):
		return emit(token.DoubleColon)
	case lx.try2(':', '='):
		return emit(token.ColonEquals)
	case lx.try2(':', '/'):
		return emit(token.ColonSlash)
	case lx.try2('.', '*'):
		return emit(token.DotStar)
	case lx.try2('(', '*'):
		return emit(token.OpenParenthesisStar)
	case lx.try2('@', '*'):
		return emit(token.AtStar)
	case lx.try2('@', '@'):
		return emit(token.DoubleAt)
	case lx.try2('#', '#'):
		return emit(token.DoubleHash)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Equals)
	case '!':
		return emit(token.Exclamation)
	case '<':
		return emit(token.LessThan)
	case '>':
		return emit(token.GreaterThan)
	case '&':
		return emit(token.And)
	case '|':
		return emit(token.Or)
	case '~':
		return emit(token.Tilde)
	case '^':
		return emit(token.Xor)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.OpenParenthesis)
	case ')':
		return emit(token.CloseParenthesis)
	case '{':
		return emit(token.OpenBrace)
	case '}':
		return emit(token.CloseBrace)
	case '[':
		return emit(token.OpenBracket)
	case ']':
		return emit(token.CloseBracket)
	case '@':
		return emit(token.At)
	case '#':
		return emit(token.Hash)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.reportUnknownChar(sp, ch)
		return token.Token{Kind: token.Unknown, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
