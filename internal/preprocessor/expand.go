package preprocessor

import (
	"strings"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/lexer"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

// expandMacroUsage looks up the invoked macro, gathers its arguments if
// it's function-like, substitutes and rescans its body, and pushes the
// result back onto the pending queue so Next sees it as if it had been
// written in place of the invocation.
func (p *Preprocessor) expandMacroUsage(tok token.Token) {
	def, ok := p.macros.lookup(tok.ValueText)
	if !ok {
		p.reportAt(diag.UnknownDirective, tok.Span, "unknown macro `"+tok.ValueText)
		return
	}

	if p.totalExpansions >= maxTotalExpansions {
		if !p.exhaustedReported {
			p.reportAt(diag.MacroExpansionTooDeep, tok.Span, "macro expansion exceeded maximum depth, possible circular `define")
			p.exhaustedReported = true
		}
		return
	}

	argMap := map[string][]token.Token(nil)
	if def.FunctionLike {
		args, ok := p.parseMacroArgs(tok)
		if !ok {
			return
		}
		if len(args) > len(def.Params) {
			p.reportAt(diag.MacroArgumentCountMismatch, tok.Span, "too many arguments to macro `"+tok.ValueText)
			return
		}
		argMap = make(map[string][]token.Token, len(def.Params))
		for i, param := range def.Params {
			switch {
			case i < len(args) && len(args[i]) > 0:
				argMap[param.Name] = args[i]
			case param.Default != nil:
				argMap[param.Name] = param.Default
			case i < len(args):
				argMap[param.Name] = args[i]
			default:
				p.reportAt(diag.MacroArgumentCountMismatch, tok.Span, "missing argument for macro parameter '"+param.Name+"'")
			}
		}
	}

	p.totalExpansions++
	body := p.expandBody(def, argMap)
	p.pushbackAll(body)
}

// parseMacroArgs consumes a `(` ... `)` argument list, splitting on commas
// at paren/bracket/brace depth zero. `FOO()` with nothing between the
// parens yields zero arguments rather than one empty argument.
func (p *Preprocessor) parseMacroArgs(tok token.Token) ([][]token.Token, bool) {
	open := p.nextRaw()
	if open.Kind != token.OpenParenthesis {
		p.reportAt(diag.ExpectedMacroArgs, tok.Span, "expected '(' for function-like macro `"+tok.ValueText)
		p.pushback(open)
		return nil, false
	}

	var args [][]token.Token
	var cur []token.Token
	depth := 0
	for {
		t := p.nextRaw()
		if t.Kind == token.EOF {
			p.reportAt(diag.ExpectedMacroArgs, t.Span, "unterminated macro argument list for `"+tok.ValueText)
			return nil, false
		}
		if depth == 0 && t.Kind == token.CloseParenthesis {
			if len(args) == 0 && len(cur) == 0 {
				return nil, true
			}
			args = append(args, cur)
			return args, true
		}
		if depth == 0 && t.Kind == token.Comma {
			args = append(args, cur)
			cur = nil
			continue
		}
		switch t.Kind {
		case token.OpenParenthesis, token.OpenBracket, token.OpenBrace:
			depth++
		case token.CloseParenthesis, token.CloseBracket, token.CloseBrace:
			depth--
		}
		cur = append(cur, t)
	}
}

// expandBody substitutes parameter references in def.Body with their
// actual argument tokens, then resolves stringize (`") and token paste
// (``) operators over the result.
func (p *Preprocessor) expandBody(def *MacroDef, argMap map[string][]token.Token) []token.Token {
	substituted := make([]token.Token, 0, len(def.Body))
	for _, t := range def.Body {
		if def.FunctionLike && t.IsIdentifier() {
			if actual, ok := argMap[t.IdentifierText()]; ok {
				// The parameter reference's own leading trivia (the
				// whitespace that separated it from its neighbor in the
				// macro body) carries over to the substituted text so
				// stringize output keeps the definition's spacing; the
				// call-site argument tokens keep their own internal
				// spacing beyond that first token.
				if len(actual) > 0 {
					first := actual[0]
					first.Leading = t.Leading
					substituted = append(substituted, first)
					substituted = append(substituted, actual[1:]...)
				}
				continue
			}
		}
		substituted = append(substituted, t)
	}
	return p.applyPaste(p.applyStringize(substituted))
}

// applyStringize collapses every `" ... `" span into a single StringLit
// token, with `\`" spans inside it contributing a literal escaped quote.
func (p *Preprocessor) applyStringize(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Kind != token.MacroQuote {
			out = append(out, t)
			i++
			continue
		}

		var sb strings.Builder
		startSpan := t.Span
		endSpan := t.Span
		j := i + 1
		for j < len(toks) {
			if toks[j].Kind == token.MacroQuote {
				endSpan = toks[j].Span
				j++
				break
			}
			for _, tr := range toks[j].Leading {
				sb.WriteString(tr.Text)
			}
			if toks[j].Kind == token.MacroEscapedQuote {
				sb.WriteString(`\"`)
			} else {
				sb.WriteString(toks[j].Text)
			}
			endSpan = toks[j].Span
			j++
		}
		out = append(out, token.Token{
			Kind:      token.StringLit,
			Span:      source.Span{File: startSpan.File, Start: startSpan.Start, End: endSpan.End},
			Text:      `"` + sb.String() + `"`,
			ValueText: sb.String(),
		})
		i = j
	}
	return out
}

// applyPaste combines every `` a `` b `` pair into a single re-lexed
// token, left to right, so a chain like `` a``b``c `` pastes into one
// token rather than two.
func (p *Preprocessor) applyPaste(toks []token.Token) []token.Token {
	for {
		idx := -1
		for i, t := range toks {
			if t.Kind == token.MacroPaste {
				idx = i
				break
			}
		}
		if idx <= 0 || idx+1 >= len(toks) {
			return toks
		}
		merged := p.pasteTokens(toks[idx-1], toks[idx+1])
		next := make([]token.Token, 0, len(toks)-2)
		next = append(next, toks[:idx-1]...)
		next = append(next, merged)
		next = append(next, toks[idx+2:]...)
		toks = next
	}
}

// pasteTokens re-lexes the concatenation of a and b's text as a single
// token. The result's span points at a's location; it does not
// correspond to real source, which is inherent to token pasting.
func (p *Preprocessor) pasteTokens(a, b token.Token) token.Token {
	combined := a.Text + b.Text
	id := p.fs.AddVirtual("<paste>", []byte(combined))
	lx := lexer.New(p.fs.Get(id), lexer.Options{Reporter: diag.NopReporter{}})
	tok := lx.Next()
	tok.Span = a.Span
	return tok
}
