package preprocessor

import (
	"strconv"
	"strings"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/fourstate"
	"github.com/mohamed/svlang/internal/token"
)

// handleDirective dispatches a Directive-kind token to its handler.
// Conditional-control directives run regardless of the current active
// state (they're what changes it); every other directive is skipped
// without effect while inside an inactive branch.
func (p *Preprocessor) handleDirective(tok token.Token) {
	switch tok.ValueText {
	case "ifdef":
		p.handleIfdef(tok, false)
		return
	case "ifndef":
		p.handleIfdef(tok, true)
		return
	case "elsif":
		p.handleElsif(tok)
		return
	case "else":
		if !p.conds.els() {
			p.reportAt(diag.UnbalancedConditional, tok.Span, "`else without matching `ifdef/`ifndef")
		}
		return
	case "endif":
		if !p.conds.pop() {
			p.reportAt(diag.UnbalancedConditional, tok.Span, "`endif without matching `ifdef/`ifndef")
		}
		return
	}

	if !p.conds.active() {
		return
	}

	switch tok.ValueText {
	case "define":
		p.handleDefine(tok)
	case "undef":
		p.handleUndef(tok)
	case "undefineall":
		p.macros.undefAll()
	case "include":
		p.handleInclude(tok)
	case "resetall":
		p.macros.undefAll()
		p.defaultNetType = ""
	case "default_nettype":
		p.handleDefaultNettype(tok)
	case "celldefine", "endcelldefine", "end_keywords":
		// accepted, no state to update
	case "timescale", "unconnected_drive", "nounconnected_drive", "pragma", "line", "begin_keywords":
		p.skipRestOfLine()
	case "__FILE__":
		p.substituteFileMacro(tok)
	case "__LINE__":
		p.substituteLineMacro(tok)
	default:
		p.reportAt(diag.UnknownDirective, tok.Span, "unknown compiler directive `"+tok.ValueText)
	}
}

func (p *Preprocessor) skipRestOfLine() {
	for {
		t := p.nextRaw()
		if t.Kind == token.EOF || startsNewLine(t) {
			p.pushback(t)
			return
		}
	}
}

func (p *Preprocessor) handleIfdef(tok token.Token, negate bool) {
	nameTok := p.nextRaw()
	if !nameTok.IsIdentifier() && nameTok.Kind != token.MacroUsage {
		p.reportAt(diag.ExpectedIdentifier, nameTok.Span, "expected macro name after `"+tok.ValueText)
		p.pushback(nameTok)
		p.conds.pushIf(false)
		return
	}
	_, defined := p.macros.lookup(macroNameOf(nameTok))
	cond := defined
	if negate {
		cond = !defined
	}
	p.conds.pushIf(cond)
}

func (p *Preprocessor) handleElsif(tok token.Token) {
	nameTok := p.nextRaw()
	if !nameTok.IsIdentifier() && nameTok.Kind != token.MacroUsage {
		p.reportAt(diag.ExpectedIdentifier, nameTok.Span, "expected macro name after `elsif")
		p.pushback(nameTok)
		return
	}
	_, defined := p.macros.lookup(macroNameOf(nameTok))
	if !p.conds.elsif(defined) {
		p.reportAt(diag.UnbalancedConditional, tok.Span, "`elsif without matching `ifdef/`ifndef")
	}
}

func (p *Preprocessor) handleUndef(tok token.Token) {
	nameTok := p.nextRaw()
	if !nameTok.IsIdentifier() {
		p.reportAt(diag.ExpectedIdentifier, nameTok.Span, "expected macro name after `undef")
		p.pushback(nameTok)
		return
	}
	p.macros.undef(nameTok.IdentifierText())
}

func (p *Preprocessor) handleDefaultNettype(tok token.Token) {
	nt := p.nextRaw()
	if startsNewLine(nt) || nt.Kind == token.EOF {
		p.pushback(nt)
		p.reportAt(diag.ExpectedToken, tok.Span, "expected net type after `default_nettype")
		return
	}
	p.defaultNetType = nt.Text
}

// handleDefine reads a macro name, an optional parenthesized parameter
// list, and a body that extends to the end of the physical line. Line
// continuation via a trailing backslash is not honored: a `define body
// is exactly the tokens remaining on its own line.
func (p *Preprocessor) handleDefine(tok token.Token) {
	nameTok := p.nextRaw()
	if !nameTok.IsIdentifier() {
		p.reportAt(diag.ExpectedIdentifier, nameTok.Span, "expected macro name after `define")
		p.pushback(nameTok)
		return
	}
	def := &MacroDef{Name: nameTok.IdentifierText()}

	next := p.nextRaw()
	if next.Kind == token.OpenParenthesis && len(next.Leading) == 0 {
		def.FunctionLike = true
		if !p.parseMacroParams(def) {
			return
		}
		next = p.nextRaw()
	}
	def.Body = p.collectLineTokens(next)
	p.macros.define(def)
}

func (p *Preprocessor) parseMacroParams(def *MacroDef) bool {
	for {
		tok := p.nextRaw()
		if tok.Kind == token.CloseParenthesis {
			return true
		}
		if !tok.IsIdentifier() {
			p.reportAt(diag.ExpectedIdentifier, tok.Span, "expected macro parameter name")
			p.skipRestOfLine()
			return false
		}
		param := MacroParam{Name: tok.IdentifierText()}

		sep := p.nextRaw()
		if sep.Kind == token.Equals {
			var defaultToks []token.Token
			depth := 0
			for {
				t := p.nextRaw()
				if depth == 0 && (t.Kind == token.Comma || t.Kind == token.CloseParenthesis) {
					sep = t
					break
				}
				if t.Kind == token.EOF || startsNewLine(t) {
					p.reportAt(diag.ExpectedToken, t.Span, "unterminated macro parameter list")
					p.pushback(t)
					return false
				}
				switch t.Kind {
				case token.OpenParenthesis, token.OpenBracket, token.OpenBrace:
					depth++
				case token.CloseParenthesis, token.CloseBracket, token.CloseBrace:
					depth--
				}
				defaultToks = append(defaultToks, t)
			}
			param.Default = defaultToks
		}
		def.Params = append(def.Params, param)

		switch sep.Kind {
		case token.CloseParenthesis:
			return true
		case token.Comma:
			continue
		default:
			p.reportAt(diag.ExpectedToken, sep.Span, "expected ',' or ')' in macro parameter list")
			p.skipRestOfLine()
			return false
		}
	}
}

// collectLineTokens gathers first plus every following raw token up to
// (but not including) the next token that starts a new physical line,
// pushing that boundary token back so the caller's caller sees it next.
func (p *Preprocessor) collectLineTokens(first token.Token) []token.Token {
	if first.Kind == token.EOF || startsNewLine(first) {
		p.pushback(first)
		return nil
	}
	toks := []token.Token{first}
	for {
		t := p.nextRaw()
		if t.Kind == token.EOF || startsNewLine(t) {
			p.pushback(t)
			return toks
		}
		toks = append(toks, t)
	}
}

func (p *Preprocessor) handleInclude(tok token.Token) {
	nameTok := p.nextRaw()

	var name string
	var angled bool
	switch nameTok.Kind {
	case token.StringLit:
		name = nameTok.ValueText
	case token.LessThan:
		angled = true
		var sb strings.Builder
		for {
			t := p.nextRaw()
			if t.Kind == token.GreaterThan || t.Kind == token.EOF || startsNewLine(t) {
				if t.Kind != token.GreaterThan {
					p.pushback(t)
				}
				break
			}
			sb.WriteString(t.Text)
		}
		name = sb.String()
	default:
		p.reportAt(diag.ExpectedIncludeFileName, nameTok.Span, "expected include file name")
		p.pushback(nameTok)
		return
	}

	if p.includeDepth() >= p.opts.maxIncludeDepth() {
		p.reportAt(diag.CouldNotOpenIncludeFile, tok.Span, "include depth exceeded opening `"+name+"`")
		return
	}
	if p.opts.IncludeResolver == nil {
		p.reportAt(diag.CouldNotOpenIncludeFile, tok.Span, "no include resolver configured for `"+name+"`")
		return
	}
	path, content, ok := p.opts.IncludeResolver.Resolve(name, angled, p.current().dir)
	if !ok {
		p.reportAt(diag.CouldNotOpenIncludeFile, tok.Span, "could not open include file `"+name+"`")
		return
	}
	id := p.fs.Add(path, content, 0)
	p.pushFile(id, "")
}

func (p *Preprocessor) substituteFileMacro(tok token.Token) {
	path := p.current().file.Path
	p.pushback(token.Token{
		Kind:      token.StringLit,
		Span:      tok.Span,
		Text:      "\"" + path + "\"",
		ValueText: path,
	})
}

func (p *Preprocessor) substituteLineMacro(tok token.Token) {
	start, _ := p.fs.Resolve(tok.Span)
	text := strconv.FormatUint(uint64(start.Line), 10)
	p.pushback(token.Token{
		Kind: token.IntegerLit,
		Span: tok.Span,
		Text: text,
		Numeric: &token.NumericValue{
			Flags: token.DecimalBase | token.IsSigned | token.Unsized,
			Int:   fourstate.FromUint64(32, true, uint64(start.Line)),
		},
	})
}
