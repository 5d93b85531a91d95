package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

// rawNext pulls the next token straight from the preprocessor, splicing
// in any trivia held in pendingLeading.
func (p *Parser) rawNext() token.Token {
	t := p.pp.Next()
	if len(p.pendingLeading) > 0 {
		leading := make([]token.Trivia, 0, len(p.pendingLeading)+len(t.Leading))
		leading = append(leading, p.pendingLeading...)
		leading = append(leading, t.Leading...)
		t.Leading = leading
		p.pendingLeading = nil
	}
	return t
}

func (p *Parser) fill(n int) {
	for len(p.buf) < n {
		p.buf = append(p.buf, p.rawNext())
	}
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	p.fill(1)
	return p.buf[0]
}

// peekAt returns the token n places past the current one (peekAt(0) ==
// peek()), buffering as many tokens as needed. Used for the handful of
// two-token lookahead decisions SV's grammar genuinely requires (an
// implicit-type parameter's bare name vs. a named-type parameter).
func (p *Parser) peekAt(n int) token.Token {
	p.fill(n + 1)
	return p.buf[n]
}

func (p *Parser) advance() token.Token {
	p.fill(1)
	t := p.buf[0]
	p.buf = p.buf[1:]
	if t.Kind != token.EOF {
		p.lastSpan = t.Span
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) atOr(kinds ...token.Kind) bool {
	pk := p.peek().Kind
	for _, k := range kinds {
		if pk == k {
			return true
		}
	}
	return false
}

// diagSpan returns the best span to attach a diagnostic to: the current
// token's span, or (at EOF) the position just past the last consumed
// token, so an "unexpected end of file" diagnostic doesn't collapse to
// span zero.
func (p *Parser) diagSpan() source.Span {
	pk := p.peek()
	if pk.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return pk.Span
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		p.currentErrors++
	}
	if p.opts.MaxErrors != 0 && p.currentErrors > p.opts.MaxErrors {
		return
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

// expect consumes the next token if it has kind k; otherwise it reports
// code at the current position and returns a synthetic missing token
// (zero-length span, Kind == k) so callers can keep building a tree
// without special-casing failure.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.err(code, msg)
	return token.Token{Kind: k, Span: source.Span{File: sp.File, Start: sp.Start, End: sp.Start}}, false
}

func (p *Parser) expectIdent() (token.Token, bool) {
	if p.peek().IsIdentifier() {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.err(diag.ExpectedIdentifier, "expected identifier, got '"+p.peek().Text+"'")
	return token.Token{Kind: token.Ident, Span: source.Span{File: sp.File, Start: sp.Start, End: sp.Start}}, false
}

// resyncUntil discards tokens until one matches kinds (or EOF), attaching
// everything it threw away as SkippedToken trivia on the token it stopped
// at, so the tree stays lossless even across a recovery.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	var skipped []token.Trivia
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		t := p.advance()
		skipped = append(skipped, token.Trivia{Kind: token.SkippedToken, Span: t.Span, Text: t.Text})
	}
	if len(skipped) == 0 {
		return
	}
	p.fill(1)
	p.buf[0].Leading = append(skipped, p.buf[0].Leading...)
}
