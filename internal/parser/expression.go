package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

// parseExpr parses a full expression, including the assignment and
// conditional levels, under ctx's ambiguity-resolving flags.
func (p *Parser) parseExpr(ctx exprContext) syntax.ExprID {
	return p.parseBinary(ctx, precAssignment)
}

// parseConstExpr is a convenience for the many call sites (range bounds,
// parameter defaults, replication counts) that only ever accept a
// constant expression; it sets constantOnly, which does not reject
// hierarchical names.
func (p *Parser) parseConstExpr() syntax.ExprID {
	return p.parseExpr(exprContext{constantOnly: true})
}

// parseBinary implements precedence climbing: minPrec is the lowest
// precedence level this call is willing to consume.
func (p *Parser) parseBinary(ctx exprContext, minPrec int) syntax.ExprID {
	lhs := p.parseUnary(ctx)
	return p.parseBinaryFrom(ctx, minPrec, lhs)
}

// parseBinaryFrom continues precedence climbing from an lhs the caller
// already parsed itself. Statement-level assignment parsing uses this to
// seed the climb from an lvalue it parsed with parseUnary, so it can
// intercept a bare `=`/`<=` before the generic binary-operator table
// (which treats `<=` as "less than or equal", correct everywhere except
// this one position) ever sees it.
func (p *Parser) parseBinaryFrom(ctx exprContext, minPrec int, lhs syntax.ExprID) syntax.ExprID {
	for {
		if ctx.noHierarchicalName && p.at(token.LessThan) {
			// In this position `<` is never a relational operator (it
			// starts a range or edge-control construct the caller
			// handles itself), so stop climbing here.
			return lhs
		}
		if p.at(token.Question) {
			if precAssignment < minPrec {
				return lhs
			}
			lhs = p.parseConditional(ctx, lhs)
			continue
		}
		prec, rightAssoc := binaryOp(p.peek().Kind)
		if prec == precNone || prec < minPrec {
			return lhs
		}
		opTok := p.advance()
		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		rhs := p.parseBinary(ctx, nextMin)
		kind := syntax.ExprBinary
		if isAssignmentOp(opTok.Kind) {
			kind = syntax.ExprAssignment
		}
		lhs = p.b.Exprs.New(syntax.Expr{
			Kind: kind,
			Op:   opTok.Kind,
			Lhs:  lhs,
			Rhs:  rhs,
			Span: p.b.Exprs.Get(lhs).Span.Cover(p.b.Exprs.Get(rhs).Span),
		})
	}
}

func (p *Parser) parseConditional(ctx exprContext, cond syntax.ExprID) syntax.ExprID {
	q := p.advance() // '?'
	then := p.parseBinary(ctx, precAssignment)
	p.expect(token.Colon, diag.ExpectedToken, "expected ':' in conditional expression")
	els := p.parseBinary(ctx, precAssignment)
	return p.b.Exprs.New(syntax.Expr{
		Kind: syntax.ExprConditional,
		Cond: cond,
		Then: then,
		Else: els,
		Span: p.b.Exprs.Get(cond).Span.Cover(q.Span).Cover(p.b.Exprs.Get(els).Span),
	})
}

func (p *Parser) parseUnary(ctx exprContext) syntax.ExprID {
	if unaryOp(p.peek().Kind) {
		opTok := p.advance()
		operand := p.parseUnary(ctx)
		return p.b.Exprs.New(syntax.Expr{
			Kind: syntax.ExprUnary,
			Op:   opTok.Kind,
			Rhs:  operand,
			Span: opTok.Span.Cover(p.b.Exprs.Get(operand).Span),
		})
	}
	if p.at(token.PlusPlus) || p.at(token.MinusMinus) {
		opTok := p.advance()
		operand := p.parseUnary(ctx)
		return p.b.Exprs.New(syntax.Expr{
			Kind: syntax.ExprUnary,
			Op:   opTok.Kind,
			Rhs:  operand,
			Span: opTok.Span.Cover(p.b.Exprs.Get(operand).Span),
		})
	}
	return p.parsePostfix(ctx)
}

// parsePostfix handles bit/range selects, member access, and call
// argument lists layered onto a primary expression.
func (p *Parser) parsePostfix(ctx exprContext) syntax.ExprID {
	e := p.parsePrimary(ctx)
	for {
		switch p.peek().Kind {
		case token.OpenBracket:
			e = p.parseSelect(ctx, e)
		case token.Dot:
			p.advance()
			nameTok, _ := p.expectIdent()
			e = p.b.Exprs.New(syntax.Expr{
				Kind: syntax.ExprMember,
				Base: e,
				Name: nameTok.IdentifierText(),
				Span: p.b.Exprs.Get(e).Span.Cover(nameTok.Span),
			})
		case token.OpenParenthesis:
			e = p.parseCallArgs(ctx, e)
		case token.PlusPlus, token.MinusMinus:
			opTok := p.advance()
			e = p.b.Exprs.New(syntax.Expr{Kind: syntax.ExprUnary, Op: opTok.Kind, Lhs: e, Span: p.b.Exprs.Get(e).Span.Cover(opTok.Span)})
		default:
			return e
		}
	}
}

func (p *Parser) parseSelect(ctx exprContext, arr syntax.ExprID) syntax.ExprID {
	open := p.advance() // '['
	first := p.parseExpr(exprContext{constantOnly: ctx.constantOnly})
	switch p.peek().Kind {
	case token.Colon:
		p.advance()
		lsb := p.parseExpr(exprContext{constantOnly: ctx.constantOnly})
		close, _ := p.expect(token.CloseBracket, diag.ExpectedToken, "expected ']'")
		return p.b.Exprs.New(syntax.Expr{
			Kind: syntax.ExprRangeSelect, Array: arr, MSB: first, LSB: lsb,
			Span: p.b.Exprs.Get(arr).Span.Cover(open.Span).Cover(close.Span),
		})
	case token.PlusColon, token.MinusColon:
		plusForm := p.peek().Kind == token.PlusColon
		p.advance()
		width := p.parseExpr(exprContext{constantOnly: true})
		close, _ := p.expect(token.CloseBracket, diag.ExpectedToken, "expected ']'")
		return p.b.Exprs.New(syntax.Expr{
			Kind: syntax.ExprRangeSelect, Array: arr, MSB: first, LSB: width,
			Indexed: true, PlusForm: plusForm,
			Span: p.b.Exprs.Get(arr).Span.Cover(open.Span).Cover(close.Span),
		})
	default:
		close, _ := p.expect(token.CloseBracket, diag.ExpectedToken, "expected ']'")
		return p.b.Exprs.New(syntax.Expr{
			Kind: syntax.ExprBitSelect, Array: arr, MSB: first,
			Span: p.b.Exprs.Get(arr).Span.Cover(open.Span).Cover(close.Span),
		})
	}
}

func (p *Parser) parseCallArgs(ctx exprContext, callee syntax.ExprID) syntax.ExprID {
	open := p.advance() // '('
	var args []syntax.ExprID
	if !p.at(token.CloseParenthesis) {
		for {
			args = append(args, p.parseExpr(exprContext{constantOnly: ctx.constantOnly}))
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	close, _ := p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' in call arguments")
	name := ""
	if callExpr := p.b.Exprs.Get(callee); callExpr.Kind == syntax.ExprIdent {
		name = callExpr.Name
	}
	return p.b.Exprs.New(syntax.Expr{
		Kind: syntax.ExprCall, Callee: name, Elems: args,
		Span: p.b.Exprs.Get(callee).Span.Cover(open.Span).Cover(close.Span),
	})
}

// parsePrimary handles literals, identifiers/hierarchical paths,
// parenthesized expressions, concatenation, and replication.
func (p *Parser) parsePrimary(ctx exprContext) syntax.ExprID {
	tok := p.peek()
	switch {
	case tok.IsLiteral():
		p.advance()
		return p.b.Exprs.New(syntax.Expr{Kind: syntax.ExprLiteral, Token: &tok, Span: tok.Span})

	case tok.IsIdentifier():
		return p.parseIdentOrHierarchical(ctx)

	case tok.Kind == token.OpenParenthesis:
		p.advance()
		inner := p.parseExpr(ctx)
		p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')'")
		return inner

	case tok.Kind == token.OpenBrace:
		return p.parseBraceExpr(ctx)

	default:
		p.err(diag.ExpectedExpression, "expected expression, got '"+tok.Text+"'")
		p.advance()
		return p.b.Exprs.New(syntax.Expr{Kind: syntax.ExprMissing, Span: tok.Span})
	}
}

// parseIdentOrHierarchical consumes a dotted identifier path
// (`a.b.c`) as a single ExprHierarchical when it's unambiguously a name
// (no calls/selects interleaved - those are peeled off by parsePostfix
// afterwards), or a plain ExprIdent for a bare name.
func (p *Parser) parseIdentOrHierarchical(ctx exprContext) syntax.ExprID {
	first := p.advance()
	name := first.IdentifierText()
	if ctx.noHierarchicalName || p.peekAt(0).Kind != token.Dot || p.peekAt(1).Kind == token.OpenParenthesis {
		return p.b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: name, Span: first.Span})
	}
	// Only fold into ExprHierarchical when the path is a straight chain
	// of dotted identifiers; a member access followed by a call or
	// select is left to parsePostfix so `a.b(x)`/`a.b[0]` still work.
	span := first.Span
	var path []string
	for p.at(token.Dot) {
		save := p.buf
		p.advance()
		if !p.peek().IsIdentifier() {
			p.buf = save
			break
		}
		seg := p.advance()
		path = append(path, seg.IdentifierText())
		span = span.Cover(seg.Span)
		if p.at(token.OpenParenthesis) || p.at(token.OpenBracket) {
			break
		}
	}
	if len(path) == 0 {
		return p.b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: name, Span: first.Span})
	}
	return p.b.Exprs.New(syntax.Expr{Kind: syntax.ExprHierarchical, Name: name, Path: path, Span: span})
}

// parseBraceExpr parses `{a, b, c}` (concatenation) or `{n{a}}`
// (replication).
func (p *Parser) parseBraceExpr(ctx exprContext) syntax.ExprID {
	open := p.advance() // '{'
	first := p.parseExpr(exprContext{constantOnly: ctx.constantOnly})
	if p.at(token.OpenBrace) {
		body := p.parseBraceExpr(ctx)
		close, _ := p.expect(token.CloseBrace, diag.ExpectedToken, "expected '}'")
		return p.b.Exprs.New(syntax.Expr{
			Kind: syntax.ExprReplication, Count: first, Body: body,
			Span: open.Span.Cover(close.Span),
		})
	}
	elems := []syntax.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		elems = append(elems, p.parseExpr(exprContext{constantOnly: ctx.constantOnly}))
	}
	close, _ := p.expect(token.CloseBrace, diag.ExpectedToken, "expected '}'")
	return p.b.Exprs.New(syntax.Expr{
		Kind: syntax.ExprConcat, Elems: elems,
		Span: open.Span.Cover(close.Span),
	})
}
