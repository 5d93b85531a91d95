package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

// parseStmt parses a representative subset of LRM 12's statement
// grammar: sequential blocks, if/else, case, the three loop forms,
// blocking/nonblocking assignment, and call/expression statements.
func (p *Parser) parseStmt() (syntax.StmtID, bool) {
	start := p.peek()
	switch start.Kind {
	case token.BeginKeyword:
		return p.parseBlockStmt()
	case token.IfKeyword:
		return p.parseIfStmt()
	case token.CaseKeyword, token.CaseXKeyword, token.CaseZKeyword:
		return p.parseCaseStmt()
	case token.ForKeyword:
		return p.parseForStmt()
	case token.WhileKeyword:
		return p.parseWhileStmt()
	case token.ForeverKeyword:
		return p.parseForeverStmt()
	case token.Semicolon:
		p.advance()
		return p.b.Stmts.New(syntax.Stmt{Kind: syntax.StmtEmpty, Span: start.Span}), true
	default:
		return p.parseAssignOrCallStmt()
	}
}

func (p *Parser) parseBlockStmt() (syntax.StmtID, bool) {
	begin := p.advance() // 'begin'
	var label string
	if p.at(token.Colon) {
		p.advance()
		nameTok, _ := p.expectIdent()
		label = nameTok.IdentifierText()
	}
	var items []syntax.StmtID
	for !p.at(token.EndKeyword) && !p.at(token.EOF) {
		s, ok := p.parseStmt()
		if !ok {
			p.resyncUntil(token.Semicolon, token.EndKeyword)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		items = append(items, s)
	}
	end, _ := p.expect(token.EndKeyword, diag.ExpectedToken, "expected 'end' to close block")
	if p.at(token.Colon) {
		p.advance()
		p.expectIdent()
	}
	return p.b.Stmts.New(syntax.Stmt{Kind: syntax.StmtBlock, Items: items, Label: label, Span: begin.Span.Cover(end.Span)}), true
}

func (p *Parser) parseIfStmt() (syntax.StmtID, bool) {
	kw := p.advance() // 'if'
	p.expect(token.OpenParenthesis, diag.ExpectedToken, "expected '(' after 'if'")
	cond := p.parseExpr(exprContext{})
	p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' after if condition")
	then, ok := p.parseStmt()
	if !ok {
		return 0, false
	}
	stmt := syntax.Stmt{Kind: syntax.StmtIf, Cond: cond, Then: then, Span: kw.Span.Cover(p.b.Stmts.Get(then).Span)}
	if p.at(token.ElseKeyword) {
		p.advance()
		els, ok := p.parseStmt()
		if ok {
			stmt.Else = els
			stmt.Span = stmt.Span.Cover(p.b.Stmts.Get(els).Span)
		}
	}
	return p.b.Stmts.New(stmt), true
}

func (p *Parser) parseCaseStmt() (syntax.StmtID, bool) {
	kw := p.advance() // 'case'/'casex'/'casez'
	p.expect(token.OpenParenthesis, diag.ExpectedToken, "expected '(' after 'case'")
	selector := p.parseExpr(exprContext{})
	p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' after case selector")

	var items []uint32
	for !p.at(token.EndCaseKeyword) && !p.at(token.EOF) {
		item, ok := p.parseCaseItem()
		if !ok {
			p.resyncUntil(token.Semicolon, token.EndCaseKeyword, token.DefaultKeyword)
			continue
		}
		items = append(items, item)
	}
	end, _ := p.expect(token.EndCaseKeyword, diag.ExpectedToken, "expected 'endcase'")
	return p.b.Stmts.New(syntax.Stmt{Kind: syntax.StmtCase, Selector: selector, CaseItems: items, Span: kw.Span.Cover(end.Span)}), true
}

func (p *Parser) parseCaseItem() (uint32, bool) {
	start := p.peek()
	item := syntax.CaseItem{Span: start.Span}
	if p.at(token.DefaultKeyword) {
		p.advance()
		item.Default = true
	} else {
		item.Exprs = append(item.Exprs, p.parseExpr(exprContext{}))
		for p.at(token.Comma) {
			p.advance()
			item.Exprs = append(item.Exprs, p.parseExpr(exprContext{}))
		}
	}
	p.expect(token.Colon, diag.ExpectedToken, "expected ':' in case item")
	body, ok := p.parseStmt()
	if !ok {
		return 0, false
	}
	item.Body = body
	item.Span = item.Span.Cover(p.b.Stmts.Get(body).Span)
	return p.b.Stmts.CaseItems.New(item), true
}

func (p *Parser) parseForStmt() (syntax.StmtID, bool) {
	kw := p.advance() // 'for'
	p.expect(token.OpenParenthesis, diag.ExpectedToken, "expected '(' after 'for'")

	stmt := syntax.Stmt{Kind: syntax.StmtFor}
	if isDataTypeStart(p.peek().Kind) || (p.peek().IsIdentifier() && p.peekAt(1).IsIdentifier()) {
		decl, ok := p.parseVariableDecl()
		if ok {
			stmt.InitDecl = decl
		}
	} else if !p.at(token.Semicolon) {
		stmt.InitExpr = p.parseExpr(exprContext{})
		p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after for-loop initializer")
	} else {
		p.advance()
	}

	if !p.at(token.Semicolon) {
		stmt.ForCond = p.parseExpr(exprContext{})
	}
	p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after for-loop condition")

	if !p.at(token.CloseParenthesis) {
		stmt.ForSteps = append(stmt.ForSteps, p.parseExpr(exprContext{}))
		for p.at(token.Comma) {
			p.advance()
			stmt.ForSteps = append(stmt.ForSteps, p.parseExpr(exprContext{}))
		}
	}
	p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' to close for-loop header")

	body, ok := p.parseStmt()
	if !ok {
		return 0, false
	}
	stmt.Body = body
	stmt.Span = kw.Span.Cover(p.b.Stmts.Get(body).Span)
	return p.b.Stmts.New(stmt), true
}

func (p *Parser) parseWhileStmt() (syntax.StmtID, bool) {
	kw := p.advance() // 'while'
	p.expect(token.OpenParenthesis, diag.ExpectedToken, "expected '(' after 'while'")
	cond := p.parseExpr(exprContext{})
	p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' after while condition")
	body, ok := p.parseStmt()
	if !ok {
		return 0, false
	}
	return p.b.Stmts.New(syntax.Stmt{Kind: syntax.StmtWhile, Cond: cond, Body: body, Span: kw.Span.Cover(p.b.Stmts.Get(body).Span)}), true
}

func (p *Parser) parseForeverStmt() (syntax.StmtID, bool) {
	kw := p.advance() // 'forever'
	body, ok := p.parseStmt()
	if !ok {
		return 0, false
	}
	return p.b.Stmts.New(syntax.Stmt{Kind: syntax.StmtForever, Body: body, Span: kw.Span.Cover(p.b.Stmts.Get(body).Span)}), true
}

// parseAssignOrCallStmt handles blocking/nonblocking assignment and
// call/expression statements, the fallback for anything not recognized
// by a leading keyword above.
//
// The lhs is parsed with parseUnary rather than the full parseExpr: `<=`
// is ordinarily the "less than or equal" relational operator, but right
// here, at statement level, a bare `<=` after an lvalue is the
// nonblocking assignment operator instead. Climbing straight into
// parseExpr would let the binary-operator table swallow both `=` and
// `<=` as expression operators before this switch ever saw them.
func (p *Parser) parseAssignOrCallStmt() (syntax.StmtID, bool) {
	start := p.peek()
	lhs := p.parseUnary(exprContext{})
	switch p.peek().Kind {
	case token.Equals:
		p.advance()
		rhs := p.parseExpr(exprContext{})
		semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after assignment")
		return p.b.Stmts.New(syntax.Stmt{Kind: syntax.StmtAssign, Lhs: lhs, Rhs: rhs, Op: syntax.AssignBlocking, Span: start.Span.Cover(semi.Span)}), true
	case token.LessThanEquals:
		p.advance()
		rhs := p.parseExpr(exprContext{})
		semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after nonblocking assignment")
		return p.b.Stmts.New(syntax.Stmt{Kind: syntax.StmtAssign, Lhs: lhs, Rhs: rhs, Op: syntax.AssignNonblocking, Span: start.Span.Cover(semi.Span)}), true
	default:
		expr := p.parseBinaryFrom(exprContext{}, precAssignment, lhs)
		semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after statement")
		kind := syntax.StmtExpr
		if e := p.b.Exprs.Get(expr); e.Kind == syntax.ExprCall {
			kind = syntax.StmtCallStmt
		}
		return p.b.Stmts.New(syntax.Stmt{Kind: kind, Expr: expr, Span: start.Span.Cover(semi.Span)}), true
	}
}
