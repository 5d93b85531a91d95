package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

var netTypeKeywords = map[token.Kind]syntax.NetKind{
	token.WireKeyword: syntax.NetWire, token.WAndKeyword: syntax.NetWAnd,
	token.WOrKeyword: syntax.NetWOr, token.TriKeyword: syntax.NetTri,
	token.Tri0Keyword: syntax.NetTri0, token.Tri1Keyword: syntax.NetTri1,
	token.TriAndKeyword: syntax.NetTriAnd, token.TriOrKeyword: syntax.NetTriOr,
	token.TriRegKeyword: syntax.NetTriReg, token.UWireKeyword: syntax.NetUWire,
	token.Supply0Keyword: syntax.NetSupply0, token.Supply1Keyword: syntax.NetSupply1,
}

// parseDecl parses one variable, net, typedef, continuous-assign, or
// genvar declaration statement, starting at the current token.
func (p *Parser) parseDecl() (syntax.DeclID, bool) {
	start := p.peek()
	if net, ok := netTypeKeywords[start.Kind]; ok {
		return p.parseNetDecl(net)
	}
	switch start.Kind {
	case token.TypedefKeyword:
		return p.parseTypedef()
	case token.GenVarKeyword:
		return p.parseGenvarDecl()
	case token.AssignKeyword:
		return p.parseContinuousAssign()
	default:
		return p.parseVariableDecl()
	}
}

func (p *Parser) parseNetDecl(kind syntax.NetKind) (syntax.DeclID, bool) {
	start := p.advance()
	var dt syntax.DataTypeID
	if isDataTypeStart(p.peek().Kind) {
		dt = p.parseDataType()
	}
	decl := syntax.Decl{Kind: syntax.DeclNet, Net: kind, DataType: dt, Span: start.Span}
	if !p.parseDeclaratorList(&decl) {
		return 0, false
	}
	semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after net declaration")
	decl.Span = decl.Span.Cover(semi.Span)
	return p.b.Decls.New(decl), true
}

func (p *Parser) parseVariableDecl() (syntax.DeclID, bool) {
	start := p.peek()
	dt := p.parseDataType()
	decl := syntax.Decl{Kind: syntax.DeclVariable, DataType: dt, Span: start.Span}
	if !p.parseDeclaratorList(&decl) {
		return 0, false
	}
	semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after variable declaration")
	decl.Span = decl.Span.Cover(semi.Span)
	return p.b.Decls.New(decl), true
}

// parseDeclaratorList parses `name [dims] [= init], name2, ...` into
// decl's Names/Inits, both index-parallel.
func (p *Parser) parseDeclaratorList(decl *syntax.Decl) bool {
	for {
		nameTok, ok := p.expectIdent()
		if !ok {
			return false
		}
		decl.Names = append(decl.Names, nameTok.IdentifierText())
		decl.NameSpan = append(decl.NameSpan, nameTok.Span)
		var init syntax.ExprID
		if p.at(token.OpenBracket) {
			// Unpacked array dims on the declarator; the dimensions
			// themselves aren't retained per-name in this representative
			// subset, only consumed so the parse stays in sync.
			for p.at(token.OpenBracket) {
				p.parseRange()
			}
		}
		if p.at(token.Equals) {
			p.advance()
			init = p.parseExpr(exprContext{})
		}
		decl.Inits = append(decl.Inits, init)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		return true
	}
}

func (p *Parser) parseGenvarDecl() (syntax.DeclID, bool) {
	start := p.advance() // 'genvar'
	decl := syntax.Decl{Kind: syntax.DeclGenvar, Span: start.Span}
	if !p.parseDeclaratorList(&decl) {
		return 0, false
	}
	semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after genvar declaration")
	decl.Span = decl.Span.Cover(semi.Span)
	return p.b.Decls.New(decl), true
}

func (p *Parser) parseTypedef() (syntax.DeclID, bool) {
	start := p.advance() // 'typedef'
	if p.peek().IsIdentifier() && (p.peekAt(1).Kind == token.Semicolon) {
		// Forward declaration: `typedef name;`
		nameTok := p.advance()
		semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after forward typedef")
		return p.b.Decls.New(syntax.Decl{Kind: syntax.DeclTypedefForward, TypedefName: nameTok.IdentifierText(), Span: start.Span.Cover(semi.Span)}), true
	}
	dt := p.parseDataType()
	nameTok, ok := p.expectIdent()
	if !ok {
		return 0, false
	}
	semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after typedef")
	return p.b.Decls.New(syntax.Decl{Kind: syntax.DeclTypedef, TypedefName: nameTok.IdentifierText(), DataType: dt, Span: start.Span.Cover(semi.Span)}), true
}

func (p *Parser) parseContinuousAssign() (syntax.DeclID, bool) {
	start := p.advance() // 'assign'
	// target is parsed with parseUnary, not parseExpr: '=' is a binary
	// operator in the general expression grammar (it builds an
	// ExprAssignment for contexts like a for-loop step clause), so
	// parseExpr here would consume the assignment itself before the
	// explicit expect(Equals) below ever saw it.
	target := p.parseUnary(exprContext{})
	p.expect(token.Equals, diag.ExpectedToken, "expected '=' in continuous assignment")
	value := p.parseExpr(exprContext{})
	semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after continuous assignment")
	return p.b.Decls.New(syntax.Decl{Kind: syntax.DeclContinuousAssign, Target: target, Value: value, Span: start.Span.Cover(semi.Span)}), true
}
