package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

// parseInstantiation parses `DefName [#(param_assigns)] instName(conns) {, instName2(conns)} ;`
// (LRM 23.3's hierarchy_instantiation).
func (p *Parser) parseInstantiation() (syntax.InstID, bool) {
	defTok, ok := p.expectIdent()
	if !ok {
		return 0, false
	}
	inst := syntax.Inst{DefName: defTok.IdentifierText(), Span: defTok.Span}

	if p.at(token.Hash) {
		p.advance()
		p.expect(token.OpenParenthesis, diag.ExpectedToken, "expected '(' after '#' in parameter value assignment")
		if !p.at(token.CloseParenthesis) {
			for {
				inst.ParamAssigns = append(inst.ParamAssigns, p.parseParamAssign())
				if p.at(token.Comma) {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' to close parameter value assignment")
	}

	for {
		instance, ok := p.parseHierarchicalInstance()
		if !ok {
			return 0, false
		}
		inst.Instances = append(inst.Instances, instance)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after instantiation")
	inst.Span = inst.Span.Cover(semi.Span)
	return p.b.Insts.New(inst), true
}

// parseParamAssign parses one entry of a `#(...)` list: `.name(expr)`,
// `.name(type)` (for a type parameter), or a bare ordered value.
func (p *Parser) parseParamAssign() syntax.ParamAssignID {
	start := p.peek()
	pa := syntax.ParamAssign{Span: start.Span}
	if p.at(token.Dot) {
		p.advance()
		nameTok, _ := p.expectIdent()
		pa.Name = nameTok.IdentifierText()
		p.expect(token.OpenParenthesis, diag.ExpectedToken, "expected '(' after named parameter assignment")
		if !p.at(token.CloseParenthesis) {
			if isDataTypeStart(p.peek().Kind) {
				pa.Type = p.parseDataType()
			} else {
				pa.Value = p.parseConstExpr()
			}
		}
		close, _ := p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' after named parameter assignment")
		pa.Span = pa.Span.Cover(close.Span)
		return p.b.ParamAssigns.New(pa)
	}
	pa.Value = p.parseConstExpr()
	return p.b.ParamAssigns.New(pa)
}

// parseHierarchicalInstance parses `name [dims] ( [connections] )`.
func (p *Parser) parseHierarchicalInstance() (syntax.InstanceID, bool) {
	nameTok, ok := p.expectIdent()
	if !ok {
		return 0, false
	}
	instance := syntax.Instance{Name: nameTok.IdentifierText(), Span: nameTok.Span}
	for p.at(token.OpenBracket) {
		id, _ := p.parseRange()
		instance.Dims = append(instance.Dims, id)
	}
	p.expect(token.OpenParenthesis, diag.ExpectedToken, "expected '(' to open port connection list")
	if p.at(token.DotStar) {
		p.advance()
		instance.Connections = append(instance.Connections, p.b.Conns.New(syntax.Conn{Name: "*"}))
	} else if !p.at(token.CloseParenthesis) {
		for {
			instance.Connections = append(instance.Connections, p.parseConn())
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	close, _ := p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' to close port connection list")
	instance.Span = instance.Span.Cover(close.Span)
	return p.b.Instances.New(instance), true
}

// parseConn parses one port connection: `.name(expr)`, `.name` shorthand,
// or a bare ordered expression.
func (p *Parser) parseConn() syntax.ConnID {
	start := p.peek()
	if p.at(token.Dot) {
		p.advance()
		nameTok, _ := p.expectIdent()
		conn := syntax.Conn{Name: nameTok.IdentifierText(), Span: start.Span}
		if p.at(token.OpenParenthesis) {
			p.advance()
			if !p.at(token.CloseParenthesis) {
				conn.Expr = p.parseExpr(exprContext{})
			}
			close, _ := p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' after named port connection")
			conn.Span = conn.Span.Cover(close.Span)
		}
		return p.b.Conns.New(conn)
	}
	expr := p.parseExpr(exprContext{})
	return p.b.Conns.New(syntax.Conn{Expr: expr, Span: start.Span.Cover(p.b.Exprs.Get(expr).Span)})
}
