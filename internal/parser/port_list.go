package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

var portDirKeywords = map[token.Kind]syntax.Direction{
	token.InputKeyword: syntax.DirInput, token.OutputKeyword: syntax.DirOutput,
	token.InOutKeyword: syntax.DirInOut, token.RefKeyword: syntax.DirRef,
	token.InterconnectKeyword: syntax.DirInterconnect,
}

// parseParamPortList parses a `#( ... )` parameter port list attached to
// unit's header, pushing each Param into unit via the Builder.
func (p *Parser) parseParamPortList(unit syntax.UnitID) {
	p.advance() // '#'
	p.expect(token.OpenParenthesis, diag.ExpectedToken, "expected '(' after '#' in parameter port list")
	if p.at(token.CloseParenthesis) {
		p.advance()
		return
	}
	currentLocal := false // parameters in a port list default to non-local unless declared 'localparam'
	for {
		isLocal := currentLocal
		isType := false
		switch p.peek().Kind {
		case token.ParameterKeyword:
			p.advance()
			isLocal = false
		case token.LocalParamKeyword:
			p.advance()
			isLocal = true
		}
		currentLocal = isLocal
		if p.at(token.TypeKeyword) {
			p.advance()
			isType = true
		}

		var dt syntax.DataTypeID
		if !isType && p.dataTypePrecedesParamName() {
			dt = p.parseDataType()
		}

		nameTok, ok := p.expectIdent()
		if !ok {
			break
		}
		param := syntax.Param{Name: nameTok.IdentifierText(), IsLocal: isLocal, IsType: isType, DataType: dt}
		if p.at(token.Equals) {
			p.advance()
			if isType {
				param.DefaultTyp = p.parseDataType()
			} else {
				param.Default = p.parseConstExpr()
			}
		}
		p.b.PushParam(unit, p.b.Params.New(param))
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' to close parameter port list")
}

// dataTypePrecedesParamName reports whether the current position starts
// an explicit data type rather than an implicitly-typed parameter's bare
// name: `parameter W = 8` has no type, `parameter int W = 8` does.
func (p *Parser) dataTypePrecedesParamName() bool {
	if isDataTypeStart(p.peek().Kind) {
		return true
	}
	// A named type used as a parameter's type looks like two identifiers
	// in a row (`Foo bar = ...`); a bare implicit parameter name is a
	// single identifier followed directly by '=', ',', or ')'.
	return p.peek().IsIdentifier() && p.peekAt(1).IsIdentifier()
}

// parsePortList parses a `( ... )` ANSI port list attached to unit's
// header.
func (p *Parser) parsePortList(unit syntax.UnitID) {
	p.advance() // '('
	if p.at(token.CloseParenthesis) {
		p.advance()
		return
	}
	currentDir := syntax.DirInput
	currentType := syntax.NoDataTypeID
	for {
		dir := currentDir
		if d, ok := portDirKeywords[p.peek().Kind]; ok {
			p.advance()
			dir = d
		}
		currentDir = dir

		var dt syntax.DataTypeID = currentType
		if isDataTypeStart(p.peek().Kind) {
			dt = p.parseDataType()
			currentType = dt
		}

		nameTok, ok := p.expectIdent()
		if !ok {
			break
		}
		port := syntax.Port{Name: nameTok.IdentifierText(), Dir: dir, DataType: dt, Span: nameTok.Span}
		if p.at(token.OpenBracket) {
			for p.at(token.OpenBracket) {
				p.parseRange()
			}
		}
		if p.at(token.Equals) {
			p.advance()
			port.Default = p.parseExpr(exprContext{})
		}
		p.b.PushPort(unit, p.b.Ports.New(port))
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.CloseParenthesis, diag.ExpectedToken, "expected ')' to close port list")
}
