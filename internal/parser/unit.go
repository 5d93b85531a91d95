package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

func endKeywordFor(kind syntax.UnitKind) token.Kind {
	switch kind {
	case syntax.UnitInterface:
		return token.EndInterfaceKeyword
	case syntax.UnitProgram:
		return token.EndProgramKeyword
	case syntax.UnitPackage:
		return token.EndPackageKeyword
	default:
		return token.EndModuleKeyword
	}
}

// parseUnit parses a module/interface/program/package declaration: the
// start keyword was already peeked (not consumed) by the caller.
func (p *Parser) parseUnit(kind syntax.UnitKind) bool {
	startKw := p.advance()
	nameTok, ok := p.expectIdent()
	if !ok {
		p.resyncUntil(token.Semicolon, endKeywordFor(kind))
		return false
	}

	unit := p.b.Units.New(kind, nameTok.IdentifierText(), startKw.Span)

	if p.at(token.Hash) {
		p.parseParamPortList(unit)
	}
	if kind != syntax.UnitPackage && p.at(token.OpenParenthesis) {
		p.parsePortList(unit)
	}
	p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after "+kind.String()+" header")

	endKw := endKeywordFor(kind)
	for !p.at(endKw) && !p.at(token.EOF) {
		item, ok := p.parseItem()
		if !ok {
			p.resyncUntil(token.Semicolon, endKw)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		p.b.PushItem(unit, item)
	}
	end, _ := p.expect(endKw, diag.ExpectedToken, "expected 'end"+kind.String()+"'")
	if p.at(token.Colon) {
		p.advance()
		p.expectIdent()
	}

	u := p.b.Units.Get(unit)
	u.Span = startKw.Span.Cover(end.Span)
	p.b.PushUnit(p.file, unit)
	return true
}

// parseItem dispatches on the current token to parse one module/interface
// body item: a declaration, a hierarchy instantiation, a body-level
// parameter, or a procedural block.
func (p *Parser) parseItem() (syntax.ItemID, bool) {
	start := p.peek()
	switch start.Kind {
	case token.ParameterKeyword, token.LocalParamKeyword:
		return p.parseParamItem()
	case token.InitialKeyword, token.FinalKeyword, token.AlwaysKeyword,
		token.AlwaysCombKeyword, token.AlwaysFFKeyword, token.AlwaysLatchKeyword:
		return p.parseProceduralItem()
	default:
		if net, ok := netTypeKeywords[start.Kind]; ok {
			decl, ok := p.parseNetDecl(net)
			if !ok {
				return 0, false
			}
			return p.b.Items.New(syntax.Item{Kind: syntax.ItemDecl, Decl: decl, Span: p.b.Decls.Get(decl).Span}), true
		}
		switch start.Kind {
		case token.TypedefKeyword, token.GenVarKeyword, token.AssignKeyword:
			decl, ok := p.parseDecl()
			if !ok {
				return 0, false
			}
			return p.b.Items.New(syntax.Item{Kind: syntax.ItemDecl, Decl: decl, Span: p.b.Decls.Get(decl).Span}), true
		}
		if isDataTypeStart(start.Kind) {
			decl, ok := p.parseVariableDecl()
			if !ok {
				return 0, false
			}
			return p.b.Items.New(syntax.Item{Kind: syntax.ItemDecl, Decl: decl, Span: p.b.Decls.Get(decl).Span}), true
		}
		if start.IsIdentifier() && p.looksLikeInstantiation() {
			inst, ok := p.parseInstantiation()
			if !ok {
				return 0, false
			}
			return p.b.Items.New(syntax.Item{Kind: syntax.ItemInstantiation, Inst: inst, Span: p.b.Insts.Get(inst).Span}), true
		}
		if start.IsIdentifier() {
			decl, ok := p.parseVariableDecl()
			if !ok {
				return 0, false
			}
			return p.b.Items.New(syntax.Item{Kind: syntax.ItemDecl, Decl: decl, Span: p.b.Decls.Get(decl).Span}), true
		}
		p.err(diag.UnexpectedToken, "unexpected token '"+start.Text+"' in module body")
		return 0, false
	}
}

// looksLikeInstantiation resolves the identifier-vs-identifier ambiguity
// between `TypeName instName;` (an implicit-net or user-type variable
// declaration) and `DefName instName(...);` (a hierarchy instantiation):
// only the latter has a `#` right after the first identifier or an open
// parenthesis right after the second.
func (p *Parser) looksLikeInstantiation() bool {
	if p.peekAt(1).Kind == token.Hash {
		return true
	}
	return p.peekAt(1).IsIdentifier() && p.peekAt(2).Kind == token.OpenParenthesis
}

func (p *Parser) parseParamItem() (syntax.ItemID, bool) {
	start := p.peek()
	isLocal := start.Kind == token.LocalParamKeyword
	p.advance()
	isType := false
	if p.at(token.TypeKeyword) {
		p.advance()
		isType = true
	}
	var dt syntax.DataTypeID
	if !isType && isDataTypeStart(p.peek().Kind) && !(p.peek().IsIdentifier() && p.peekAt(1).Kind == token.Equals) {
		dt = p.parseDataType()
	}
	var params []syntax.ParamID
	for {
		nameTok, ok := p.expectIdent()
		if !ok {
			break
		}
		param := syntax.Param{Name: nameTok.IdentifierText(), IsLocal: isLocal, IsType: isType, DataType: dt}
		p.expect(token.Equals, diag.ExpectedToken, "expected '=' in parameter declaration")
		if isType {
			param.DefaultTyp = p.parseDataType()
		} else {
			param.Default = p.parseConstExpr()
		}
		params = append(params, p.b.Params.New(param))
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	semi, _ := p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after parameter declaration")
	return p.b.Items.New(syntax.Item{Kind: syntax.ItemParamDecl, Params: params, Span: start.Span.Cover(semi.Span)}), len(params) > 0
}

var procKindOf = map[token.Kind]syntax.ProceduralBlockKind{
	token.InitialKeyword: syntax.ProcInitial, token.FinalKeyword: syntax.ProcFinal,
	token.AlwaysKeyword: syntax.ProcAlways, token.AlwaysCombKeyword: syntax.ProcAlwaysComb,
	token.AlwaysFFKeyword: syntax.ProcAlwaysFF, token.AlwaysLatchKeyword: syntax.ProcAlwaysLatch,
}

func (p *Parser) parseProceduralItem() (syntax.ItemID, bool) {
	kw := p.advance()
	if p.at(token.At) {
		p.skipEventControl()
	}
	body, ok := p.parseStmt()
	if !ok {
		return 0, false
	}
	return p.b.Items.New(syntax.Item{
		Kind: syntax.ItemProceduralBlock, Proc: procKindOf[kw.Kind], Body: body,
		Span: kw.Span.Cover(p.b.Stmts.Get(body).Span),
	}), true
}

// skipEventControl consumes an `@(...)`/`@*`/`@identifier` sensitivity
// list ahead of an always-family body; the event expression itself
// doesn't participate in the representative statement subset elaboration
// builds on, so its structure isn't retained.
func (p *Parser) skipEventControl() {
	p.advance() // '@'
	if p.at(token.Star) {
		p.advance()
		return
	}
	if !p.at(token.OpenParenthesis) {
		p.expectIdent()
		return
	}
	depth := 0
	for {
		t := p.advance()
		switch t.Kind {
		case token.OpenParenthesis:
			depth++
		case token.CloseParenthesis:
			depth--
			if depth == 0 {
				return
			}
		case token.EOF:
			return
		}
	}
}
