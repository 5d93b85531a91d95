package parser

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

// scalarTypeKeywords are the 2/4-state scalar and net-like type keywords
// that all share DataTypeScalar's shape (LRM 6.3, 6.7).
var scalarTypeKeywords = map[token.Kind]bool{
	token.LogicKeyword: true, token.RegKeyword: true, token.BitKeyword: true,
}

var integerAtomKeywords = map[token.Kind]bool{
	token.ByteKeyword: true, token.ShortIntKeyword: true, token.IntKeyword: true,
	token.LongIntKeyword: true, token.IntegerKeyword: true, token.TimeKeyword: true,
}

var floatingKeywords = map[token.Kind]bool{
	token.ShortRealKeyword: true, token.RealKeyword: true, token.RealTimeKeyword: true,
}

// isDataTypeStart reports whether k can begin a data_type production.
func isDataTypeStart(k token.Kind) bool {
	if scalarTypeKeywords[k] || integerAtomKeywords[k] || floatingKeywords[k] {
		return true
	}
	switch k {
	case token.StringKeyword, token.CHandleKeyword, token.EventKeyword,
		token.VoidKeyword, token.EnumKeyword, token.StructKeyword,
		token.UnionKeyword, token.VirtualKeyword, token.SignedKeyword,
		token.UnsignedKeyword:
		return true
	}
	return false
}

// parseDataType parses a data_type production. Callers that also accept
// an implicit type (parameter/port declarations) check isDataTypeStart or
// use a name-based heuristic themselves before calling this.
func (p *Parser) parseDataType() syntax.DataTypeID {
	tok := p.peek()
	switch {
	case scalarTypeKeywords[tok.Kind]:
		return p.parseScalarOrIntegerAtom(syntax.DataTypeScalar)
	case integerAtomKeywords[tok.Kind]:
		return p.parseScalarOrIntegerAtom(syntax.DataTypeIntegerAtom)
	case floatingKeywords[tok.Kind]:
		p.advance()
		return p.b.DataTypes.New(syntax.DataType{Kind: syntax.DataTypeFloating, BaseKind: tok.Kind, Span: tok.Span})
	case tok.Kind == token.StringKeyword:
		p.advance()
		return p.b.DataTypes.New(syntax.DataType{Kind: syntax.DataTypeString, Span: tok.Span})
	case tok.Kind == token.CHandleKeyword:
		p.advance()
		return p.b.DataTypes.New(syntax.DataType{Kind: syntax.DataTypeCHandle, Span: tok.Span})
	case tok.Kind == token.EventKeyword:
		p.advance()
		return p.b.DataTypes.New(syntax.DataType{Kind: syntax.DataTypeEvent, Span: tok.Span})
	case tok.Kind == token.VoidKeyword:
		p.advance()
		return p.b.DataTypes.New(syntax.DataType{Kind: syntax.DataTypeVoid, Span: tok.Span})
	case tok.Kind == token.EnumKeyword:
		return p.parseEnumType()
	case tok.Kind == token.StructKeyword, tok.Kind == token.UnionKeyword:
		return p.parseStructOrUnionType()
	case tok.Kind == token.VirtualKeyword:
		p.advance()
		if p.at(token.InterfaceKeyword) {
			p.advance()
		}
		nameTok, _ := p.expectIdent()
		return p.b.DataTypes.New(syntax.DataType{Kind: syntax.DataTypeVirtual, Name: nameTok.IdentifierText(), Span: tok.Span.Cover(nameTok.Span)})
	case tok.Kind == token.SignedKeyword || tok.Kind == token.UnsignedKeyword:
		// A bare signed/unsigned with no preceding integer keyword defaults
		// to logic, per LRM 6.8.
		return p.parseScalarOrIntegerAtom(syntax.DataTypeScalar)
	case tok.IsIdentifier():
		nameTok := p.advance()
		dt := syntax.DataType{Kind: syntax.DataTypeNamed, Name: nameTok.IdentifierText(), Span: nameTok.Span}
		dt.PackedDims, dt.Span = p.parseDimsAppendSpan(dt.Span)
		return p.b.DataTypes.New(dt)
	default:
		p.err(diag.ExpectedToken, "expected a data type")
		return p.b.DataTypes.New(syntax.DataType{Kind: syntax.DataTypeImplicit, Span: tok.Span})
	}
}

func (p *Parser) parseScalarOrIntegerAtom(kind syntax.DataTypeKind) syntax.DataTypeID {
	base := p.advance()
	dt := syntax.DataType{Kind: kind, BaseKind: base.Kind, Explicit: true, Span: base.Span}
	switch {
	case p.at(token.SignedKeyword):
		p.advance()
		dt.Signed = true
	case p.at(token.UnsignedKeyword):
		p.advance()
		dt.Signed = false
	}
	if kind == syntax.DataTypeScalar {
		dt.PackedDims, dt.Span = p.parseDimsAppendSpan(dt.Span)
	}
	return p.b.DataTypes.New(dt)
}

// parseDimsAppendSpan parses zero or more `[msb:lsb]` packed dimensions,
// returning the accumulated dim list and the span extended to cover them.
func (p *Parser) parseDimsAppendSpan(span source.Span) ([]syntax.RangeID, source.Span) {
	var dims []syntax.RangeID
	for p.at(token.OpenBracket) {
		id, dimSpan := p.parseRange()
		dims = append(dims, id)
		span = span.Cover(dimSpan)
	}
	return dims, span
}

// parseRange parses one `[msb:lsb]` (or `[msb-:width]`/`[msb+:width]`,
// or a bare `[size]` unpacked-array dimension) bracket group.
func (p *Parser) parseRange() (syntax.RangeID, source.Span) {
	open := p.advance() // '['
	msb := p.parseConstExpr()
	rg := syntax.Range{MSB: msb}
	switch p.peek().Kind {
	case token.Colon:
		p.advance()
		rg.LSB = p.parseConstExpr()
	case token.PlusColon:
		p.advance()
		rg.Indexed, rg.PlusForm = true, true
		rg.LSB = p.parseConstExpr()
	case token.MinusColon:
		p.advance()
		rg.Indexed = true
		rg.LSB = p.parseConstExpr()
	}
	close, _ := p.expect(token.CloseBracket, diag.ExpectedToken, "expected ']'")
	rg.Span = open.Span.Cover(close.Span)
	return p.b.DataTypes.Ranges.New(rg), rg.Span
}

// parseEnumType parses `enum [base_type] { name [= value], ... }`.
func (p *Parser) parseEnumType() syntax.DataTypeID {
	kw := p.advance() // 'enum'
	dt := syntax.DataType{Kind: syntax.DataTypeEnum, Span: kw.Span}
	if isDataTypeStart(p.peek().Kind) {
		dt.EnumBase = syntax.EnumBaseExplicit
		base := p.parseScalarOrIntegerAtom(dataTypeKindFor(p.peek().Kind))
		baseDt := p.b.DataTypes.Get(base)
		dt.BaseKind = baseDt.BaseKind
		dt.Signed = baseDt.Signed
	}
	p.expect(token.OpenBrace, diag.ExpectedToken, "expected '{' in enum declaration")
	for {
		nameTok, ok := p.expectIdent()
		if !ok {
			break
		}
		member := syntax.Member{Name: nameTok.IdentifierText(), Span: nameTok.Span}
		if p.at(token.Equals) {
			p.advance()
			member.Init = p.parseConstExpr()
		}
		dt.Members = append(dt.Members, p.b.DataTypes.Members.New(member))
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, _ := p.expect(token.CloseBrace, diag.ExpectedToken, "expected '}' to close enum declaration")
	dt.Span = dt.Span.Cover(close.Span)
	return p.b.DataTypes.New(dt)
}

// dataTypeKindFor classifies a data-type-starting keyword for the
// enum-base-type case, where only scalar/integer-atom keywords are legal.
func dataTypeKindFor(k token.Kind) syntax.DataTypeKind {
	if integerAtomKeywords[k] {
		return syntax.DataTypeIntegerAtom
	}
	return syntax.DataTypeScalar
}

// parseStructOrUnionType parses `struct|union [tagged] packed [signed|unsigned] { field_decl... }`.
func (p *Parser) parseStructOrUnionType() syntax.DataTypeID {
	kw := p.advance() // 'struct' or 'union'
	kind := syntax.DataTypeStruct
	if kw.Kind == token.UnionKeyword {
		kind = syntax.DataTypeUnion
	}
	dt := syntax.DataType{Kind: kind, Span: kw.Span}
	if p.at(token.TaggedKeyword) {
		p.advance()
		dt.TaggedUnion = true
	}
	if p.at(token.PackedKeyword) {
		p.advance()
		dt.Packed = true
		switch p.peek().Kind {
		case token.SignedKeyword:
			p.advance()
			dt.Signed = true
		case token.UnsignedKeyword:
			p.advance()
		}
	}
	p.expect(token.OpenBrace, diag.ExpectedToken, "expected '{' in struct/union declaration")
	for !p.at(token.CloseBrace) && !p.at(token.EOF) {
		fieldType := p.parseDataType()
		for {
			nameTok, ok := p.expectIdent()
			if !ok {
				break
			}
			dims, _ := p.parseDimsAppendSpan(nameTok.Span)
			_ = dims // unpacked dims after a field name are parsed but not recorded on the Member
			dt.Fields = append(dt.Fields, p.b.DataTypes.Members.New(syntax.Member{Name: nameTok.IdentifierText(), DataType: fieldType, Span: nameTok.Span}))
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.Semicolon, diag.ExpectedToken, "expected ';' after struct/union field")
	}
	close, _ := p.expect(token.CloseBrace, diag.ExpectedToken, "expected '}' to close struct/union declaration")
	dt.Span = dt.Span.Cover(close.Span)
	return p.b.DataTypes.New(dt)
}
