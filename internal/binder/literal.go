package binder

import (
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
	"github.com/mohamed/svlang/internal/types"
)

func (bd *Binder) bindLiteral(ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	e := &Expression{Kind: KindLiteral, Span: ex.Span, Syntax: exprID}
	if ex.Token == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	switch ex.Token.Kind {
	case token.StringLit:
		e.IsString = true
		e.StrValue = ex.Token.ValueText
		e.Type = bd.Interner.Builtins().String
		return e
	case token.RealLit:
		e.IsReal = true
		if ex.Token.Numeric != nil {
			e.RealValue = ex.Token.Numeric.Real
		}
		e.Type = bd.Interner.Builtins().Real
		return e
	default: // IntegerLit, TimeLit, UnbasedUnsizedLit
		builtins := bd.Interner.Builtins()
		e.Type = builtins.Int
		if ex.Token.Numeric != nil {
			e.IntValue = ex.Token.Numeric.Int
			width := ex.Token.Numeric.Int.BitLen()
			if width < 32 {
				width = 32
			}
			signed := ex.Token.Numeric.Flags&token.IsSigned != 0 || ex.Token.Numeric.Flags&token.DecimalBase != 0
			fourState := ex.Token.Numeric.Int.HasUnknown()
			e.Type = bd.Interner.Intern(types.Type{Kind: types.KindIntegerAtom, Width: width, Signed: signed, FourState: fourState})
		}
		return e
	}
}
