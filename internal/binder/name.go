package binder

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
)

func (bd *Binder) bindIdent(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	e := &Expression{Kind: KindNamedRef, Span: ex.Span, Syntax: exprID}
	symID := bd.Table.LookupLexical(reporter, bd.Builder, ctx.Scope, ctx.lookupPos(), ex.Name)
	if !symID.IsValid() {
		diag.ReportError(reporter, diag.UndeclaredIdentifier, ex.Span, "use of undeclared identifier '"+ex.Name+"'").Emit()
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	return bd.bindResolvedSymbol(reporter, ctx, e, symID)
}

func (bd *Binder) bindHierarchical(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	e := &Expression{Kind: KindNamedRef, Span: ex.Span, Syntax: exprID}
	if ctx.Has(NoHierarchicalNames) {
		diag.ReportError(reporter, diag.NotAValue, ex.Span, "hierarchical names are not allowed here").Emit()
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	path := append([]string{ex.Name}, ex.Path...)
	symID := bd.Table.LookupHierarchical(reporter, bd.Builder, ctx.Scope, path, false)
	if !symID.IsValid() {
		diag.ReportError(reporter, diag.UndeclaredIdentifier, ex.Span, "use of undeclared identifier").Emit()
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	return bd.bindResolvedSymbol(reporter, ctx, e, symID)
}

func (bd *Binder) bindResolvedSymbol(reporter diag.Reporter, ctx Context, e *Expression, symID symbols.SymbolID) *Expression {
	sym := bd.Table.Symbols.Get(symID)
	if sym == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	switch sym.Kind {
	case symbols.SymbolTypeAlias, symbols.SymbolTypeParameter, symbols.SymbolForwardingTypedef, symbols.SymbolDefinition:
		diag.ReportError(reporter, diag.NotAValue, e.Span, "'"+sym.Name+"' does not name a value").Emit()
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	if ctx.Has(Constant) && sym.Kind != symbols.SymbolParameter && sym.Kind != symbols.SymbolEnumValue && sym.Kind != symbols.SymbolGenvar {
		diag.ReportError(reporter, diag.NotConstant, e.Span, "'"+sym.Name+"' is not a constant").Emit()
	}
	e.Symbol = symID
	e.Type = bd.symbolType(reporter, sym, symID)
	return e
}
