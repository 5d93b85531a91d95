package binder

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/types"
)

// Binder turns syntax expression nodes into bound Expression trees
// against one compilation's symbol table and type interner. It caches
// one Expression per (expression, scope) pair, since the same syntax
// node can in principle be bound against more than one scope (a
// package-level constant referenced from several instances).
type Binder struct {
	Interner *types.Interner
	Table    *symbols.Table
	Decls    *types.Cache
	Builder  *syntax.Builder
	Eval     types.ConstIntEval

	cache map[bindKey]*Expression
}

type bindKey struct {
	expr  syntax.ExprID
	scope symbols.ScopeID
}

// New allocates a Binder. eval folds constant expressions for packed-
// dimension widths and Constant-context legality checks; pass
// types.LiteralConstEval(b) until internal/eval's full four-state
// evaluator is wired in by internal/compilation.
func New(interner *types.Interner, table *symbols.Table, decls *types.Cache, b *syntax.Builder, eval types.ConstIntEval) *Binder {
	return &Binder{
		Interner: interner,
		Table:    table,
		Decls:    decls,
		Builder:  b,
		Eval:     eval,
		cache:    make(map[bindKey]*Expression),
	}
}

// Bind resolves exprID to its Expression tree under ctx, memoizing the
// result per (exprID, ctx.Scope).
func (bd *Binder) Bind(reporter diag.Reporter, ctx Context, exprID syntax.ExprID) *Expression {
	if !exprID.IsValid() {
		return nil
	}
	key := bindKey{exprID, ctx.Scope}
	if e, ok := bd.cache[key]; ok {
		return e
	}
	e := bd.bind(reporter, ctx, exprID)
	bd.cache[key] = e
	return e
}

func (bd *Binder) bind(reporter diag.Reporter, ctx Context, exprID syntax.ExprID) *Expression {
	ex := bd.Builder.Exprs.Get(exprID)
	if ex == nil {
		return nil
	}
	ctx.LookupLocation = ex.Span
	switch ex.Kind {
	case syntax.ExprLiteral:
		return bd.bindLiteral(ex, exprID)
	case syntax.ExprIdent:
		return bd.bindIdent(reporter, ctx, ex, exprID)
	case syntax.ExprHierarchical:
		return bd.bindHierarchical(reporter, ctx, ex, exprID)
	case syntax.ExprUnary:
		return bd.bindUnary(reporter, ctx, ex, exprID)
	case syntax.ExprBinary:
		return bd.bindBinary(reporter, ctx, ex, exprID)
	case syntax.ExprConditional:
		return bd.bindConditional(reporter, ctx, ex, exprID)
	case syntax.ExprConcat:
		return bd.bindConcat(reporter, ctx, ex, exprID)
	case syntax.ExprReplication:
		return bd.bindReplication(reporter, ctx, ex, exprID)
	case syntax.ExprCall:
		return bd.bindCall(reporter, ctx, ex, exprID)
	case syntax.ExprRangeSelect, syntax.ExprBitSelect:
		return bd.bindSelect(reporter, ctx, ex, exprID)
	case syntax.ExprMember:
		return bd.bindMember(reporter, ctx, ex, exprID)
	case syntax.ExprAssignment:
		return bd.bindAssignment(reporter, ctx, ex, exprID)
	default:
		return &Expression{Kind: KindInvalid, Type: bd.Interner.Builtins().Error, Span: ex.Span, Syntax: exprID}
	}
}

// symbolType returns a symbol's declared type, resolving and caching it
// through Decls the first time it's asked for. Symbols that name a type
// rather than a value (SymbolTypeAlias, SymbolTypeParameter,
// SymbolForwardingTypedef, SymbolDefinition) have no value type and
// return the error type; callers report NotAValue.
func (bd *Binder) symbolType(reporter diag.Reporter, sym *symbols.Symbol, symID symbols.SymbolID) types.TypeID {
	b := bd.Builder
	switch sym.Kind {
	case symbols.SymbolVariable, symbols.SymbolNet, symbols.SymbolGenvar:
		decl := b.Decls.Get(sym.Decl.VarDecl)
		init := syntax.NoExprID
		if sym.Decl.VarIndex >= 0 && sym.Decl.VarIndex < len(decl.Inits) {
			init = decl.Inits[sym.Decl.VarIndex]
		}
		return bd.Decls.Resolve(reporter, symID, decl.DataType, init, sym.Span, func() types.TypeID {
			return bd.Interner.Resolve(reporter, bd.Decls, bd.Table, b, sym.Scope, decl.DataType, bd.Eval)
		})
	case symbols.SymbolPort:
		port := b.Ports.Get(sym.Decl.Port)
		return bd.Decls.Resolve(reporter, symID, port.DataType, port.Default, sym.Span, func() types.TypeID {
			return bd.Interner.Resolve(reporter, bd.Decls, bd.Table, b, sym.Scope, port.DataType, bd.Eval)
		})
	case symbols.SymbolParameter:
		param := b.Params.Get(sym.Decl.Param)
		return bd.Decls.Resolve(reporter, symID, param.DataType, param.Default, sym.Span, func() types.TypeID {
			return bd.Interner.Resolve(reporter, bd.Decls, bd.Table, b, sym.Scope, param.DataType, bd.Eval)
		})
	case symbols.SymbolEnumValue:
		return bd.Interner.Resolve(reporter, bd.Decls, bd.Table, b, sym.Scope, sym.Decl.EnumType, bd.Eval)
	default:
		return bd.Interner.Builtins().Error
	}
}
