package binder

import (
	"strings"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/types"
)

func (bd *Binder) bindConcat(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	e := &Expression{Kind: KindConcat, Span: ex.Span, Syntax: exprID}
	width := 0
	fourState := false
	for _, elemID := range ex.Elems {
		elem := bd.Bind(reporter, ctx, elemID)
		e.Elems = append(e.Elems, elem)
		if elem == nil {
			continue
		}
		if t, ok := bd.Interner.Lookup(elem.Type); ok {
			width += t.Width
			fourState = fourState || t.FourState
		}
	}
	e.Type = bd.Interner.Intern(types.Type{Kind: types.KindPackedArray, Width: width, FourState: fourState})
	return e
}

func (bd *Binder) bindReplication(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	count := bd.Bind(reporter, ctx.WithFlags(Constant), ex.Count)
	body := bd.Bind(reporter, ctx, ex.Body)
	e := &Expression{Kind: KindReplication, Count: count, Elems: []*Expression{body}, Span: ex.Span, Syntax: exprID}
	if body == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	n := 1
	if bd.Eval != nil {
		if v, ok := bd.Eval(ex.Count); ok && v > 0 {
			n = int(v)
		}
	}
	bodyType, ok := bd.Interner.Lookup(body.Type)
	if !ok {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	e.Type = bd.Interner.Intern(types.Type{Kind: types.KindPackedArray, Width: bodyType.Width * n, FourState: bodyType.FourState})
	return e
}

// knownSystemFunctions maps a $-prefixed system function name to the
// result-type rule the driver's built-in evaluator understands; anything
// not listed here (task-like $display, $finish, ...) has no expression
// value and is only legal as a call statement.
var knownSystemFunctions = map[string]bool{
	"$bits": true, "$size": true, "$high": true, "$low": true,
	"$left": true, "$right": true, "$clog2": true, "$signed": true,
	"$unsigned": true, "$countones": true, "$isunknown": true,
}

func (bd *Binder) bindCall(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	e := &Expression{Kind: KindCall, Callee: ex.Callee, Span: ex.Span, Syntax: exprID}
	for _, argID := range ex.Elems {
		e.Args = append(e.Args, bd.Bind(reporter, ctx, argID))
	}
	if strings.HasPrefix(ex.Callee, "$") {
		return bd.bindSystemCall(reporter, e)
	}
	symID := bd.Table.LookupLexical(reporter, bd.Builder, ctx.Scope, ctx.lookupPos(), ex.Callee)
	if !symID.IsValid() || bd.Table.Symbols.Get(symID).Kind != symbols.SymbolSubroutine {
		diag.ReportError(reporter, diag.UndeclaredIdentifier, ex.Span, "call to undeclared function '"+ex.Callee+"'").Emit()
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	// internal/parser does not yet parse function/task declarations
	// (see internal/symbols' DESIGN.md entry), so SymbolSubroutine is
	// never actually constructed; this branch is here for when it is.
	e.Type = bd.Interner.Builtins().Error
	return e
}

func (bd *Binder) bindSystemCall(reporter diag.Reporter, e *Expression) *Expression {
	switch e.Callee {
	case "$signed", "$unsigned":
		if len(e.Args) != 1 || e.Args[0] == nil {
			e.Type = bd.Interner.Builtins().Error
			return e
		}
		t, ok := bd.Interner.Lookup(e.Args[0].Type)
		if !ok {
			e.Type = bd.Interner.Builtins().Error
			return e
		}
		t.Signed = e.Callee == "$signed"
		e.Type = bd.Interner.Intern(t)
	case "$isunknown":
		e.Type = bd.oneBitType(bd.Interner.Builtins().Bit)
	default:
		if !knownSystemFunctions[e.Callee] {
			diag.ReportError(reporter, diag.UndeclaredIdentifier, e.Span, "unknown system function '"+e.Callee+"'").Emit()
		}
		e.Type = bd.Interner.Builtins().Int
	}
	return e
}

func (bd *Binder) bindSelect(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	base := bd.Bind(reporter, ctx, ex.Array)
	e := &Expression{
		Kind: KindRangeSelect, Base: base, Span: ex.Span, Syntax: exprID,
		Indexed: ex.Indexed, PlusForm: ex.PlusForm,
	}
	if ex.MSB.IsValid() {
		e.MSB = bd.Bind(reporter, ctx, ex.MSB)
	}
	if ex.LSB.IsValid() {
		e.LSB = bd.Bind(reporter, ctx, ex.LSB)
	}
	if base == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	baseType, ok := bd.Interner.Lookup(base.Type)
	if !ok {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	width := 1
	if ex.Kind == syntax.ExprRangeSelect {
		width = baseType.Width
		if bd.Eval != nil {
			if ex.Indexed {
				if w, ok := bd.Eval(ex.LSB); ok && w > 0 {
					width = int(w)
				}
			} else if msb, ok1 := bd.Eval(ex.MSB); ok1 {
				if lsb, ok2 := bd.Eval(ex.LSB); ok2 {
					diff := msb - lsb
					if diff < 0 {
						diff = -diff
					}
					width = int(diff) + 1
				}
			}
		}
	}
	e.Type = bd.Interner.Intern(types.Type{Kind: types.KindScalar, Width: width, FourState: baseType.FourState})
	return e
}

func (bd *Binder) bindMember(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	base := bd.Bind(reporter, ctx, ex.Base)
	e := &Expression{Kind: KindMemberSelect, Base: base, Field: ex.Name, Span: ex.Span, Syntax: exprID}
	if base == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	baseType, ok := bd.Interner.Lookup(base.Type)
	if !ok {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	var info *types.StructInfo
	switch baseType.Kind {
	case types.KindPackedStruct, types.KindUnpackedStruct:
		info, _ = bd.Interner.StructInfo(base.Type)
	case types.KindPackedUnion, types.KindUnpackedUnion:
		info, _ = bd.Interner.UnionInfo(base.Type)
	}
	if info == nil {
		diag.ReportError(reporter, diag.UnknownMember, ex.Span, "'"+ex.Name+"' is not a struct or union field").Emit()
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	for _, f := range info.Fields {
		if f.Name == ex.Name {
			e.Type = f.Type
			return e
		}
	}
	diag.ReportError(reporter, diag.UnknownMember, ex.Span, "no field named '"+ex.Name+"'").Emit()
	e.Type = bd.Interner.Builtins().Error
	return e
}
