package eval

import (
	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/fourstate"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/types"
)

type symState uint8

const (
	stateUnvisited symState = iota
	stateVisiting
	stateDone
)

// Evaluator folds bound expressions to constant Values against one
// compilation's symbol table, type interner, and binder.
type Evaluator struct {
	Interner *types.Interner
	Table    *symbols.Table
	Builder  *syntax.Builder
	Binder   *binder.Binder

	memo     map[*binder.Expression]Value
	symState map[symbols.SymbolID]symState
	symValue map[symbols.SymbolID]Value
}

func New(interner *types.Interner, table *symbols.Table, b *syntax.Builder, bd *binder.Binder) *Evaluator {
	return &Evaluator{
		Interner: interner,
		Table:    table,
		Builder:  b,
		Binder:   bd,
		memo:     make(map[*binder.Expression]Value),
		symState: make(map[symbols.SymbolID]symState),
		symValue: make(map[symbols.SymbolID]Value),
	}
}

// ConstIntEval adapts this Evaluator to the types.ConstIntEval callback
// shape internal/types.Resolve needs to fold packed-dimension widths and
// enum member values, closing over a fixed scope.
func (ev *Evaluator) ConstIntEval(reporter diag.Reporter, scope symbols.ScopeID) types.ConstIntEval {
	return func(exprID syntax.ExprID) (int64, bool) {
		if !exprID.IsValid() {
			return 0, false
		}
		bound := ev.Binder.Bind(reporter, binder.Context{Scope: scope, Flags: binder.Constant}, exprID)
		v, ok := ev.Eval(reporter, bound)
		if !ok || v.Kind != KindInt {
			return 0, false
		}
		return v.Int.Int64()
	}
}

// EvalExpr binds exprID under ctx and folds the result.
func (ev *Evaluator) EvalExpr(reporter diag.Reporter, ctx binder.Context, exprID syntax.ExprID) (Value, bool) {
	e := ev.Binder.Bind(reporter, ctx, exprID)
	return ev.Eval(reporter, e)
}

// Eval folds an already-bound expression to a constant Value, memoizing
// per Expression node.
func (ev *Evaluator) Eval(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	if e == nil {
		return Invalid(), false
	}
	if v, ok := ev.memo[e]; ok {
		return v, v.Kind != KindInvalid
	}
	v, ok := ev.eval(reporter, e)
	ev.memo[e] = v
	return v, ok
}

func (ev *Evaluator) eval(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	switch e.Kind {
	case binder.KindLiteral:
		return ev.evalLiteral(e)
	case binder.KindNamedRef:
		return ev.evalNamedRef(reporter, e)
	case binder.KindUnary:
		return ev.evalUnary(reporter, e)
	case binder.KindBinary:
		return ev.evalBinary(reporter, e)
	case binder.KindConditional:
		return ev.evalConditional(reporter, e)
	case binder.KindConcat:
		return ev.evalConcat(reporter, e)
	case binder.KindReplication:
		return ev.evalReplication(reporter, e)
	case binder.KindConversion:
		return ev.evalConversion(reporter, e)
	case binder.KindCall:
		return ev.evalCall(reporter, e)
	case binder.KindRangeSelect:
		return ev.evalRangeSelect(reporter, e)
	default:
		diag.ReportError(reporter, diag.NotConstant, e.Span, "expression is not a compile-time constant").Emit()
		return Invalid(), false
	}
}

func (ev *Evaluator) evalLiteral(e *binder.Expression) (Value, bool) {
	switch {
	case e.IsString:
		return StringValue(e.StrValue), true
	case e.IsReal:
		return RealValue(e.RealValue), true
	default:
		return IntValue(ev.resized(e.IntValue, e.Type)), true
	}
}

// resized widens or narrows v to target's declared width/sign, so a
// literal folded before its context type was known (or an intermediate
// result) always carries the width the binder decided on.
func (ev *Evaluator) resized(v fourstate.Vector, target types.TypeID) fourstate.Vector {
	t, ok := ev.Interner.Lookup(target)
	if !ok || t.Width <= 0 {
		return v
	}
	out := v.Resize(t.Width)
	out.Signed = t.Signed
	return out
}
