package eval

import (
	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/fourstate"
	"github.com/mohamed/svlang/internal/symbols"
)

func (ev *Evaluator) evalNamedRef(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	sym := ev.Table.Symbols.Get(e.Symbol)
	if sym == nil {
		return Invalid(), false
	}
	switch sym.Kind {
	case symbols.SymbolParameter:
		return ev.evalParameter(reporter, e.Symbol, sym)
	case symbols.SymbolEnumValue:
		return ev.evalEnumValue(reporter, e.Symbol, sym)
	default:
		diag.ReportError(reporter, diag.NotConstant, e.Span, "'"+sym.Name+"' is not a compile-time constant").Emit()
		return Invalid(), false
	}
}

func (ev *Evaluator) evalParameter(reporter diag.Reporter, symID symbols.SymbolID, sym *symbols.Symbol) (Value, bool) {
	switch ev.symState[symID] {
	case stateDone:
		v := ev.symValue[symID]
		return v, v.Kind != KindInvalid
	case stateVisiting:
		diag.ReportError(reporter, diag.RecursiveResolution, sym.Span, "recursive evaluation of parameter '"+sym.Name+"'").Emit()
		ev.symState[symID] = stateDone
		return Invalid(), false
	}
	ev.symState[symID] = stateVisiting

	param := ev.Builder.Params.Get(sym.Decl.Param)
	if param == nil || !param.Default.IsValid() {
		diag.ReportError(reporter, diag.ParamHasNoValue, sym.Span, "parameter '"+sym.Name+"' has no value").Emit()
		ev.symState[symID] = stateDone
		ev.symValue[symID] = Invalid()
		return Invalid(), false
	}
	ctx := binder.Context{Scope: sym.Scope, Flags: binder.Constant}
	bound := ev.Binder.Bind(reporter, ctx, param.Default)
	v, ok := ev.Eval(reporter, bound)
	ev.symState[symID] = stateDone
	ev.symValue[symID] = v
	return v, ok
}

// evalEnumValue implements LRM 6.19's implicit-successor rule: an enum
// member with no explicit initializer takes the previous member's value
// plus one, starting at 0 for the first member.
func (ev *Evaluator) evalEnumValue(reporter diag.Reporter, symID symbols.SymbolID, sym *symbols.Symbol) (Value, bool) {
	switch ev.symState[symID] {
	case stateDone:
		v := ev.symValue[symID]
		return v, v.Kind != KindInvalid
	case stateVisiting:
		diag.ReportError(reporter, diag.RecursiveResolution, sym.Span, "recursive evaluation of enum member '"+sym.Name+"'").Emit()
		ev.symState[symID] = stateDone
		return Invalid(), false
	}
	ev.symState[symID] = stateVisiting

	dt := ev.Builder.DataTypes.Get(sym.Decl.EnumType)
	if dt == nil {
		ev.symState[symID] = stateDone
		ev.symValue[symID] = Invalid()
		return Invalid(), false
	}
	var prev int64 = -1
	var result Value
	ok := false
	for _, mid := range dt.Members {
		m := ev.Builder.DataTypes.Members.Get(mid)
		val := prev + 1
		if m.Init.IsValid() {
			ctx := binder.Context{Scope: sym.Scope, Flags: binder.Constant}
			bound := ev.Binder.Bind(reporter, ctx, m.Init)
			iv, initOK := ev.Eval(reporter, bound)
			if initOK && iv.Kind == KindInt {
				if n, exact := iv.Int.Int64(); exact {
					val = n
				}
			}
		}
		prev = val
		v := IntValue(fourstate.FromInt64(32, val))
		if mid == sym.Decl.Member {
			result, ok = v, true
			break
		}
	}
	ev.symState[symID] = stateDone
	ev.symValue[symID] = result
	return result, ok
}
