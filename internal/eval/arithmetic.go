package eval

import (
	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/fourstate"
	"github.com/mohamed/svlang/internal/token"
	"github.com/mohamed/svlang/internal/types"
)

var reductionOps = map[token.Kind]bool{
	token.And: true, token.TildeAnd: true,
	token.Or: true, token.TildeOr: true,
	token.Xor: true, token.XorTilde: true, token.TildeXor: true,
}

var shiftOps = map[token.Kind]bool{
	token.LeftShift: true, token.TripleLeftShift: true,
	token.RightShift: true, token.TripleRightShift: true,
}

var comparisonOps = map[token.Kind]bool{
	token.DoubleEquals: true, token.ExclamationEquals: true,
	token.TripleEquals: true, token.ExclamationDoubleEquals: true,
	token.DoubleEqualsQuestion: true, token.ExclamationEqualsQuestion: true,
	token.LessThan: true, token.LessThanEquals: true,
	token.GreaterThan: true, token.GreaterThanEquals: true,
	token.DoubleAnd: true, token.DoubleOr: true,
}

func triVector(t fourstate.TriBool) fourstate.Vector {
	switch t {
	case fourstate.TriTrue:
		return fourstate.FromUint64(1, false, 1)
	case fourstate.TriFalse:
		return fourstate.FromUint64(1, false, 0)
	default:
		return fourstate.AllX(1, false)
	}
}

func (ev *Evaluator) evalUnary(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	operand, ok := ev.Eval(reporter, e.Operand)
	if !ok || operand.Kind != KindInt {
		diag.ReportError(reporter, diag.NotConstant, e.Span, "operand is not a compile-time constant").Emit()
		return Invalid(), false
	}
	switch {
	case e.Op == token.Exclamation:
		return IntValue(triVector(fourstate.LogicalNot(operand.Int))), true
	case reductionOps[e.Op]:
		return IntValue(triVector(ev.evalReduction(e.Op, operand.Int))), true
	case e.Op == token.Minus:
		return IntValue(ev.resized(fourstate.Neg(operand.Int), e.Type)), true
	case e.Op == token.Tilde:
		return IntValue(ev.resized(fourstate.Not(operand.Int), e.Type)), true
	default: // unary plus
		return IntValue(ev.resized(operand.Int, e.Type)), true
	}
}

func (ev *Evaluator) evalReduction(op token.Kind, v fourstate.Vector) fourstate.TriBool {
	var d fourstate.Digit
	switch op {
	case token.And:
		d = fourstate.ReduceAnd(v)
	case token.TildeAnd:
		d = fourstate.ReduceNand(v)
	case token.Or:
		d = fourstate.ReduceOr(v)
	case token.TildeOr:
		d = fourstate.ReduceNor(v)
	case token.Xor:
		d = fourstate.ReduceXor(v)
	case token.XorTilde, token.TildeXor:
		d = fourstate.ReduceXnor(v)
	}
	switch {
	case d.Unknown():
		return fourstate.TriUnknown
	case d == fourstate.D1:
		return fourstate.TriTrue
	default:
		return fourstate.TriFalse
	}
}

func (ev *Evaluator) evalBinary(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	lhs, lok := ev.Eval(reporter, e.Lhs)
	rhs, rok := ev.Eval(reporter, e.Rhs)
	if !lok || !rok {
		return Invalid(), false
	}
	if lhs.Kind == KindReal || rhs.Kind == KindReal {
		return ev.evalRealBinary(reporter, e, lhs, rhs)
	}
	if lhs.Kind != KindInt || rhs.Kind != KindInt {
		diag.ReportError(reporter, diag.NotConstant, e.Span, "operand is not a compile-time constant").Emit()
		return Invalid(), false
	}
	a, b := lhs.Int, rhs.Int

	switch {
	case comparisonOps[e.Op]:
		return IntValue(triVector(ev.evalComparison(e.Op, a, b))), true
	case shiftOps[e.Op]:
		amt, ok := a2u(b)
		if !ok {
			return IntValue(fourstate.AllX(a.Width, a.Signed)), true
		}
		switch e.Op {
		case token.LeftShift, token.TripleLeftShift:
			return IntValue(ev.resized(fourstate.Shl(a, amt), e.Type)), true
		case token.RightShift:
			return IntValue(ev.resized(fourstate.Shr(a, amt), e.Type)), true
		default: // TripleRightShift, arithmetic when signed
			if a.Signed {
				return IntValue(ev.resized(fourstate.Ashr(a, amt), e.Type)), true
			}
			return IntValue(ev.resized(fourstate.Shr(a, amt), e.Type)), true
		}
	default:
		return ev.evalArith(reporter, e, a, b)
	}
}

func a2u(v fourstate.Vector) (int, bool) {
	if v.HasUnknown() {
		return 0, false
	}
	n, ok := v.Uint64()
	if !ok {
		return 0, false
	}
	return int(n), true
}

func (ev *Evaluator) evalComparison(op token.Kind, a, b fourstate.Vector) fourstate.TriBool {
	switch op {
	case token.TripleEquals:
		if fourstate.CaseEquals(a, b) {
			return fourstate.TriTrue
		}
		return fourstate.TriFalse
	case token.ExclamationDoubleEquals:
		if fourstate.CaseNotEquals(a, b) {
			return fourstate.TriTrue
		}
		return fourstate.TriFalse
	case token.DoubleEqualsQuestion:
		return fourstate.WildcardEquals(a, b)
	case token.ExclamationEqualsQuestion:
		switch fourstate.WildcardEquals(a, b) {
		case fourstate.TriTrue:
			return fourstate.TriFalse
		case fourstate.TriFalse:
			return fourstate.TriTrue
		default:
			return fourstate.TriUnknown
		}
	case token.DoubleEquals:
		return fourstate.LogicalEquals(a, b)
	case token.ExclamationEquals:
		return fourstate.LogicalNotEquals(a, b)
	case token.DoubleAnd:
		la, lb := fourstate.LogicalTruth(a), fourstate.LogicalTruth(b)
		if la == fourstate.TriFalse || lb == fourstate.TriFalse {
			return fourstate.TriFalse
		}
		if la == fourstate.TriUnknown || lb == fourstate.TriUnknown {
			return fourstate.TriUnknown
		}
		return fourstate.TriTrue
	case token.DoubleOr:
		la, lb := fourstate.LogicalTruth(a), fourstate.LogicalTruth(b)
		if la == fourstate.TriTrue || lb == fourstate.TriTrue {
			return fourstate.TriTrue
		}
		if la == fourstate.TriUnknown || lb == fourstate.TriUnknown {
			return fourstate.TriUnknown
		}
		return fourstate.TriFalse
	default:
		cmp, ok := fourstate.Compare(a, b)
		if !ok {
			return fourstate.TriUnknown
		}
		switch op {
		case token.LessThan:
			return boolTri(cmp < 0)
		case token.LessThanEquals:
			return boolTri(cmp <= 0)
		case token.GreaterThan:
			return boolTri(cmp > 0)
		default: // GreaterThanEquals
			return boolTri(cmp >= 0)
		}
	}
}

func boolTri(b bool) fourstate.TriBool {
	if b {
		return fourstate.TriTrue
	}
	return fourstate.TriFalse
}

func (ev *Evaluator) evalArith(reporter diag.Reporter, e *binder.Expression, a, b fourstate.Vector) (Value, bool) {
	switch e.Op {
	case token.Plus:
		return IntValue(ev.resized(fourstate.Add(a, b), e.Type)), true
	case token.Minus:
		return IntValue(ev.resized(fourstate.Sub(a, b), e.Type)), true
	case token.Star:
		return IntValue(ev.resized(fourstate.Mul(a, b), e.Type)), true
	case token.Slash:
		if !a.HasUnknown() && !b.HasUnknown() && b.IsZero() {
			diag.ReportError(reporter, diag.DivideByZero, e.Span, "division by zero in constant expression").Emit()
		}
		return IntValue(ev.resized(fourstate.Div(a, b), e.Type)), true
	case token.Percent:
		if !a.HasUnknown() && !b.HasUnknown() && b.IsZero() {
			diag.ReportError(reporter, diag.DivideByZero, e.Span, "division by zero in constant expression").Emit()
		}
		return IntValue(ev.resized(fourstate.Mod(a, b), e.Type)), true
	case token.And:
		return IntValue(ev.resized(fourstate.And(a, b), e.Type)), true
	case token.Or:
		return IntValue(ev.resized(fourstate.Or(a, b), e.Type)), true
	case token.Xor:
		return IntValue(ev.resized(fourstate.Xor(a, b), e.Type)), true
	case token.XorTilde, token.TildeXor:
		return IntValue(ev.resized(fourstate.Xnor(a, b), e.Type)), true
	case token.StarStar:
		return ev.evalPow(e, a, b)
	default:
		diag.ReportError(reporter, diag.NotConstant, e.Span, "operator not supported in a constant expression").Emit()
		return Invalid(), false
	}
}

func (ev *Evaluator) evalPow(e *binder.Expression, a, b fourstate.Vector) (Value, bool) {
	if a.HasUnknown() || b.HasUnknown() {
		return IntValue(fourstate.AllX(a.Width, a.Signed)), true
	}
	exp, ok := b.Int64()
	if !ok || exp < 0 {
		return IntValue(fourstate.AllX(a.Width, a.Signed)), true
	}
	result := fourstate.FromInt64(a.Width, 1)
	for i := int64(0); i < exp; i++ {
		result = fourstate.Mul(result, a)
	}
	return IntValue(ev.resized(result, e.Type)), true
}

func (ev *Evaluator) evalConditional(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	cond, ok := ev.Eval(reporter, e.Cond)
	if !ok || cond.Kind != KindInt {
		return Invalid(), false
	}
	switch fourstate.LogicalTruth(cond.Int) {
	case fourstate.TriTrue:
		return ev.Eval(reporter, e.Then)
	case fourstate.TriFalse:
		return ev.Eval(reporter, e.Else)
	default:
		then, tok := ev.Eval(reporter, e.Then)
		els, eok := ev.Eval(reporter, e.Else)
		if !tok || !eok || then.Kind != KindInt || els.Kind != KindInt {
			return Invalid(), false
		}
		width := then.Int.Width
		return IntValue(fourstate.AllX(width, then.Int.Signed)), true
	}
}

func (ev *Evaluator) evalConversion(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	inner, ok := ev.Eval(reporter, e.Inner)
	if !ok {
		return Invalid(), false
	}
	target, tok := ev.Interner.Lookup(e.Type)
	if !tok {
		return Invalid(), false
	}
	switch {
	case target.Kind == types.KindFloating:
		switch inner.Kind {
		case KindReal:
			return RealValue(inner.Real), true
		case KindInt:
			f, _ := inner.Int.Int64()
			return RealValue(float64(f)), true
		}
		return Invalid(), false
	case inner.Kind == KindReal:
		// real -> integral: round-to-nearest, ties away from zero (LRM 6.24.3).
		return IntValue(ev.resized(fourstate.FromInt64(target.Width, roundTiesAway(inner.Real)), e.Type)), true
	default:
		return IntValue(ev.resized(inner.Int, e.Type)), true
	}
}

func roundTiesAway(f float64) int64 {
	if f >= 0 {
		return int64(f + 0.5)
	}
	return -int64(-f + 0.5)
}
