package eval

import (
	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/fourstate"
	"github.com/mohamed/svlang/internal/token"
)

func boolVec(b bool) fourstate.Vector {
	if b {
		return fourstate.FromUint64(1, false, 1)
	}
	return fourstate.FromUint64(1, false, 0)
}

func asReal(v Value) (float64, bool) {
	switch v.Kind {
	case KindReal:
		return v.Real, true
	case KindInt:
		if v.Int.HasUnknown() {
			return 0, false
		}
		n, ok := v.Int.Int64()
		if !ok {
			return 0, false
		}
		return float64(n), true
	default:
		return 0, false
	}
}

func (ev *Evaluator) evalRealBinary(reporter diag.Reporter, e *binder.Expression, lhs, rhs Value) (Value, bool) {
	a, aok := asReal(lhs)
	b, bok := asReal(rhs)
	if !aok || !bok {
		diag.ReportError(reporter, diag.NotConstant, e.Span, "operand is not a known real constant").Emit()
		return Invalid(), false
	}
	switch e.Op {
	case token.Plus:
		return RealValue(a + b), true
	case token.Minus:
		return RealValue(a - b), true
	case token.Star:
		return RealValue(a * b), true
	case token.Slash:
		// IEEE-754 double division: a/0.0 is ±Inf, 0.0/0.0 is NaN. No
		// diagnostic; DivideByZero is scoped to 4-state integer arithmetic.
		return RealValue(a / b), true
	case token.DoubleEquals:
		return IntValue(boolVec(a == b)), true
	case token.ExclamationEquals:
		return IntValue(boolVec(a != b)), true
	case token.LessThan:
		return IntValue(boolVec(a < b)), true
	case token.LessThanEquals:
		return IntValue(boolVec(a <= b)), true
	case token.GreaterThan:
		return IntValue(boolVec(a > b)), true
	case token.GreaterThanEquals:
		return IntValue(boolVec(a >= b)), true
	default:
		diag.ReportError(reporter, diag.NotConstant, e.Span, "operator not supported on real operands").Emit()
		return Invalid(), false
	}
}
