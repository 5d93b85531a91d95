package binder

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
	"github.com/mohamed/svlang/internal/types"
)

// reductionOps are the unary reduction operators (LRM 11.4.9): their
// result is always a single unsigned two-value... in practice
// four-state, matching whichever operand carries an X/Z, bit.
var reductionOps = map[token.Kind]bool{
	token.And: true, token.TildeAnd: true,
	token.Or: true, token.TildeOr: true,
	token.Xor: true, token.XorTilde: true, token.TildeXor: true,
}

// comparisonOps produce a 1-bit self-determined result regardless of
// their operands' width (LRM 11.4.5/11.4.6/11.4.7).
var comparisonOps = map[token.Kind]bool{
	token.DoubleEquals: true, token.ExclamationEquals: true,
	token.TripleEquals: true, token.ExclamationDoubleEquals: true,
	token.DoubleEqualsQuestion: true, token.ExclamationEqualsQuestion: true,
	token.LessThan: true, token.LessThanEquals: true,
	token.GreaterThan: true, token.GreaterThanEquals: true,
	token.DoubleAnd: true, token.DoubleOr: true,
}

// shiftOps take their result type from the left operand alone (LRM
// 11.4.10): the right operand's width never widens the result.
var shiftOps = map[token.Kind]bool{
	token.LeftShift: true, token.LeftShiftEqual: true,
	token.TripleLeftShift: true, token.TripleLeftShiftEqual: true,
	token.RightShift: true, token.RightShiftEqual: true,
	token.TripleRightShift: true, token.TripleRightShiftEqual: true,
}

func (bd *Binder) bindUnary(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	operandID := ex.Rhs
	if !operandID.IsValid() {
		operandID = ex.Lhs
	}
	operand := bd.Bind(reporter, ctx, operandID)
	e := &Expression{Kind: KindUnary, Op: ex.Op, Operand: operand, Span: ex.Span, Syntax: exprID}
	if operand == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	switch {
	case ex.Op == token.Exclamation:
		e.Type = bd.oneBitType(operand.Type)
	case reductionOps[ex.Op]:
		e.Type = bd.oneBitType(operand.Type)
	default: // unary +/-/~
		e.Type = operand.Type
	}
	return e
}

func (bd *Binder) bindBinary(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	lhs := bd.Bind(reporter, ctx, ex.Lhs)
	rhs := bd.Bind(reporter, ctx, ex.Rhs)
	e := &Expression{Kind: KindBinary, Op: ex.Op, Lhs: lhs, Rhs: rhs, Span: ex.Span, Syntax: exprID}
	if lhs == nil || rhs == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	switch {
	case comparisonOps[ex.Op]:
		// Both operands compare at their own widened common type, but
		// the result collapses to 1 bit and neither operand is rewritten
		// in place (LRM 11.4.6).
		e.Type = bd.oneBitType(bd.widen(lhs.Type, rhs.Type))
	case shiftOps[ex.Op]:
		// The right operand keeps its own self-determined width; only
		// the left operand's type flows through (LRM 11.4.10).
		e.Type = lhs.Type
	default: // arithmetic and bitwise binary ops
		e.Type = bd.widen(lhs.Type, rhs.Type)
		e.Lhs = bd.insertConversion(lhs, e.Type)
		e.Rhs = bd.insertConversion(rhs, e.Type)
	}
	return e
}

func (bd *Binder) bindConditional(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	cond := bd.Bind(reporter, ctx, ex.Cond)
	then := bd.Bind(reporter, ctx, ex.Then)
	elseE := bd.Bind(reporter, ctx, ex.Else)
	e := &Expression{Kind: KindConditional, Cond: cond, Then: then, Else: elseE, Span: ex.Span, Syntax: exprID}
	if then == nil || elseE == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	e.Type = bd.widen(then.Type, elseE.Type)
	e.Then = bd.insertConversion(then, e.Type)
	e.Else = bd.insertConversion(elseE, e.Type)
	return e
}

func (bd *Binder) bindAssignment(reporter diag.Reporter, ctx Context, ex *syntax.Expr, exprID syntax.ExprID) *Expression {
	if !ctx.Has(AssignmentAllowed) {
		diag.ReportError(reporter, diag.BadAssignment, ex.Span, "assignment is not allowed as an expression here").Emit()
	}
	lhs := bd.Bind(reporter, ctx, ex.Lhs)
	rhs := bd.Bind(reporter, ctx, ex.Rhs)
	e := &Expression{Kind: KindBinary, Op: ex.Op, Lhs: lhs, Rhs: rhs, Span: ex.Span, Syntax: exprID}
	if lhs == nil {
		e.Type = bd.Interner.Builtins().Error
		return e
	}
	e.Type = lhs.Type
	if rhs != nil && !bd.assignable(lhs.Type, rhs.Type) {
		diag.ReportError(reporter, diag.BadAssignment, ex.Span, "value is not assignable to the target's type").Emit()
	}
	e.Rhs = bd.insertConversion(rhs, e.Type)
	return e
}

// widen computes the context-determined result type of a binary op over
// a and b (LRM 11.8.1): the wider of the two operand widths, signed
// only if both operands are, four-state if either is.
func (bd *Binder) widen(a, b types.TypeID) types.TypeID {
	ta, aok := bd.Interner.Lookup(a)
	tb, bok := bd.Interner.Lookup(b)
	if !aok || !bok {
		return bd.Interner.Builtins().Error
	}
	width := ta.Width
	if tb.Width > width {
		width = tb.Width
	}
	signed := ta.Signed && tb.Signed
	fourState := ta.FourState || tb.FourState
	if ta.Kind == types.KindFloating || tb.Kind == types.KindFloating {
		return bd.Interner.Builtins().Real
	}
	return bd.Interner.Intern(types.Type{Kind: types.KindIntegerAtom, Width: width, Signed: signed, FourState: fourState})
}

// oneBitType returns a 1-bit result type matching operand's four-state-
// ness, the shape every logical/reduction/comparison operator collapses
// its result to regardless of operand width (LRM 11.4.5-11.4.9).
func (bd *Binder) oneBitType(operand types.TypeID) types.TypeID {
	t, ok := bd.Interner.Lookup(operand)
	fourState := !ok || t.FourState
	return bd.Interner.Intern(types.Type{Kind: types.KindScalar, Width: 1, FourState: fourState})
}

// assignable reports whether src's value can flow into a target-typed
// variable without an explicit cast - SV's relaxed rule that any two
// packed integral types (any width/sign combination) are assignment
// compatible with an implicit truncate-or-extend, and any two floating
// types convert freely (LRM 6.24).
func (bd *Binder) assignable(target, src types.TypeID) bool {
	if target == src {
		return true
	}
	tt, ok1 := bd.Interner.Lookup(target)
	ts, ok2 := bd.Interner.Lookup(src)
	if !ok1 || !ok2 {
		return false
	}
	if tt.Kind == types.KindString && ts.Kind == types.KindString {
		return true
	}
	integral := func(k types.Kind) bool {
		return k == types.KindScalar || k == types.KindIntegerAtom || k == types.KindEnum || k == types.KindPackedStruct || k == types.KindPackedUnion || k == types.KindPackedArray
	}
	if integral(tt.Kind) && integral(ts.Kind) {
		return true
	}
	if tt.Kind == types.KindFloating && (ts.Kind == types.KindFloating || integral(ts.Kind)) {
		return true
	}
	return false
}

// insertConversion wraps e in a KindConversion node if its type differs
// from target, leaving e untouched (and returning it unwrapped) when
// already the right type or when e is nil.
func (bd *Binder) insertConversion(e *Expression, target types.TypeID) *Expression {
	if e == nil || e.Type == target {
		return e
	}
	return &Expression{Kind: KindConversion, Type: target, Span: e.Span, Syntax: e.Syntax, Inner: e}
}
