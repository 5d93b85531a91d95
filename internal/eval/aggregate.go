package eval

import (
	"math/bits"

	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/fourstate"
)

// concatVectors packs elems MSB-first into one vector, LRM 11.4.12's
// concatenation order: the first element occupies the highest bits.
func concatVectors(elems []fourstate.Vector) fourstate.Vector {
	width := 0
	for _, v := range elems {
		width += v.Width
	}
	result := fourstate.New(width, false)
	pos := width
	for _, v := range elems {
		for i := v.Width - 1; i >= 0; i-- {
			pos--
			result.SetBit(pos, v.Bit(i))
		}
	}
	return result
}

func (ev *Evaluator) evalConcat(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	vecs := make([]fourstate.Vector, 0, len(e.Elems))
	for _, elem := range e.Elems {
		v, ok := ev.Eval(reporter, elem)
		if !ok || v.Kind != KindInt {
			diag.ReportError(reporter, diag.NotConstant, e.Span, "concatenation operand is not a compile-time constant").Emit()
			return Invalid(), false
		}
		vecs = append(vecs, v.Int)
	}
	return IntValue(concatVectors(vecs)), true
}

func (ev *Evaluator) evalReplication(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	countV, ok := ev.Eval(reporter, e.Count)
	if !ok || countV.Kind != KindInt {
		diag.ReportError(reporter, diag.NotConstant, e.Span, "replication count is not a compile-time constant").Emit()
		return Invalid(), false
	}
	n, ok := a2u(countV.Int)
	if !ok || n < 0 {
		return Invalid(), false
	}
	if len(e.Elems) != 1 {
		return Invalid(), false
	}
	body, ok := ev.Eval(reporter, e.Elems[0])
	if !ok || body.Kind != KindInt {
		diag.ReportError(reporter, diag.NotConstant, e.Span, "replication body is not a compile-time constant").Emit()
		return Invalid(), false
	}
	vecs := make([]fourstate.Vector, n)
	for i := range vecs {
		vecs[i] = body.Int
	}
	return IntValue(concatVectors(vecs)), true
}

func (ev *Evaluator) evalRangeSelect(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	base, ok := ev.Eval(reporter, e.Base)
	if !ok || base.Kind != KindInt {
		diag.ReportError(reporter, diag.NotConstant, e.Span, "select base is not a compile-time constant").Emit()
		return Invalid(), false
	}
	msbV, msbOK := ev.evalOpt(reporter, e.MSB)
	lsbV, lsbOK := ev.evalOpt(reporter, e.LSB)
	if e.Indexed {
		// a[base +: width] / a[base -: width]: MSB carries the base index,
		// LSB carries the width (see internal/parser's ExprRangeSelect).
		if !msbOK || !lsbOK {
			return Invalid(), false
		}
		base0, ok := a2u(msbV.Int)
		if !ok {
			return Invalid(), false
		}
		width, ok := a2u(lsbV.Int)
		if !ok {
			return Invalid(), false
		}
		start := base0
		if !e.PlusForm {
			start = base0 - width + 1
		}
		return IntValue(extractBits(base.Int, start, width)), true
	}
	if !msbOK || !lsbOK {
		// bit-select with a single index in MSB.
		idx, ok := a2u(msbV.Int)
		if !ok {
			return Invalid(), false
		}
		if idx < 0 || idx >= base.Int.Width {
			return IntValue(fourstate.AllX(1, false)), true
		}
		bit := fourstate.New(1, false)
		bit.SetBit(0, base.Int.Bit(idx))
		return IntValue(bit), true
	}
	msb, ok1 := a2u(msbV.Int)
	lsb, ok2 := a2u(lsbV.Int)
	if !ok1 || !ok2 {
		return Invalid(), false
	}
	lo, hi := lsb, msb
	if lo > hi {
		lo, hi = hi, lo
	}
	return IntValue(extractBits(base.Int, lo, hi-lo+1)), true
}

func (ev *Evaluator) evalOpt(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	if e == nil {
		return Invalid(), false
	}
	return ev.Eval(reporter, e)
}

func extractBits(v fourstate.Vector, start, width int) fourstate.Vector {
	if width <= 0 {
		return fourstate.New(0, false)
	}
	out := fourstate.New(width, false)
	for i := 0; i < width; i++ {
		idx := start + i
		if idx < 0 || idx >= v.Width {
			out.SetBit(i, fourstate.DX)
			continue
		}
		out.SetBit(i, v.Bit(idx))
	}
	return out
}

func (ev *Evaluator) evalCall(reporter diag.Reporter, e *binder.Expression) (Value, bool) {
	switch e.Callee {
	case "$signed", "$unsigned":
		if len(e.Args) != 1 {
			return Invalid(), false
		}
		v, ok := ev.Eval(reporter, e.Args[0])
		if !ok || v.Kind != KindInt {
			return Invalid(), false
		}
		return IntValue(ev.resized(v.Int, e.Type)), true
	case "$isunknown":
		if len(e.Args) != 1 {
			return Invalid(), false
		}
		v, ok := ev.Eval(reporter, e.Args[0])
		if !ok || v.Kind != KindInt {
			return Invalid(), false
		}
		return IntValue(boolVec(v.Int.HasUnknown())), true
	case "$countones":
		if len(e.Args) != 1 {
			return Invalid(), false
		}
		v, ok := ev.Eval(reporter, e.Args[0])
		if !ok || v.Kind != KindInt {
			return Invalid(), false
		}
		count := 0
		for i := 0; i < v.Int.Width; i++ {
			if v.Int.Bit(i) == fourstate.D1 {
				count++
			}
		}
		return IntValue(fourstate.FromInt64(32, int64(count))), true
	case "$bits", "$size", "$high", "$left":
		if len(e.Args) != 1 {
			return Invalid(), false
		}
		argT, ok := ev.Interner.Lookup(e.Args[0].Type)
		if !ok {
			return Invalid(), false
		}
		val := int64(argT.Width)
		if e.Callee == "$high" || e.Callee == "$left" {
			val--
		}
		return IntValue(fourstate.FromInt64(32, val)), true
	case "$low", "$right":
		return IntValue(fourstate.FromInt64(32, 0)), true
	case "$clog2":
		if len(e.Args) != 1 {
			return Invalid(), false
		}
		v, ok := ev.Eval(reporter, e.Args[0])
		if !ok || v.Kind != KindInt {
			return Invalid(), false
		}
		n, ok := v.Int.Uint64()
		if !ok {
			return Invalid(), false
		}
		return IntValue(fourstate.FromInt64(32, int64(clog2(n)))), true
	default:
		diag.ReportError(reporter, diag.NotConstant, e.Span, "call to '"+e.Callee+"' is not a compile-time constant").Emit()
		return Invalid(), false
	}
}

func clog2(n uint64) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(n - 1)
}
