package eval

import (
	"testing"

	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/fourstate"
	"github.com/mohamed/svlang/internal/parser"
	"github.com/mohamed/svlang/internal/preprocessor"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
	"github.com/mohamed/svlang/internal/types"
)

func setup(t *testing.T, src string) (*syntax.Builder, *symbols.Table, symbols.ScopeID, *Evaluator, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sv", []byte(src))

	parseBag := diag.NewBag(64)
	pp := preprocessor.New(fs, fileID, preprocessor.Options{Reporter: diag.BagReporter{Bag: parseBag}})
	b := syntax.NewBuilder(syntax.Hints{})
	res := parser.ParseFile(pp, b, parser.Options{MaxErrors: 64, Reporter: diag.BagReporter{Bag: parseBag}})
	if parseBag.Len() != 0 {
		t.Fatalf("unexpected parse diagnostics: %s", parseBag.Items()[0].Message)
	}
	f := b.Files.Get(res.File)
	if len(f.Units) != 1 {
		t.Fatalf("expected exactly one design unit, got %d", len(f.Units))
	}

	semaBag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: semaBag}
	table := symbols.NewTable(symbols.Hints{})
	_, bodyScope := table.DeclareDefinition(reporter, b, f.Units[0])
	table.ForceElaborate(reporter, b, bodyScope)

	in := types.NewInterner()
	cache := types.NewCache(in)
	bd := binder.New(in, table, cache, b, types.LiteralConstEval(b))
	ev := New(in, table, b, bd)
	return b, table, bodyScope, ev, semaBag
}

func TestEvalParameterDefaultFoldsArithmetic(t *testing.T) {
	b, table, bodyScope, ev, semaBag := setup(t, `
module m #(parameter int W = 4 + 4);
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	symID := table.LookupInScope(reporter, b, bodyScope, "W")
	if !symID.IsValid() {
		t.Fatalf("expected parameter W to be declared")
	}
	sym := table.Symbols.Get(symID)
	v, ok := ev.evalParameter(reporter, symID, sym)
	if !ok || v.Kind != KindInt {
		t.Fatalf("expected a folded integer value, got %+v (ok=%v)", v, ok)
	}
	n, exact := v.Int.Int64()
	if !exact || n != 8 {
		t.Fatalf("expected W to fold to 8, got %d", n)
	}
	if semaBag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", semaBag.Items())
	}
}

func TestEvalEnumImplicitSuccessor(t *testing.T) {
	b, table, bodyScope, ev, semaBag := setup(t, `
module m;
    typedef enum { RED, GREEN, BLUE } color_t;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	blueID := table.LookupInScope(reporter, b, bodyScope, "BLUE")
	if !blueID.IsValid() {
		t.Fatalf("expected BLUE to be declared")
	}
	sym := table.Symbols.Get(blueID)
	v, ok := ev.evalEnumValue(reporter, blueID, sym)
	if !ok || v.Kind != KindInt {
		t.Fatalf("expected a folded integer value, got %+v (ok=%v)", v, ok)
	}
	n, exact := v.Int.Int64()
	if !exact || n != 2 {
		t.Fatalf("expected BLUE to fold to 2 (RED=0, GREEN=1, BLUE=2), got %d", n)
	}
}

func TestEvalEnumExplicitInitializerOverridesSuccessor(t *testing.T) {
	b, table, bodyScope, ev, semaBag := setup(t, `
module m;
    typedef enum { RED = 5, GREEN, BLUE = 10 } color_t;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	greenID := table.LookupInScope(reporter, b, bodyScope, "GREEN")
	sym := table.Symbols.Get(greenID)
	v, ok := ev.evalEnumValue(reporter, greenID, sym)
	if !ok {
		t.Fatalf("expected GREEN to fold")
	}
	if n, _ := v.Int.Int64(); n != 6 {
		t.Fatalf("expected GREEN to fold to 6 (RED=5 explicit, GREEN=RED+1), got %d", n)
	}
}

func TestEvalDivideByZeroReportsAndYieldsAllX(t *testing.T) {
	_, _, _, ev, semaBag := setup(t, `module m; endmodule`)
	reporter := diag.BagReporter{Bag: semaBag}

	zero := fourstate.FromInt64(8, 0)
	e := &binder.Expression{
		Kind: binder.KindBinary,
		Op:   token.Slash,
		Lhs:  &binder.Expression{Kind: binder.KindLiteral, IntValue: zero, Type: ev.Interner.Builtins().Byte},
		Rhs:  &binder.Expression{Kind: binder.KindLiteral, IntValue: zero, Type: ev.Interner.Builtins().Byte},
		Type: ev.Interner.Builtins().Byte,
	}
	v, ok := ev.Eval(reporter, e)
	if !ok || v.Kind != KindInt {
		t.Fatalf("expected a poisoned integer result, got %+v (ok=%v)", v, ok)
	}
	if !v.Int.HasUnknown() {
		t.Fatalf("expected division by zero to yield an all-X result")
	}
	if semaBag.Len() != 1 || semaBag.Items()[0].Code != diag.DivideByZero {
		t.Fatalf("expected a DivideByZero diagnostic, got %+v", semaBag.Items())
	}
}

func TestEvalClog2(t *testing.T) {
	_, _, _, ev, semaBag := setup(t, `module m; endmodule`)
	reporter := diag.BagReporter{Bag: semaBag}

	arg := &binder.Expression{Kind: binder.KindLiteral, IntValue: fourstate.FromInt64(32, 9), Type: ev.Interner.Builtins().Int}
	call := &binder.Expression{Kind: binder.KindCall, Callee: "$clog2", Args: []*binder.Expression{arg}, Type: ev.Interner.Builtins().Int}
	v, ok := ev.Eval(reporter, call)
	if !ok || v.Kind != KindInt {
		t.Fatalf("expected a folded integer result, got %+v (ok=%v)", v, ok)
	}
	if n, _ := v.Int.Int64(); n != 4 {
		t.Fatalf("expected $clog2(9) == 4, got %d", n)
	}
}

func TestEvalConcatOrdersMSBFirst(t *testing.T) {
	_, _, _, ev, semaBag := setup(t, `module m; endmodule`)
	reporter := diag.BagReporter{Bag: semaBag}

	hi := &binder.Expression{Kind: binder.KindLiteral, IntValue: fourstate.FromInt64(4, 0xA), Type: ev.Interner.Builtins().Bit}
	lo := &binder.Expression{Kind: binder.KindLiteral, IntValue: fourstate.FromInt64(4, 0x5), Type: ev.Interner.Builtins().Bit}
	concat := &binder.Expression{Kind: binder.KindConcat, Elems: []*binder.Expression{hi, lo}}
	v, ok := ev.Eval(reporter, concat)
	if !ok || v.Kind != KindInt {
		t.Fatalf("expected a folded integer result, got %+v (ok=%v)", v, ok)
	}
	n, _ := v.Int.Uint64()
	if n != 0xA5 {
		t.Fatalf("expected {4'hA, 4'h5} == 8'hA5, got %#x", n)
	}
}
