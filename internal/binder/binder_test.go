package binder

import (
	"testing"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/parser"
	"github.com/mohamed/svlang/internal/preprocessor"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
	"github.com/mohamed/svlang/internal/types"
)

// parseSnippet mirrors internal/symbols' and internal/types' test
// helper of the same name: run the full preprocessor -> parser pipeline
// over input and hand back the builder and the parsed file's single
// design unit.
func parseSnippet(t *testing.T, input string) (*syntax.Builder, syntax.UnitID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sv", []byte(input))

	parseBag := diag.NewBag(64)
	pp := preprocessor.New(fs, fileID, preprocessor.Options{Reporter: diag.BagReporter{Bag: parseBag}})
	b := syntax.NewBuilder(syntax.Hints{})

	res := parser.ParseFile(pp, b, parser.Options{MaxErrors: 64, Reporter: diag.BagReporter{Bag: parseBag}})
	if parseBag.Len() != 0 {
		t.Fatalf("unexpected parse diagnostics (count %d): %s", parseBag.Len(), parseBag.Items()[0].Message)
	}
	f := b.Files.Get(res.File)
	if len(f.Units) != 1 {
		t.Fatalf("expected exactly one design unit, got %d", len(f.Units))
	}
	semaBag := diag.NewBag(16)
	return b, f.Units[0], semaBag
}

// setupModule parses src as a single design unit, declares it and
// elaborates its body scope, and returns the builder, symbol table,
// body scope and diagnostic bag a test needs to bind against it.
func setupModule(t *testing.T, src string) (*syntax.Builder, *symbols.Table, symbols.ScopeID, *diag.Bag) {
	t.Helper()
	b, unitID, semaBag := parseSnippet(t, src)
	reporter := diag.BagReporter{Bag: semaBag}
	table := symbols.NewTable(symbols.Hints{})
	_, bodyScope := table.DeclareDefinition(reporter, b, unitID)
	table.ForceElaborate(reporter, b, bodyScope)
	return b, table, bodyScope, semaBag
}

func firstAssignRHS(t *testing.T, b *syntax.Builder, unitID syntax.UnitID) syntax.ExprID {
	t.Helper()
	u := b.Units.Get(unitID)
	for _, itemID := range u.Items {
		item := b.Items.Get(itemID)
		if item.Kind != syntax.ItemDecl {
			continue
		}
		decl := b.Decls.Get(item.Decl)
		if decl.Kind == syntax.DeclContinuousAssign {
			return decl.Value
		}
	}
	t.Fatalf("no continuous assignment found")
	return syntax.NoExprID
}

func newBinderForTest(interner *types.Interner, table *symbols.Table, b *syntax.Builder) *Binder {
	cache := types.NewCache(interner)
	return New(interner, table, cache, b, types.LiteralConstEval(b))
}

func TestBindLiteralWidensToAtLeast32Bits(t *testing.T) {
	b, unitID, semaBag := parseSnippet(t, `
module m;
    logic [7:0] value;
    assign value = 8'hFF;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	table := symbols.NewTable(symbols.Hints{})
	_, bodyScope := table.DeclareDefinition(reporter, b, unitID)
	table.ForceElaborate(reporter, b, bodyScope)

	rhs := firstAssignRHS(t, b, unitID)
	in := types.NewInterner()
	bd := newBinderForTest(in, table, b)
	e := bd.Bind(reporter, Context{Scope: bodyScope}, rhs)
	if e == nil || e.Kind != KindLiteral {
		t.Fatalf("expected a literal expression, got %+v", e)
	}
	got := in.MustLookup(e.Type)
	if got.Width < 32 {
		t.Fatalf("expected literal to widen to at least 32 bits, got %d", got.Width)
	}
}

func TestBindIdentResolvesVariableType(t *testing.T) {
	b, table, bodyScope, semaBag := setupModule(t, `
module m;
    logic [7:0] a;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	sym := table.LookupInScope(reporter, b, bodyScope, "a")
	if !sym.IsValid() {
		t.Fatalf("expected 'a' to be declared")
	}

	// Synthesize an ExprIdent referencing 'a' to bind against.
	exprID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: "a"})

	in := types.NewInterner()
	bd := newBinderForTest(in, table, b)
	e := bd.Bind(reporter, Context{Scope: bodyScope}, exprID)
	if e == nil || e.Kind != KindNamedRef {
		t.Fatalf("expected a named-ref expression, got %+v", e)
	}
	got := in.MustLookup(e.Type)
	if got.Kind != types.KindScalar || got.Width != 8 {
		t.Fatalf("expected an 8-bit scalar type, got %+v", got)
	}
	if semaBag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", semaBag.Items())
	}
}

func TestBindUndeclaredIdentReportsDiagnostic(t *testing.T) {
	b, table, bodyScope, semaBag := setupModule(t, `module m; endmodule`)
	reporter := diag.BagReporter{Bag: semaBag}
	exprID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: "nope"})

	in := types.NewInterner()
	bd := newBinderForTest(in, table, b)
	e := bd.Bind(reporter, Context{Scope: bodyScope}, exprID)
	if e.Type != in.Builtins().Error {
		t.Fatalf("expected undeclared identifier to bind to the error type")
	}
	if semaBag.Len() != 1 || semaBag.Items()[0].Code != diag.UndeclaredIdentifier {
		t.Fatalf("expected an UndeclaredIdentifier diagnostic, got %+v", semaBag.Items())
	}
}

func TestBindIdentRejectsForwardReferenceInSameScope(t *testing.T) {
	b, unitID, semaBag := parseSnippet(t, `
module m;
    assign y = x;
    logic x;
    logic y;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	table := symbols.NewTable(symbols.Hints{})
	_, bodyScope := table.DeclareDefinition(reporter, b, unitID)
	table.ForceElaborate(reporter, b, bodyScope)

	exprID := firstAssignRHS(t, b, unitID)

	in := types.NewInterner()
	bd := newBinderForTest(in, table, b)
	e := bd.Bind(reporter, Context{Scope: bodyScope}, exprID)
	if e.Type != in.Builtins().Error {
		t.Fatalf("expected a forward reference to 'x' to bind to the error type")
	}
	if semaBag.Len() != 1 || semaBag.Items()[0].Code != diag.UndeclaredIdentifier {
		t.Fatalf("expected an UndeclaredIdentifier diagnostic for the forward reference, got %+v", semaBag.Items())
	}
}

func TestBindBinaryWidensToWiderOperand(t *testing.T) {
	b, table, bodyScope, semaBag := setupModule(t, `
module m;
    logic [7:0] a;
    logic [15:0] c;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}

	aID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: "a"})
	cID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: "c"})
	sumID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprBinary, Op: token.Plus, Lhs: aID, Rhs: cID})

	in := types.NewInterner()
	bd := newBinderForTest(in, table, b)
	e := bd.Bind(reporter, Context{Scope: bodyScope}, sumID)
	if e == nil || e.Kind != KindBinary {
		t.Fatalf("expected a binary expression, got %+v", e)
	}
	got := in.MustLookup(e.Type)
	if got.Width != 16 {
		t.Fatalf("expected the wider 16-bit operand to win, got width %d", got.Width)
	}
	if e.Lhs.Kind != KindConversion {
		t.Fatalf("expected the narrower operand to be wrapped in a conversion")
	}
}

func TestBindComparisonAlwaysProducesOneBit(t *testing.T) {
	b, table, bodyScope, semaBag := setupModule(t, `
module m;
    logic [31:0] a;
    logic [31:0] c;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	aID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: "a"})
	cID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: "c"})
	eqID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprBinary, Op: token.DoubleEquals, Lhs: aID, Rhs: cID})

	in := types.NewInterner()
	bd := newBinderForTest(in, table, b)
	e := bd.Bind(reporter, Context{Scope: bodyScope}, eqID)
	got := in.MustLookup(e.Type)
	if got.Width != 1 {
		t.Fatalf("expected a comparison to produce a 1-bit result, got width %d", got.Width)
	}
}

func TestBindStructMemberSelect(t *testing.T) {
	b, unitID, semaBag := parseSnippet(t, `
module m;
    typedef struct packed { logic [7:0] lo; logic [7:0] hi; } pair_t;
    pair_t p;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	table := symbols.NewTable(symbols.Hints{})
	_, bodyScope := table.DeclareDefinition(reporter, b, unitID)
	table.ForceElaborate(reporter, b, bodyScope)

	pID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: "p"})
	loID := b.Exprs.New(syntax.Expr{Kind: syntax.ExprMember, Base: pID, Name: "lo"})

	in := types.NewInterner()
	bd := newBinderForTest(in, table, b)
	e := bd.Bind(reporter, Context{Scope: bodyScope}, loID)
	if e == nil || e.Kind != KindMemberSelect {
		t.Fatalf("expected a member-select expression, got %+v", e)
	}
	got := in.MustLookup(e.Type)
	if got.Width != 8 {
		t.Fatalf("expected field 'lo' to be 8 bits wide, got %d", got.Width)
	}
	if semaBag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", semaBag.Items())
	}
}
