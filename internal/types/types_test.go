package types

import (
	"testing"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/parser"
	"github.com/mohamed/svlang/internal/preprocessor"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
)

// parseSnippet mirrors internal/symbols' test helper: run the full
// preprocessor -> parser pipeline over input and hand back the builder
// and the parsed file's single design unit.
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

// firstVarDataType parses a module with a single top-level variable
// declaration and returns its DataTypeID.
func firstVarDataType(t *testing.T, moduleBody string) (*syntax.Builder, syntax.DataTypeID) {
	t.Helper()
	b, unitID, _ := parseSnippet(t, "module m;\n"+moduleBody+"\nendmodule\n")
	u := b.Units.Get(unitID)
	for _, itemID := range u.Items {
		item := b.Items.Get(itemID)
		if item.Kind == syntax.ItemDecl {
			decl := b.Decls.Get(item.Decl)
			if decl.Kind == syntax.DeclVariable {
				return b, decl.DataType
			}
		}
	}
	t.Fatalf("no variable declaration found")
	return nil, syntax.NoDataTypeID
}

func TestInternDeduplicatesStructurallyIdenticalScalars(t *testing.T) {
	in := NewInterner()
	a := in.Intern(Type{Kind: KindScalar, Width: 8, FourState: true})
	c := in.Intern(Type{Kind: KindScalar, Width: 8, FourState: true})
	if a != c {
		t.Fatalf("expected identical scalar descriptors to share a TypeID, got %v and %v", a, c)
	}
	d := in.Intern(Type{Kind: KindScalar, Width: 9, FourState: true})
	if a == d {
		t.Fatalf("expected different widths to intern to different TypeIDs")
	}
}

func TestRegisterStructAlwaysAllocatesFreshNominalID(t *testing.T) {
	in := NewInterner()
	info := StructInfo{Fields: []Field{{Name: "x", Type: in.builtins.Bit}}}
	a := in.RegisterStruct(true, info, 1, false)
	c := in.RegisterStruct(true, info, 1, false)
	if a == c {
		t.Fatalf("expected two RegisterStruct calls to produce distinct TypeIDs even with identical shape")
	}
}

func TestCanonicalUnwrapsAliasChain(t *testing.T) {
	in := NewInterner()
	target := in.builtins.Byte
	alias1 := in.RegisterAlias(AliasInfo{Name: "a1", Target: target})
	alias2 := in.RegisterAlias(AliasInfo{Name: "a2", Target: alias1})

	if got := in.Canonical(alias2); got != target {
		t.Fatalf("expected Canonical to unwrap through both aliases to %v, got %v", target, got)
	}
	if !in.Equivalent(alias2, target) {
		t.Fatalf("expected alias2 to be Equivalent to its ultimate target")
	}
}

func TestCanonicalSelfReferentialAliasReturnsErrorType(t *testing.T) {
	in := NewInterner()
	slot := in.appendAliasInfo(AliasInfo{Name: "loopy"})
	id := in.internRaw(Type{Kind: KindAlias, Payload: slot})
	in.aliases[slot].Target = id

	if got := in.Canonical(id); got != in.builtins.Error {
		t.Fatalf("expected self-referential alias to canonicalize to the error type, got %v", got)
	}
}

func TestCacheResolveMemoizesAndCatchesRecursion(t *testing.T) {
	in := NewInterner()
	cache := NewCache(in)
	bag := diag.NewBag(8)
	reporter := diag.BagReporter{Bag: bag}

	calls := 0
	resolve := func() TypeID {
		calls++
		return in.builtins.Int
	}
	first := cache.Resolve(reporter, "k", syntax.NoDataTypeID, syntax.NoExprID, source.Span{}, resolve)
	second := cache.Resolve(reporter, "k", syntax.NoDataTypeID, syntax.NoExprID, source.Span{}, resolve)
	if first != second || calls != 1 {
		t.Fatalf("expected Resolve to memoize, calls=%d", calls)
	}

	var recursiveResolve func() TypeID
	recursiveResolve = func() TypeID {
		return cache.Resolve(reporter, "r", syntax.NoDataTypeID, syntax.NoExprID, source.Span{}, recursiveResolve)
	}
	got := cache.Resolve(reporter, "r", syntax.NoDataTypeID, syntax.NoExprID, source.Span{}, recursiveResolve)
	if got != in.builtins.Error {
		t.Fatalf("expected recursive resolution to fall back to the error type")
	}
	found := false
	for _, item := range bag.Items() {
		if item.Code == diag.RecursiveResolution {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a RecursiveResolution diagnostic")
	}
}

func TestResolveScalarWithPackedDimension(t *testing.T) {
	b, dtID := firstVarDataType(t, "logic [7:0] value;")
	in := NewInterner()
	table := symbols.NewTable(symbols.Hints{})
	cache := NewCache(in)
	reporter := diag.BagReporter{Bag: diag.NewBag(8)}

	id := in.Resolve(reporter, cache, table, b, table.Root, dtID, LiteralConstEval(b))
	got := in.MustLookup(id)
	if got.Kind != KindScalar || got.Width != 8 || !got.FourState {
		t.Fatalf("expected an 8-bit four-state scalar, got %+v", got)
	}
}

func TestResolveIntegerAtomSignedOverride(t *testing.T) {
	b, dtID := firstVarDataType(t, "byte unsigned value;")
	in := NewInterner()
	table := symbols.NewTable(symbols.Hints{})
	cache := NewCache(in)
	reporter := diag.BagReporter{Bag: diag.NewBag(8)}

	id := in.Resolve(reporter, cache, table, b, table.Root, dtID, LiteralConstEval(b))
	got := in.MustLookup(id)
	if got.Kind != KindIntegerAtom || got.Width != 8 || got.Signed {
		t.Fatalf("expected an 8-bit unsigned integer atom, got %+v", got)
	}
}

func TestResolveNamedTypeCachesSharedAliasID(t *testing.T) {
	b, unitID, semaBag := parseSnippet(t, `
module m;
    typedef enum { IDLE, RUN } state_t;
    state_t a;
    state_t b;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	table := symbols.NewTable(symbols.Hints{})
	_, bodyScope := table.DeclareDefinition(reporter, b, unitID)
	table.ForceElaborate(reporter, b, bodyScope)

	var aDataType, bDataType syntax.DataTypeID
	u := b.Units.Get(unitID)
	seen := 0
	for _, itemID := range u.Items {
		item := b.Items.Get(itemID)
		if item.Kind != syntax.ItemDecl {
			continue
		}
		decl := b.Decls.Get(item.Decl)
		if decl.Kind != syntax.DeclVariable {
			continue
		}
		seen++
		if seen == 1 {
			aDataType = decl.DataType
		} else {
			bDataType = decl.DataType
		}
	}
	if seen != 2 {
		t.Fatalf("expected 2 variable declarations, found %d", seen)
	}

	in := NewInterner()
	cache := NewCache(in)
	eval := LiteralConstEval(b)

	idA := in.Resolve(reporter, cache, table, b, bodyScope, aDataType, eval)
	idB := in.Resolve(reporter, cache, table, b, bodyScope, bDataType, eval)
	if idA != idB {
		t.Fatalf("expected both state_t references to resolve to the same TypeID")
	}
	info, ok := in.AliasInfo(idA)
	if !ok || info.Name != "state_t" {
		t.Fatalf("expected an alias registered as state_t, got %+v ok=%v", info, ok)
	}
	target, ok := in.EnumInfo(info.Target)
	if !ok || len(target.Members) != 2 {
		t.Fatalf("expected the alias target to be a 2-member enum, got %+v ok=%v", target, ok)
	}
}

func TestResolveUnknownNamedTypeReportsDiagnostic(t *testing.T) {
	b, unitID, semaBag := parseSnippet(t, `
module m;
    not_a_type value;
endmodule
`)
	reporter := diag.BagReporter{Bag: semaBag}
	table := symbols.NewTable(symbols.Hints{})
	_, bodyScope := table.DeclareDefinition(reporter, b, unitID)
	table.ForceElaborate(reporter, b, bodyScope)

	u := b.Units.Get(unitID)
	item := b.Items.Get(u.Items[0])
	decl := b.Decls.Get(item.Decl)

	in := NewInterner()
	cache := NewCache(in)
	bag := diag.NewBag(8)
	id := in.Resolve(diag.BagReporter{Bag: bag}, cache, table, b, bodyScope, decl.DataType, LiteralConstEval(b))
	if id != in.builtins.Error {
		t.Fatalf("expected unknown named type to resolve to the error type")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.UnknownTypeName {
		t.Fatalf("expected a single UnknownTypeName diagnostic, got %+v", bag.Items())
	}
}
