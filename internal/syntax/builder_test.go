package syntax

import (
	"testing"

	"github.com/mohamed/svlang/internal/source"
)

func TestArenaAllocateIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatalf("index 0 must mean no element")
	}
	id := a.Allocate(42)
	if id != 1 {
		t.Fatalf("expected first Allocate to return 1, got %d", id)
	}
	if got := a.Get(id); got == nil || *got != 42 {
		t.Fatalf("Get(%d) = %v, want 42", id, got)
	}
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.Len())
	}
}

func TestBuilderTracksUnitsWithinAFile(t *testing.T) {
	b := NewBuilder(Hints{})
	fileID := b.NewFile(source.Span{Start: 0, End: 40})
	unit := b.Units.New(UnitModule, "adder", source.Span{Start: 0, End: 40})
	b.PushUnit(fileID, unit)

	item := b.Items.New(Item{Kind: ItemDecl, Span: source.Span{Start: 10, End: 20}})
	b.PushItem(unit, item)

	f := b.Files.Get(fileID)
	if len(f.Units) != 1 || f.Units[0] != unit {
		t.Fatalf("expected file to reference the pushed unit, got %v", f.Units)
	}
	u := b.Units.Get(unit)
	if u.Name != "adder" || u.Kind != UnitModule {
		t.Fatalf("unexpected unit: %+v", u)
	}
	if len(u.Items) != 1 || u.Items[0] != item {
		t.Fatalf("expected unit to reference the pushed item, got %v", u.Items)
	}
}

func TestExprArenaRoundTrips(t *testing.T) {
	b := NewBuilder(Hints{})
	lhs := b.Exprs.New(Expr{Kind: ExprIdent, Name: "a"})
	rhs := b.Exprs.New(Expr{Kind: ExprIdent, Name: "b"})
	sum := b.Exprs.New(Expr{Kind: ExprBinary, Lhs: lhs, Rhs: rhs})

	got := b.Exprs.Get(sum)
	if got.Kind != ExprBinary || got.Lhs != lhs || got.Rhs != rhs {
		t.Fatalf("unexpected binary expr: %+v", got)
	}
}
