package syntax

import "github.com/mohamed/svlang/internal/source"

// ItemKind classifies a module/interface/program body item.
type ItemKind uint8

const (
	ItemDecl ItemKind = iota
	ItemInstantiation
	ItemProceduralBlock
	ItemParamDecl // a body-level `parameter`/`localparam`, distinct from a header parameter port
)

// ProceduralBlockKind names the keyword that introduced a procedural block
// (LRM 9.2).
type ProceduralBlockKind uint8

const (
	ProcInitial ProceduralBlockKind = iota
	ProcFinal
	ProcAlways
	ProcAlwaysComb
	ProcAlwaysFF
	ProcAlwaysLatch
)

// Item is one member of a design unit's body.
type Item struct {
	Kind ItemKind

	Decl   DeclID    // ItemDecl
	Inst   InstID    // ItemInstantiation
	Proc   ProceduralBlockKind
	Body   StmtID    // ItemProceduralBlock
	Params []ParamID // ItemParamDecl: one entry per comma-separated name

	Span source.Span
}

type Items struct {
	Arena *Arena[Item]
}

func NewItems(capHint uint) *Items { return &Items{Arena: NewArena[Item](capHint)} }

func (i *Items) New(item Item) ItemID { return ItemID(i.Arena.Allocate(item)) }

func (i *Items) Get(id ItemID) *Item { return i.Arena.Get(uint32(id)) }
