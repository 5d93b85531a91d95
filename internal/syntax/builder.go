package syntax

import "github.com/mohamed/svlang/internal/source"

// Hints sizes the initial capacity of each per-kind arena; zero picks a
// small default rather than an unbounded growth-from-nothing allocation.
type Hints struct {
	Files, Units, Items, Decls, Insts, Stmts, Exprs, DataTypes uint
}

// Builder aggregates every arena the parser allocates into: one Builder
// per parse.
type Builder struct {
	Files     *Files
	Units     *Units
	Ports     *Ports
	Params    *Params
	DataTypes *DataTypes
	Decls     *Decls
	Insts     *Insts
	Instances *Instances
	ParamAssigns *ParamAssigns
	Conns     *Conns
	Items     *Items
	Stmts     *Stmts
	Exprs     *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 4
	}
	if hints.Units == 0 {
		hints.Units = 1 << 5
	}
	if hints.Items == 0 {
		hints.Items = 1 << 7
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	if hints.Insts == 0 {
		hints.Insts = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.DataTypes == 0 {
		hints.DataTypes = 1 << 6
	}
	return &Builder{
		Files:        NewFiles(hints.Files),
		Units:        NewUnits(hints.Units),
		Ports:        NewPorts(hints.Units * 4),
		Params:       NewParams(hints.Units * 2),
		DataTypes:    NewDataTypes(hints.DataTypes),
		Decls:        NewDecls(hints.Decls),
		Insts:        NewInsts(hints.Insts),
		Instances:    NewInstances(hints.Insts),
		ParamAssigns: NewParamAssigns(hints.Insts * 2),
		Conns:        NewConns(hints.Insts * 4),
		Items:        NewItems(hints.Items),
		Stmts:        NewStmts(hints.Stmts),
		Exprs:        NewExprs(hints.Exprs),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID { return b.Files.New(sp) }

func (b *Builder) PushUnit(file FileID, unit UnitID) {
	f := b.Files.Get(file)
	f.Units = append(f.Units, unit)
}

func (b *Builder) PushItem(unit UnitID, item ItemID) {
	u := b.Units.Get(unit)
	u.Items = append(u.Items, item)
}

func (b *Builder) PushParam(unit UnitID, param ParamID) {
	u := b.Units.Get(unit)
	u.Params = append(u.Params, param)
}

func (b *Builder) PushPort(unit UnitID, port PortID) {
	u := b.Units.Get(unit)
	u.Ports = append(u.Ports, port)
}
