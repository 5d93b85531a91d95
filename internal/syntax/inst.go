package syntax

import "github.com/mohamed/svlang/internal/source"

// ParamAssign is one entry in a `#(...)` parameter value assignment list,
// either ordered (Name == "") or named.
type ParamAssign struct {
	Name  string
	Value ExprID
	Type  DataTypeID // set instead of Value for a named type-parameter override
	Span  source.Span
}

type ParamAssigns struct{ Arena *Arena[ParamAssign] }

func NewParamAssigns(capHint uint) *ParamAssigns {
	return &ParamAssigns{Arena: NewArena[ParamAssign](capHint)}
}
func (p *ParamAssigns) New(pa ParamAssign) ParamAssignID {
	return ParamAssignID(p.Arena.Allocate(pa))
}
func (p *ParamAssigns) Get(id ParamAssignID) *ParamAssign { return p.Arena.Get(uint32(id)) }

// Conn is one entry in an instance's port-connection list, either ordered
// (Name == "") or named (`.port(expr)`, or `.port` shorthand when Expr is
// zero, or `.*` wildcard when Name == "*").
type Conn struct {
	Name string
	Expr ExprID
	Span source.Span
}

type Conns struct{ Arena *Arena[Conn] }

func NewConns(capHint uint) *Conns { return &Conns{Arena: NewArena[Conn](capHint)} }
func (c *Conns) New(conn Conn) ConnID { return ConnID(c.Arena.Allocate(conn)) }
func (c *Conns) Get(id ConnID) *Conn { return c.Arena.Get(uint32(id)) }

// Instance is one named instance within a hierarchy instantiation, with its
// own optional unpacked-array dimensions and port-connection list.
type Instance struct {
	Name        string
	Dims        []RangeID
	Connections []ConnID
	Span        source.Span
}

type Instances struct{ Arena *Arena[Instance] }

func NewInstances(capHint uint) *Instances { return &Instances{Arena: NewArena[Instance](capHint)} }
func (i *Instances) New(inst Instance) InstanceID { return InstanceID(i.Arena.Allocate(inst)) }
func (i *Instances) Get(id InstanceID) *Instance { return i.Arena.Get(uint32(id)) }

// Inst is a hierarchy_instantiation: a definition name, its optional
// parameter override list, and one or more named instances sharing that
// definition and parameterization (LRM 23.3).
type Inst struct {
	DefName      string
	ParamAssigns []ParamAssignID
	Instances    []InstanceID
	Span         source.Span
}

type Insts struct{ Arena *Arena[Inst] }

func NewInsts(capHint uint) *Insts { return &Insts{Arena: NewArena[Inst](capHint)} }
func (i *Insts) New(inst Inst) InstID { return InstID(i.Arena.Allocate(inst)) }
func (i *Insts) Get(id InstID) *Inst { return i.Arena.Get(uint32(id)) }
