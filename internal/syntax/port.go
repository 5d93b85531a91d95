package syntax

import "github.com/mohamed/svlang/internal/source"

// Direction is a port's signal-flow direction (LRM 23.2.2).
type Direction uint8

const (
	DirNone Direction = iota
	DirInput
	DirOutput
	DirInOut
	DirRef
	DirInterconnect
)

func (d Direction) String() string {
	switch d {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	case DirInOut:
		return "inout"
	case DirRef:
		return "ref"
	case DirInterconnect:
		return "interconnect"
	default:
		return "(implicit)"
	}
}

// Port is one ANSI-style port declaration in a module/interface/program
// header's port list.
type Port struct {
	Name     string
	Dir      Direction
	DataType DataTypeID
	Default  ExprID // non-zero for a port with a default value (output/ref only)
	Span     source.Span
}

type Ports struct {
	Arena *Arena[Port]
}

func NewPorts(capHint uint) *Ports { return &Ports{Arena: NewArena[Port](capHint)} }

func (p *Ports) New(port Port) PortID { return PortID(p.Arena.Allocate(port)) }

func (p *Ports) Get(id PortID) *Port { return p.Arena.Get(uint32(id)) }
