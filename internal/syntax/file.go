package syntax

import "github.com/mohamed/svlang/internal/source"

// File is one compilation unit: everything the parser produced from a
// single (post-preprocessing) token stream.
type File struct {
	Span  source.Span
	Units []UnitID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: sp}))
}

func (f *Files) Get(id FileID) *File { return f.Arena.Get(uint32(id)) }

// UnitKind classifies a design-unit header per LRM 3.3.
type UnitKind uint8

const (
	UnitModule UnitKind = iota
	UnitInterface
	UnitProgram
	UnitPackage
)

func (k UnitKind) String() string {
	switch k {
	case UnitModule:
		return "module"
	case UnitInterface:
		return "interface"
	case UnitProgram:
		return "program"
	case UnitPackage:
		return "package"
	default:
		return "unknown"
	}
}

// Unit is a module/interface/program/package declaration: a header (name,
// parameter port list, port list) followed by a body of items.
type Unit struct {
	Kind    UnitKind
	Name    string
	Span    source.Span
	Params  []ParamID
	Ports   []PortID
	Items   []ItemID
}

type Units struct {
	Arena *Arena[Unit]
}

func NewUnits(capHint uint) *Units {
	return &Units{Arena: NewArena[Unit](capHint)}
}

func (u *Units) New(kind UnitKind, name string, sp source.Span) UnitID {
	return UnitID(u.Arena.Allocate(Unit{Kind: kind, Name: name, Span: sp}))
}

func (u *Units) Get(id UnitID) *Unit { return u.Arena.Get(uint32(id)) }
