package syntax

import "github.com/mohamed/svlang/internal/source"

// DeclKind classifies a Decl node.
type DeclKind uint8

const (
	DeclVariable DeclKind = iota
	DeclNet
	DeclTypedef
	DeclTypedefForward
	DeclContinuousAssign
	DeclGenvar
)

// NetKind names the net keyword a net declaration used (LRM 6.7.1).
type NetKind uint8

const (
	NetWire NetKind = iota
	NetWAnd
	NetWOr
	NetTri
	NetTri0
	NetTri1
	NetTriAnd
	NetTriOr
	NetTriReg
	NetUWire
	NetSupply0
	NetSupply1
	NetImplicit // declared implicitly by an undeclared identifier in a connection
)

// Decl is one variable/net/typedef/continuous-assign/genvar declaration.
type Decl struct {
	Kind DeclKind

	// DeclVariable / DeclNet / DeclGenvar
	Names    []string
	NameSpan []source.Span
	DataType DataTypeID
	Inits    []ExprID // parallel to Names; zero entry means no initializer
	Net      NetKind

	// DeclTypedef / DeclTypedefForward
	TypedefName string

	// DeclContinuousAssign
	Target ExprID
	Value  ExprID

	Span source.Span
}

type Decls struct {
	Arena *Arena[Decl]
}

func NewDecls(capHint uint) *Decls { return &Decls{Arena: NewArena[Decl](capHint)} }

func (d *Decls) New(decl Decl) DeclID { return DeclID(d.Arena.Allocate(decl)) }

func (d *Decls) Get(id DeclID) *Decl { return d.Arena.Get(uint32(id)) }
