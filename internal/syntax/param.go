package syntax

import "github.com/mohamed/svlang/internal/source"

// Param is one parameter or type-parameter declaration, either in a
// parameter port list (`#(...)`) or a module-body `parameter`/`localparam`
// statement.
type Param struct {
	Name       string
	IsType     bool
	IsLocal    bool
	DataType   DataTypeID // zero for an implicit/type parameter
	Default    ExprID     // value-parameter default, zero if none supplied
	DefaultTyp DataTypeID // type-parameter default
	Span       source.Span
}

type Params struct {
	Arena *Arena[Param]
}

func NewParams(capHint uint) *Params { return &Params{Arena: NewArena[Param](capHint)} }

func (p *Params) New(param Param) ParamID { return ParamID(p.Arena.Allocate(param)) }

func (p *Params) Get(id ParamID) *Param { return p.Arena.Get(uint32(id)) }
