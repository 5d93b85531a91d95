package syntax

import (
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

// ExprKind classifies an Expr node.
type ExprKind uint8

const (
	ExprLiteral ExprKind = iota
	ExprIdent
	ExprHierarchical // a.b.c dotted path, or $root.a.b
	ExprUnary
	ExprBinary
	ExprConditional // cond ? a : b
	ExprConcat      // {a, b, c}
	ExprReplication // {n{a}}
	ExprCall        // f(args) or a system task/function call
	ExprRangeSelect // a[msb:lsb], a[idx+:w], a[idx-:w]
	ExprBitSelect   // a[idx]
	ExprMember      // a.field
	ExprAssignment  // a = b / a += b, used where SV allows assignment as an expression
	ExprMissing     // error-recovery placeholder
)

// Expr is one expression syntax node.
type Expr struct {
	Kind ExprKind

	// ExprLiteral
	Token *token.Token

	// ExprIdent / ExprHierarchical / ExprMember
	Name  string
	Path  []string // ExprHierarchical: the dotted segments after Name
	Base  ExprID   // ExprMember: the object expression

	// ExprUnary / ExprBinary / ExprAssignment
	Op    token.Kind
	Lhs   ExprID
	Rhs   ExprID

	// ExprConditional
	Cond ExprID
	Then ExprID
	Else ExprID

	// ExprConcat / ExprCall arguments
	Elems []ExprID

	// ExprReplication
	Count ExprID
	Body  ExprID

	// ExprRangeSelect / ExprBitSelect
	Array   ExprID
	MSB     ExprID
	LSB     ExprID
	Indexed bool
	PlusForm bool

	// ExprCall
	Callee string

	Span source.Span
}

type Exprs struct {
	Arena *Arena[Expr]
}

func NewExprs(capHint uint) *Exprs { return &Exprs{Arena: NewArena[Expr](capHint)} }

func (e *Exprs) New(expr Expr) ExprID { return ExprID(e.Arena.Allocate(expr)) }

func (e *Exprs) Get(id ExprID) *Expr { return e.Arena.Get(uint32(id)) }
