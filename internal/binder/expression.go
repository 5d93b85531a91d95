package binder

import (
	"github.com/mohamed/svlang/internal/fourstate"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
	"github.com/mohamed/svlang/internal/types"
)

// Kind classifies a bound Expression node.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindLiteral
	KindNamedRef
	KindUnary
	KindBinary
	KindConditional
	KindConcat
	KindReplication
	KindCall
	KindConversion
	KindRangeSelect
	KindMemberSelect
)

// Expression is one node of a bound expression tree: the syntax node it
// came from, its context-determined result type, and kind-specific
// operand fields. Only the fields matching Kind are populated, the same
// shape internal/syntax and internal/types already use for their own
// tagged-union nodes.
type Expression struct {
	Kind   Kind
	Type   types.TypeID
	Span   source.Span
	Syntax syntax.ExprID

	// KindLiteral
	IsReal    bool
	IsString  bool
	IntValue  fourstate.Vector
	RealValue float64
	StrValue  string

	// KindNamedRef
	Symbol symbols.SymbolID

	// KindUnary: Op + Operand. KindBinary: Op + Lhs + Rhs.
	Op      token.Kind
	Operand *Expression
	Lhs     *Expression
	Rhs     *Expression

	// KindConditional
	Cond *Expression
	Then *Expression
	Else *Expression

	// KindConcat: Elems. KindReplication: Count + Elems[0].
	Elems []*Expression
	Count *Expression

	// KindCall
	Callee string
	Args   []*Expression

	// KindConversion wraps Inner, whose own Type differs from this
	// node's Type - the context-determined type the conversion targets.
	Inner *Expression

	// KindRangeSelect / KindMemberSelect
	Base     *Expression
	MSB, LSB *Expression
	Indexed  bool
	PlusForm bool
	Field    string
}

// IsConstant reports whether e folded to a compile-time-known literal
// value during binding (KindLiteral only; internal/eval is what folds
// arbitrary constant expressions down to one during constant
// evaluation, not the binder itself).
func (e *Expression) IsConstant() bool {
	return e != nil && e.Kind == KindLiteral
}
