package token

import "github.com/mohamed/svlang/internal/fourstate"

// NumericFlags records how a numeric literal token was written, since the
// same underlying value can come from very different spellings (`8'b1010`
// vs `10`) that later stages must distinguish (size, signedness, base).
type NumericFlags uint16

const (
	DecimalBase NumericFlags = 1 << iota
	BinaryBase
	OctalBase
	HexBase
	IsSigned
	Unsized
	Seconds
	Milliseconds
	Microseconds
	Nanoseconds
	Picoseconds
	Femtoseconds
)

// NumericValue is the parsed payload of an IntegerLit, RealLit, TimeLit, or
// UnbasedUnsizedLit token. Exactly one of Int/Real is meaningful, selected
// by the token's Kind.
type NumericValue struct {
	Flags NumericFlags
	Int   fourstate.Vector
	Real  float64
}
