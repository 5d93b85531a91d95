package eval

import "github.com/mohamed/svlang/internal/fourstate"

// Kind classifies a folded constant Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindReal
	KindString
)

// Value is one compile-time constant result: an integer (carrying its
// own four-state bits), a real, or a string, never more than one at a
// time.
type Value struct {
	Kind Kind
	Int  fourstate.Vector
	Real float64
	Str  string
}

// Invalid marks a constant expression that could not be folded; the
// caller has already reported why.
func Invalid() Value { return Value{Kind: KindInvalid} }

func IntValue(v fourstate.Vector) Value { return Value{Kind: KindInt, Int: v} }

func RealValue(f float64) Value { return Value{Kind: KindReal, Real: f} }

func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IsUnknown reports whether an integer Value carries any X/Z bit.
func (v Value) IsUnknown() bool { return v.Kind == KindInt && v.Int.HasUnknown() }
