package parser

import "github.com/mohamed/svlang/internal/token"

// Binary operator precedence, low to high, following LRM table 11-2.
// Assignment binds loosest and is right-associative; every other level
// listed here is left-associative.
const (
	precNone = iota
	precAssignment
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precPower
)

// binaryOp reports the precedence and right-associativity of kind as a
// binary operator, or (precNone, false) if kind isn't one.
func binaryOp(kind token.Kind) (prec int, rightAssoc bool) {
	switch kind {
	case token.Equals, token.PlusEqual, token.MinusEqual, token.StarEqual,
		token.SlashEqual, token.PercentEqual, token.AndEqual, token.OrEqual,
		token.XorEqual, token.LeftShiftEqual, token.RightShiftEqual,
		token.TripleLeftShiftEqual, token.TripleRightShiftEqual:
		return precAssignment, true
	case token.DoubleOr:
		return precLogicalOr, false
	case token.DoubleAnd:
		return precLogicalAnd, false
	case token.Or:
		return precBitwiseOr, false
	case token.Xor, token.XorTilde, token.TildeXor:
		return precBitwiseXor, false
	case token.And:
		return precBitwiseAnd, false
	case token.DoubleEquals, token.ExclamationEquals, token.TripleEquals,
		token.ExclamationDoubleEquals, token.DoubleEqualsQuestion,
		token.ExclamationEqualsQuestion:
		return precEquality, false
	case token.LessThan, token.LessThanEquals, token.GreaterThan, token.GreaterThanEquals,
		token.InsideKeyword:
		return precRelational, false
	case token.LeftShift, token.RightShift, token.TripleLeftShift, token.TripleRightShift:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.StarStar:
		return precPower, false
	default:
		return precNone, false
	}
}

// isAssignmentOp reports whether kind is one of the compound/plain
// assignment operators, for which the precedence climber (parseBinaryFrom)
// builds an ExprAssignment instead of an ExprBinary.
func isAssignmentOp(kind token.Kind) bool {
	_, right := binaryOp(kind)
	return right && kind != token.StarStar
}

// unaryOp reports whether kind is a legal unary-expression prefix
// operator (LRM 11.4.1).
func unaryOp(kind token.Kind) bool {
	switch kind {
	case token.Plus, token.Minus, token.Exclamation, token.Tilde,
		token.And, token.TildeAnd, token.Or, token.TildeOr,
		token.Xor, token.XorTilde, token.TildeXor:
		return true
	default:
		return false
	}
}
