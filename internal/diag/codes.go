package diag

import "fmt"

// Code is a stable, numeric diagnostic identifier. Codes are grouped by the
// pipeline stage that raises them so that a code's magnitude alone tells a
// reader roughly where in the pipeline it originates.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1099)
	NonPrintableChar        Code = 1000
	UTF8Char                Code = 1001
	EmbeddedNull            Code = 1002
	UnicodeBOM              Code = 1003
	UnterminatedBlockComment Code = 1004
	NestedBlockComment      Code = 1005
	EscapedWhitespace       Code = 1006
	ExpectedClosingQuote    Code = 1007
	OctalEscapeCodeTooBig   Code = 1008
	InvalidHexEscapeCode    Code = 1009
	UnknownEscapeCode       Code = 1010
	MissingFractionalDigits Code = 1011
	MisplacedDirectiveChar  Code = 1012

	// Preprocessor (1100-1199)
	UnknownDirective          Code = 1100
	CouldNotOpenIncludeFile   Code = 1101
	ExpectedMacroArgs         Code = 1102
	UnbalancedConditional     Code = 1103
	MacroExpansionTooDeep     Code = 1104
	MacroArgumentCountMismatch Code = 1105
	ExpectedIncludeFileName   Code = 1106

	// Parse (2000-2099)
	ExpectedToken      Code = 2000
	UnexpectedToken    Code = 2001
	ExpectedIdentifier Code = 2002
	ExpectedExpression Code = 2003

	// Lookup (2500-2599)
	UnknownMember                    Code = 2500
	UnknownModule                    Code = 2501
	NotAModport                      Code = 2502
	UsedBeforeDeclared               Code = 2503
	HierarchicalReferenceInConstant  Code = 2504
	DuplicateSymbol                  Code = 2505
	MismatchedForwardingTypedef      Code = 2506
	AmbiguousWildcardImport          Code = 2507
	UnknownTypeName                  Code = 2508
	IncompleteForwardType            Code = 2509

	// Elaboration (3000-3099)
	ParameterDoesNotExist       Code = 3000
	DuplicateParamAssignment    Code = 3001
	MixingOrderedAndNamedParams Code = 3002
	AssignedToLocalPortParam    Code = 3003
	AssignedToLocalBodyParam    Code = 3004
	ParamHasNoValue             Code = 3005
	TooManyParamAssignments     Code = 3006
	BadTypeParamExpr            Code = 3007
	MaxInstanceDepthExceeded    Code = 3008
	RecursiveResolution         Code = 3009
	DuplicateEnumValue          Code = 3010

	// Type / expression (3500-3599)
	BadAssignment           Code = 3500
	NotConstant             Code = 3501
	DivideByZero            Code = 3502
	FormatMismatchedType    Code = 3503
	FormatNoArgument        Code = 3504
	FormatTooManyArgs       Code = 3505
	BadSystemSubroutineArg  Code = 3506
	UndeclaredIdentifier    Code = 3507
	NotAValue               Code = 3508
)

var codeTitle = map[Code]string{
	UnknownCode:                     "unknown diagnostic",
	NonPrintableChar:                "non-printable character in source text",
	UTF8Char:                        "non-ASCII UTF-8 character outside string or comment",
	EmbeddedNull:                    "embedded NUL byte in source text",
	UnicodeBOM:                      "unicode byte order mark",
	UnterminatedBlockComment:        "unterminated block comment",
	NestedBlockComment:              "nested block comment",
	EscapedWhitespace:               "escaped whitespace in identifier",
	ExpectedClosingQuote:            "expected closing quote",
	OctalEscapeCodeTooBig:           "octal escape code exceeds 255",
	InvalidHexEscapeCode:            "invalid hexadecimal escape code",
	UnknownEscapeCode:               "unknown character escape",
	MissingFractionalDigits:         "missing digits after decimal point",
	MisplacedDirectiveChar:          "misplaced compiler directive character",
	UnknownDirective:                "unknown compiler directive",
	CouldNotOpenIncludeFile:         "could not open include file",
	ExpectedMacroArgs:               "expected macro arguments",
	UnbalancedConditional:           "unbalanced conditional directive",
	MacroExpansionTooDeep:           "macro expansion exceeded maximum depth",
	MacroArgumentCountMismatch:      "macro argument count mismatch",
	ExpectedIncludeFileName:         "expected include file name",
	ExpectedToken:                   "expected token",
	UnexpectedToken:                 "unexpected token",
	ExpectedIdentifier:              "expected identifier",
	ExpectedExpression:              "expected expression",
	UnknownMember:                   "unknown member",
	UnknownModule:                   "unknown module or interface",
	NotAModport:                     "identifier does not name a modport",
	UsedBeforeDeclared:              "identifier used before its declaration",
	HierarchicalReferenceInConstant: "hierarchical reference not allowed in constant expression",
	DuplicateSymbol:                 "duplicate symbol declared in the same scope",
	MismatchedForwardingTypedef:     "forwarding typedef category does not match its full definition",
	AmbiguousWildcardImport:         "name is visible through more than one wildcard package import",
	UnknownTypeName:                 "unknown type name",
	IncompleteForwardType:           "type name was only forward-declared, never fully defined",
	ParameterDoesNotExist:           "parameter does not exist",
	DuplicateParamAssignment:        "duplicate parameter assignment",
	MixingOrderedAndNamedParams:     "cannot mix ordered and named parameter assignments",
	AssignedToLocalPortParam:        "cannot assign to a localparam port parameter",
	AssignedToLocalBodyParam:        "cannot assign to a localparam declared in the module body",
	ParamHasNoValue:                 "parameter has no value and no default",
	TooManyParamAssignments:         "too many parameter assignments",
	BadTypeParamExpr:                "invalid type parameter expression",
	MaxInstanceDepthExceeded:        "maximum instance nesting depth exceeded",
	RecursiveResolution:             "recursive resolution detected",
	DuplicateEnumValue:              "duplicate enumeration value",
	BadAssignment:                   "type is not assignable to target",
	NotConstant:                     "expression is not a constant",
	DivideByZero:                    "division by zero in constant expression",
	FormatMismatchedType:            "format argument type mismatch",
	FormatNoArgument:                "format specifier has no corresponding argument",
	FormatTooManyArgs:               "too many arguments for format string",
	BadSystemSubroutineArg:          "invalid argument to system subroutine",
	UndeclaredIdentifier:            "use of undeclared identifier",
	NotAValue:                       "name does not refer to a value",
}

// ID returns the code's stable printable form, e.g. "SV-E1001".
func (c Code) ID() string {
	return fmt.Sprintf("SV-E%04d", uint16(c))
}

// Title returns a short human-readable description of the code.
func (c Code) Title() string {
	if t, ok := codeTitle[c]; ok {
		return t
	}
	return codeTitle[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("%s: %s", c.ID(), c.Title())
}

// Stage classifies which pipeline component raises a code.
type Stage uint8

const (
	StageUnknown Stage = iota
	StageLexer
	StagePreprocessor
	StageParser
	StageLookup
	StageElaboration
	StageTypeExpr
)

func (c Code) Stage() Stage {
	switch n := uint16(c); {
	case n >= 1000 && n < 1100:
		return StageLexer
	case n >= 1100 && n < 1200:
		return StagePreprocessor
	case n >= 2000 && n < 2100:
		return StageParser
	case n >= 2500 && n < 2600:
		return StageLookup
	case n >= 3000 && n < 3100:
		return StageElaboration
	case n >= 3500 && n < 3600:
		return StageTypeExpr
	}
	return StageUnknown
}
