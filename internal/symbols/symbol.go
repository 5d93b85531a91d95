package symbols

import (
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
)

// SymbolKind classifies the semantic meaning of a symbol, spanning both
// the design-hierarchy kinds (Definition, the instance kinds) and the
// member kinds a scope can declare.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolDefinition
	SymbolModuleInstance
	SymbolInterfaceInstance
	SymbolProgramInstance
	SymbolInstanceArray
	SymbolParameter
	SymbolTypeParameter
	SymbolVariable
	SymbolNet
	SymbolPort
	SymbolSubroutine
	SymbolEnumValue
	SymbolTypeAlias
	SymbolForwardingTypedef
	SymbolGenvar
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolDefinition:
		return "definition"
	case SymbolModuleInstance:
		return "module instance"
	case SymbolInterfaceInstance:
		return "interface instance"
	case SymbolProgramInstance:
		return "program instance"
	case SymbolInstanceArray:
		return "instance array"
	case SymbolParameter:
		return "parameter"
	case SymbolTypeParameter:
		return "type parameter"
	case SymbolVariable:
		return "variable"
	case SymbolNet:
		return "net"
	case SymbolPort:
		return "port"
	case SymbolSubroutine:
		return "subroutine"
	case SymbolEnumValue:
		return "enum value"
	case SymbolTypeAlias:
		return "type alias"
	case SymbolForwardingTypedef:
		return "forwarding typedef"
	case SymbolGenvar:
		return "genvar"
	default:
		return "invalid"
	}
}

// Decl is a symbol's origin in the syntax tree: only the field matching
// the symbol's Kind is populated. Keeping declaring syntax on the symbol
// rather than a resolved type keeps this package free of a dependency on
// internal/types - type resolution reads through these fields on demand
// and caches its own result elsewhere (internal/binder's DeclaredType
// cache), so internal/types never needs to import internal/symbols and
// the two packages don't form a cycle.
type Decl struct {
	Unit     syntax.UnitID     // SymbolDefinition
	Inst     syntax.InstID     // SymbolModuleInstance / InterfaceInstance / ProgramInstance / InstanceArray
	Instance syntax.InstanceID // one entry of Inst.Instances this symbol names
	Param    syntax.ParamID    // SymbolParameter / SymbolTypeParameter
	Port     syntax.PortID     // SymbolPort
	VarDecl  syntax.DeclID     // SymbolVariable / SymbolNet / SymbolGenvar
	VarIndex int               // index into VarDecl.Names/Inits this symbol names
	Typedef  syntax.DeclID     // SymbolTypeAlias / SymbolForwardingTypedef
	Member   syntax.MemberID   // SymbolEnumValue
	EnumType syntax.DataTypeID // owning enum type, for SymbolEnumValue
}

// Symbol is a named entity introduced somewhere in a scope: a design
// unit, an instance, a parameter, a variable, and so on.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Scope ScopeID // scope this symbol lives in
	Span  source.Span
	Decl  Decl

	// Owned scope for symbols that introduce one of their own (a
	// Definition's body, an instance's port/parameter binding scope).
	OwnScope ScopeID

	// Next chains SymbolForwardingTypedef entries into a singly linked
	// list headed by the full `typedef <type> name;` definition once
	// seen (LRM 6.18): every forward declaration of the same name points
	// at the one that follows it, terminating at NoSymbolID until the
	// real definition closes the chain.
	Next SymbolID
}
