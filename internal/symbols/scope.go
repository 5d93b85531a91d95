package symbols

import (
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
)

// ScopeKind enumerates the lexical scope categories SV's hierarchy
// introduces.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	ScopeCompilationUnit
	ScopeDefinition // a module/interface/program/package body
	ScopeInstance   // one hierarchy_instance's port/parameter binding
	ScopeBlock      // begin/end, generate, or a subroutine body
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeCompilationUnit:
		return "compilation unit"
	case ScopeDefinition:
		return "definition"
	case ScopeInstance:
		return "instance"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope models one lexical scope: a parent link, its own declared
// symbols indexed by name, child scopes, and - the piece that makes
// elaboration lazy - a queue of syntax items this scope owns but hasn't
// turned into symbols yet. ElaboratePending walks that queue on first
// Lookup or ForceElaborate, matching how a real SV scope's members
// aren't fully known until something needs to see them (a generate
// block's contents depend on a still-unresolved genvar, a package's
// wildcard import can't be expanded until the package itself resolves).
type Scope struct {
	Kind   ScopeKind
	Parent ScopeID
	Unit   syntax.UnitID // owning design unit, for ScopeDefinition/ScopeInstance

	Span source.Span

	NameIndex map[string]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID

	pendingItems []syntax.ItemID
	elaborated   bool

	// WildcardImports lists scopes (typically a ScopeDefinition of a
	// package) whose members are candidates for this scope's lookups,
	// searched after this scope's own members and before its parent
	// (LRM 26.3's import-before-inherit rule).
	WildcardImports []ScopeID

	// forwardHeads records, per name, the first SymbolForwardingTypedef
	// declared for that name during elaboration - the head of the
	// singly-linked forwarding chain internal/types walks to build a
	// TypeAlias's forward-declaration list.
	forwardHeads map[string]SymbolID
}

func newScope(kind ScopeKind, parent ScopeID, unit syntax.UnitID, span source.Span) Scope {
	return Scope{
		Kind:      kind,
		Parent:    parent,
		Unit:      unit,
		Span:      span,
		NameIndex: make(map[string]SymbolID),
	}
}

// NewInstanceScope allocates the ScopeInstance that binds one
// hierarchy_instance's parameter overrides and port connections, parented
// under the instantiating scope. internal/compilation calls this once per
// concrete instance (each expanded array element gets its own), separate
// from the shared Definition body scope the instance's parameters resolve
// against.
func (t *Table) NewInstanceScope(parent ScopeID, unit syntax.UnitID, span source.Span) ScopeID {
	return t.Scopes.New(newScope(ScopeInstance, parent, unit, span))
}
