package types

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
)

// DeclState is a DeclaredType's resolution progress.
type DeclState uint8

const (
	NotStarted DeclState = iota
	InProgress
	Resolved
)

// DeclaredType tracks one symbol's declared type on its way from unread
// syntax to a cached TypeID: NotStarted until first asked for,
// InProgress for the duration of its own resolution (so a self-
// referential declaration - `typedef struct { foo_t f; } foo_t;` naming
// itself in its own field list - is caught rather than infinitely
// recursing), Resolved once a TypeID is cached.
type DeclaredType struct {
	TypeSyntax        syntax.DataTypeID
	InitializerSyntax syntax.ExprID
	State             DeclState
	Result            TypeID
}

// Cache resolves DeclaredTypes exactly once each, short-circuiting
// re-entrant resolution attempts with an ErrorType and a
// RecursiveResolution diagnostic instead of recursing forever.
type Cache struct {
	interner *Interner
	entries  map[SymbolKeyT]*DeclaredType
}

// SymbolKeyT identifies the declaration a cached DeclaredType belongs to.
// internal/binder supplies this - typically a symbols.SymbolID, boxed
// here as an opaque comparable value so this package doesn't need to
// import internal/symbols just to key a map.
type SymbolKeyT interface{}

// NewCache allocates an empty resolution cache backed by interner.
func NewCache(interner *Interner) *Cache {
	return &Cache{interner: interner, entries: make(map[SymbolKeyT]*DeclaredType)}
}

// Entry returns key's DeclaredType, creating one in state NotStarted from
// syntax/init if this is the first time key has been seen.
func (c *Cache) Entry(key SymbolKeyT, syn syntax.DataTypeID, init syntax.ExprID) *DeclaredType {
	if dt, ok := c.entries[key]; ok {
		return dt
	}
	dt := &DeclaredType{TypeSyntax: syn, InitializerSyntax: init}
	c.entries[key] = dt
	return dt
}

// Resolve returns key's resolved TypeID, computing it via resolve on
// first use and caching the result. A re-entrant call while key is
// InProgress reports RecursiveResolution at span and returns the error
// type instead of calling resolve again.
func (c *Cache) Resolve(reporter diag.Reporter, key SymbolKeyT, syn syntax.DataTypeID, init syntax.ExprID, span source.Span, resolve func() TypeID) TypeID {
	dt := c.Entry(key, syn, init)
	switch dt.State {
	case Resolved:
		return dt.Result
	case InProgress:
		diag.ReportError(reporter, diag.RecursiveResolution, span, "type declaration refers to itself").Emit()
		dt.State = Resolved
		dt.Result = c.interner.builtins.Error
		return dt.Result
	default:
		dt.State = InProgress
		result := resolve()
		dt.State = Resolved
		dt.Result = result
		return result
	}
}
