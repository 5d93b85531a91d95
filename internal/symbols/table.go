package symbols

import (
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
)

// Hints sizes the initial capacity of the scope and symbol arenas.
type Hints struct{ Scopes, Symbols uint32 }

// Table aggregates a compilation's scope and symbol arenas plus the root
// compilation-unit scope every design unit's Definition symbol is
// declared into.
type Table struct {
	Scopes *Scopes
	Symbols *Symbols
	Root   ScopeID
}

// NewTable allocates an empty Table with a fresh root compilation-unit
// scope (LRM 3.13's $unit).
func NewTable(h Hints) *Table {
	t := &Table{
		Scopes:  NewScopes(h.Scopes),
		Symbols: NewSymbols(h.Symbols),
	}
	t.Root = t.Scopes.New(newScope(ScopeCompilationUnit, NoScopeID, syntax.NoUnitID, source.Span{}))
	return t
}
