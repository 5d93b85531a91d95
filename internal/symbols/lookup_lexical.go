package symbols

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
)

// NoLookupBound disables LookupLexical's same-scope position restriction,
// for callers where LRM 23.9's textually-preceding rule doesn't apply:
// hierarchical name segments (each already resolved through a distinct
// OwnScope), type names (which support forward declaration, LRM 6.18),
// and existence checks that aren't binding a use to a declaration.
const NoLookupBound = ^uint32(0)

// LookupLexical searches scope and its ancestors, in order, for name -
// LRM 23.9's "unqualified name" resolution. Each visited scope is
// elaborated on demand before its NameIndex is consulted, and each
// scope's wildcard-import candidate set is searched before moving up to
// its parent, per LRM 26.3.
//
// pos bounds visibility within scope itself (not its ancestors): a name
// declared later in the same scope than pos is not yet in view, matching
// LRM 23.9's "a reference resolves only to declarations textually
// preceding it in its own scope". Enclosing scopes are always fully
// visible regardless of pos, since their declarations are complete
// before any nested scope's contents are reached. Pass NoLookupBound to
// disable the restriction entirely.
func (t *Table) LookupLexical(reporter diag.Reporter, b *syntax.Builder, scope ScopeID, pos uint32, name string) SymbolID {
	own := true
	for id := scope; id.IsValid(); {
		t.ElaboratePending(reporter, b, id)
		sc := t.Scopes.Get(id)
		if sc == nil {
			return NoSymbolID
		}
		if sym, ok := sc.NameIndex[name]; ok {
			if !own || pos == NoLookupBound {
				return sym
			}
			if declSym := t.Symbols.Get(sym); declSym != nil && declSym.Span.Start <= pos {
				return sym
			}
			// name exists in this scope but is declared later in source
			// than pos: not visible to this reference, but an outer
			// scope's declaration of the same name still might be.
		}
		if sym := t.lookupWildcardImports(reporter, b, sc, name); sym.IsValid() {
			return sym
		}
		id = sc.Parent
		own = false
	}
	return NoSymbolID
}
