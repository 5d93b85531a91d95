package symbols

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/syntax"
)

// LookupHierarchical resolves a dotted hierarchical name
// (`top.sub_inst.signal`) by looking up path[0] lexically from scope (or,
// when fromRoot is set, from the compilation-unit scope, for a `$root.`
// prefixed name per LRM 23.8), then descending through each subsequent
// segment's OwnScope - the ScopeDefinition body of whatever Definition
// the previous segment's instance was bound to.
//
// Binding an instance symbol's OwnScope to its Definition's body scope
// happens during instance elaboration (internal/compilation), not here;
// until that's run, a path with more than one segment simply won't
// resolve past the first, which is the correct answer before elaboration
// has established what a given instance is an instance of.
func (t *Table) LookupHierarchical(reporter diag.Reporter, b *syntax.Builder, scope ScopeID, path []string, fromRoot bool) SymbolID {
	if len(path) == 0 {
		return NoSymbolID
	}
	start := scope
	if fromRoot {
		start = t.Root
	}
	cur := t.LookupLexical(reporter, b, start, NoLookupBound, path[0])
	for _, seg := range path[1:] {
		if !cur.IsValid() {
			return NoSymbolID
		}
		sym := t.Symbols.Get(cur)
		if sym == nil || !sym.OwnScope.IsValid() {
			diag.ReportError(reporter, diag.UnknownMember, sym.Span, "'"+seg+"' has no member scope to search").Emit()
			return NoSymbolID
		}
		cur = t.LookupInScope(reporter, b, sym.OwnScope, seg)
	}
	return cur
}

// LookupInScope elaborates scope and returns name's symbol if declared
// directly in it, without walking to a parent - the primitive
// LookupHierarchical's per-segment descent and member access both need.
func (t *Table) LookupInScope(reporter diag.Reporter, b *syntax.Builder, scope ScopeID, name string) SymbolID {
	t.ElaboratePending(reporter, b, scope)
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	if sym, ok := sc.NameIndex[name]; ok {
		return sym
	}
	return NoSymbolID
}
