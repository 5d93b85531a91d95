package symbols

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
)

// AddWildcardImport records that scope treats target's members as
// candidates for its own lookups (an `import pkg::*;`). The caller is
// responsible for resolving the package name to target's Definition
// scope before calling this - this table only tracks the resulting
// candidate-set edge and searches it at lookup time.
func (t *Table) AddWildcardImport(scope, target ScopeID) {
	if sc := t.Scopes.Get(scope); sc != nil {
		sc.WildcardImports = append(sc.WildcardImports, target)
	}
}

// lookupWildcardImports searches every scope sc wildcard-imports from for
// name, reporting AmbiguousWildcardImport if more than one import
// provides a distinct symbol under the same name (LRM 26.3): unlike a
// same-scope redeclaration, only an actual *use* of the ambiguous name
// is an error, so this check happens at lookup time rather than at
// import-declaration time.
func (t *Table) lookupWildcardImports(reporter diag.Reporter, b *syntax.Builder, sc *Scope, name string) SymbolID {
	var found SymbolID
	var foundSpan source.Span
	for _, target := range sc.WildcardImports {
		t.ElaboratePending(reporter, b, target)
		targetScope := t.Scopes.Get(target)
		if targetScope == nil {
			continue
		}
		sym, ok := targetScope.NameIndex[name]
		if !ok {
			continue
		}
		if !found.IsValid() {
			found, foundSpan = sym, t.Symbols.Get(sym).Span
			continue
		}
		if sym != found {
			diag.ReportError(reporter, diag.AmbiguousWildcardImport, t.Symbols.Get(sym).Span,
				"'"+name+"' is visible through more than one wildcard import").
				WithNote(foundSpan, "also visible from this import").
				Emit()
		}
	}
	return found
}
