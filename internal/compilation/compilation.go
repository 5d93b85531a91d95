package compilation

import (
	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/eval"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/types"
)

// Compilation aggregates every arena a design's elaboration needs. Every
// syntax.File fed into it (via AddSyntaxTree) writes into the same
// *syntax.Builder, so one Compilation is the unit a driver builds once
// per design, never once per source file - the shared symbol table is
// what lets a module defined in one file instantiate a module defined in
// another.
type Compilation struct {
	Config   Config
	Reporter diag.Reporter

	Builder  *syntax.Builder
	Table    *symbols.Table
	Interner *types.Interner
	Decls    *types.Cache
	Binder   *binder.Binder
	Eval     *eval.Evaluator

	definitions []symbols.SymbolID
	byName      map[string]symbols.SymbolID
}

// New allocates a Compilation over an already-parsed b, wiring a fresh
// symbol table, type interner, declared-type cache, binder, and constant
// evaluator around it. reporter receives every diagnostic elaboration
// produces; pass a diag.BagReporter to collect them.
func New(reporter diag.Reporter, b *syntax.Builder, cfg Config) *Compilation {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	table := symbols.NewTable(symbols.Hints{})
	interner := types.NewInterner()
	decls := types.NewCache(interner)
	bd := binder.New(interner, table, decls, b, types.LiteralConstEval(b))
	ev := eval.New(interner, table, b, bd)
	// Root-scoped until the first Bind call that needs a narrower one;
	// symbolType only consults bd.Eval while resolving a packed
	// dimension or enum value, and Elaborate reassigns this per scope
	// before triggering resolution there (single-threaded, so there's
	// never a concurrent reader of the old scope).
	bd.Eval = ev.ConstIntEval(reporter, table.Root)
	return &Compilation{
		Config:   cfg,
		Reporter: reporter,
		Builder:  b,
		Table:    table,
		Interner: interner,
		Decls:    decls,
		Binder:   bd,
		Eval:     ev,
		byName:   make(map[string]symbols.SymbolID),
	}
}

// AddSyntaxTree declares every module/interface/program/package unit in
// file as a root Definition, making each a candidate for lookup by name
// from any instantiation and for Definitions/TopInstances.
func (c *Compilation) AddSyntaxTree(file syntax.FileID) {
	f := c.Builder.Files.Get(file)
	if f == nil {
		return
	}
	for _, unitID := range f.Units {
		u := c.Builder.Units.Get(unitID)
		symID, _ := c.Table.DeclareDefinition(c.Reporter, c.Builder, unitID)
		c.definitions = append(c.definitions, symID)
		if u != nil {
			c.byName[u.Name] = symID
		}
	}
}

// Definitions returns every root Definition symbol declared so far, in
// declaration order.
func (c *Compilation) Definitions() []symbols.SymbolID {
	out := make([]symbols.SymbolID, len(c.definitions))
	copy(out, c.definitions)
	return out
}

// Definition looks up a root module/interface/program/package by name,
// returning symbols.NoSymbolID if none was declared.
func (c *Compilation) Definition(name string) symbols.SymbolID {
	return c.byName[name]
}

// withEval reassigns the binder's constant-folding closure to scope for
// the duration of fn, restoring the previous closure afterward. Every
// elaboration step that binds or evaluates an expression in a scope
// other than the one bd.Eval was last set to must go through this, since
// Binder.Eval carries no scope parameter of its own.
func (c *Compilation) withEval(scope symbols.ScopeID, fn func()) {
	prev := c.Binder.Eval
	c.Binder.Eval = c.Eval.ConstIntEval(c.Reporter, scope)
	defer func() { c.Binder.Eval = prev }()
	fn()
}
