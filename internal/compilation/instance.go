package compilation

import (
	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/eval"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
)

// Instance is one concrete realization of a Definition at a hierarchy
// position: a leaf of Elaborate's output tree, or one of Elaborate's own
// top-level results (Parent == nil).
type Instance struct {
	Name       string
	Symbol     symbols.SymbolID // the instance-name symbol this leaf realizes; NoSymbolID for a synthetic top
	Definition symbols.SymbolID
	Scope      symbols.ScopeID // this instance's own parameter binding scope
	ArrayPath  []int           // per-dimension index vector; nil for a scalar instance
	Parent     *Instance
	Children   []*Instance
}

// Depth counts Parent hops back to a top-level instance (depth 0).
func (i *Instance) Depth() int {
	d := 0
	for p := i.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Elaborate builds one top-level Instance per requested definition name,
// recursively walking each instance's own body until it bottoms out or
// Config.MaxInstanceDepth is hit. A top-level instance sees only its
// declared parameter defaults and has no port connections, matching how
// a design's actual top modules are simulated (LRM 23.3).
func (c *Compilation) Elaborate(topNames ...string) []*Instance {
	var tops []*Instance
	for _, name := range topNames {
		defSymID := c.Definition(name)
		defSym := c.Table.Symbols.Get(defSymID)
		if defSym == nil || defSym.Kind != symbols.SymbolDefinition {
			diag.ReportError(c.Reporter, diag.UnknownModule, source.Span{},
				"unknown top-level module or interface '"+name+"'").Emit()
			continue
		}
		tops = append(tops, c.instantiateTop(defSymID, defSym))
	}
	return tops
}

func (c *Compilation) instantiateTop(defSymID symbols.SymbolID, defSym *symbols.Symbol) *Instance {
	paramScope := c.buildParamScope(defSym, nil, defSym.Span)
	top := &Instance{
		Name:       defSym.Name,
		Symbol:     symbols.NoSymbolID,
		Definition: defSymID,
		Scope:      paramScope,
	}
	top.Children = c.elaborateBody(defSym, top, 0)
	return top
}

// instGroup is every instance-name symbol declared by one
// hierarchy_instantiation item (syntax.Inst), in declaration order - the
// grouping instance elaboration needs since all of an Inst's names (and
// every array element within a name) share one evaluated parameter
// vector.
type instGroup struct {
	instID  syntax.InstID
	symbols []symbols.SymbolID
}

// instancesInScope elaborates scope and returns the SymbolModuleInstance
// / SymbolInterfaceInstance / SymbolProgramInstance / SymbolInstanceArray
// symbols declared directly in it, grouped by their originating Inst in
// first-declared order.
func (c *Compilation) instancesInScope(scope symbols.ScopeID) []instGroup {
	c.Table.ElaboratePending(c.Reporter, c.Builder, scope)
	sc := c.Table.Scopes.Get(scope)
	if sc == nil {
		return nil
	}
	var order []syntax.InstID
	byInst := make(map[syntax.InstID][]symbols.SymbolID)
	for _, symID := range sc.Symbols {
		sym := c.Table.Symbols.Get(symID)
		if sym == nil {
			continue
		}
		switch sym.Kind {
		case symbols.SymbolModuleInstance, symbols.SymbolInterfaceInstance,
			symbols.SymbolProgramInstance, symbols.SymbolInstanceArray:
			if _, seen := byInst[sym.Decl.Inst]; !seen {
				order = append(order, sym.Decl.Inst)
			}
			byInst[sym.Decl.Inst] = append(byInst[sym.Decl.Inst], symID)
		}
	}
	groups := make([]instGroup, len(order))
	for i, id := range order {
		groups[i] = instGroup{instID: id, symbols: byInst[id]}
	}
	return groups
}

// elaborateBody realizes every hierarchy_instantiation declared in
// defSym's own body scope, one level below parent.
func (c *Compilation) elaborateBody(defSym *symbols.Symbol, parent *Instance, parentDepth int) []*Instance {
	bodyScope := defSym.OwnScope
	if !bodyScope.IsValid() {
		return nil
	}
	childDepth := parentDepth + 1
	var out []*Instance
	for _, g := range c.instancesInScope(bodyScope) {
		out = append(out, c.elaborateInstGroup(g.instID, g.symbols, bodyScope, parent, childDepth)...)
	}
	return out
}

// elaborateInstGroup implements the six-step algorithm for one
// hierarchy_instantiation: resolve its Definition, validate and apply its
// parameter assignment list once, then expand each instance name's array
// dimensions into concrete leaves, enforcing the nesting-depth limit and
// running the implicit-net pass over each name's port connections.
func (c *Compilation) elaborateInstGroup(instID syntax.InstID, instanceSymbols []symbols.SymbolID, enclosingScope symbols.ScopeID, parent *Instance, depth int) []*Instance {
	inst := c.Builder.Insts.Get(instID)
	if inst == nil {
		return nil
	}

	defSymID := c.Table.LookupInScope(c.Reporter, c.Builder, c.Table.Root, inst.DefName)
	defSym := c.Table.Symbols.Get(defSymID)
	if defSym == nil || defSym.Kind != symbols.SymbolDefinition {
		diag.ReportError(c.Reporter, diag.UnknownModule, inst.Span,
			"unknown module or interface '"+inst.DefName+"'").Emit()
		return nil
	}

	if depth > c.Config.maxInstanceDepth()+1 {
		diag.ReportError(c.Reporter, diag.MaxInstanceDepthExceeded, inst.Span,
			"instantiating '"+inst.DefName+"' exceeds the maximum instance nesting depth").Emit()
		return nil
	}

	overrides := c.buildOverrideMap(defSym, inst)
	paramScope := c.buildParamScope(defSym, overrides, inst.Span)

	var results []*Instance
	for _, symID := range instanceSymbols {
		sym := c.Table.Symbols.Get(symID)
		if sym == nil {
			continue
		}
		sym.OwnScope = paramScope
		instance := c.Builder.Instances.Get(sym.Decl.Instance)
		if instance == nil {
			continue
		}
		c.resolvePortConnections(enclosingScope, instance.Connections)

		leaves := c.expandDims(instance, symID, defSymID, paramScope, enclosingScope, nil, 0)
		for _, leaf := range leaves {
			leaf.Parent = parent
			if parent != nil {
				parent.Children = append(parent.Children, leaf)
			}
			leaf.Children = c.elaborateBody(defSym, leaf, depth)
		}
		results = append(results, leaves...)
	}
	return results
}

// expandDims recurses through instance's unpacked dimension list,
// producing one leaf Instance per index-vector combination (LRM 23.4's
// instance array). A scalar instance (no dimensions) yields exactly one
// leaf with a nil ArrayPath.
func (c *Compilation) expandDims(instance *syntax.Instance, symID, defSymID symbols.SymbolID, paramScope, enclosingScope symbols.ScopeID, path []int, dimIdx int) []*Instance {
	if dimIdx >= len(instance.Dims) {
		return []*Instance{{
			Name:       instance.Name,
			Symbol:     symID,
			Definition: defSymID,
			Scope:      paramScope,
			ArrayPath:  append([]int(nil), path...),
		}}
	}
	r := c.Builder.DataTypes.Ranges.Get(instance.Dims[dimIdx])
	lo, hi, ok := c.rangeBounds(enclosingScope, r)
	if !ok {
		return nil
	}
	step := 1
	if lo > hi {
		step = -1
	}
	var out []*Instance
	for idx := lo; ; idx += step {
		next := make([]int, len(path)+1)
		copy(next, path)
		next[len(path)] = idx
		out = append(out, c.expandDims(instance, symID, defSymID, paramScope, enclosingScope, next, dimIdx+1)...)
		if idx == hi {
			break
		}
	}
	return out
}

// rangeBounds folds an instance array dimension's two bounds to
// concrete integers in scope, using the instantiating module's own
// constants - an array dimension is a property of the instantiation
// site, not the definition being instantiated.
func (c *Compilation) rangeBounds(scope symbols.ScopeID, r *syntax.Range) (int, int, bool) {
	if r == nil {
		return 0, 0, false
	}
	var lo, hi int64
	ok := true
	c.withEval(scope, func() {
		ctx := binder.Context{Scope: scope, Flags: binder.Constant}
		av, aok := c.Eval.EvalExpr(c.Reporter, ctx, r.MSB)
		bv, bok := c.Eval.EvalExpr(c.Reporter, ctx, r.LSB)
		if !aok || av.Kind != eval.KindInt || !bok || bv.Kind != eval.KindInt {
			ok = false
			return
		}
		lo, _ = av.Int.Int64()
		hi, _ = bv.Int.Int64()
	})
	return int(lo), int(hi), ok
}
