package compilation

import (
	"github.com/mohamed/svlang/internal/binder"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
)

// paramOverride is one accepted `#(...)` assignment, already resolved to
// the header parameter name it targets regardless of whether the
// instantiation spelled it ordered or named.
type paramOverride struct {
	value syntax.ExprID
	typ   syntax.DataTypeID
	span  source.Span
}

// buildOverrideMap validates inst's parameter assignment list against
// defSym's header parameter port list and returns the accepted overrides
// keyed by parameter name. Diagnoses mixed ordered/named forms, duplicate
// named assignments, and too many ordered assignments; it does not yet
// know whether a name exists in the header (buildParamScope reports
// ParameterDoesNotExist/AssignedToLocalBodyParam once it has the header
// list in hand).
func (c *Compilation) buildOverrideMap(defSym *symbols.Symbol, inst *syntax.Inst) map[string]paramOverride {
	overrides := make(map[string]paramOverride, len(inst.ParamAssigns))
	var ordered []syntax.ParamAssignID
	named, orderedSeen := false, false

	for _, paID := range inst.ParamAssigns {
		pa := c.Builder.ParamAssigns.Get(paID)
		if pa == nil {
			continue
		}
		if pa.Name == "" {
			orderedSeen = true
			ordered = append(ordered, paID)
			continue
		}
		named = true
		if _, dup := overrides[pa.Name]; dup {
			diag.ReportError(c.Reporter, diag.DuplicateParamAssignment, pa.Span,
				"duplicate parameter assignment for '"+pa.Name+"'").Emit()
			continue
		}
		overrides[pa.Name] = paramOverride{value: pa.Value, typ: pa.Type, span: pa.Span}
	}

	if named && orderedSeen {
		diag.ReportError(c.Reporter, diag.MixingOrderedAndNamedParams, inst.Span,
			"cannot mix ordered and named parameter assignments").Emit()
		return overrides
	}

	if orderedSeen {
		u := c.Builder.Units.Get(defSym.Decl.Unit)
		for i, paID := range ordered {
			pa := c.Builder.ParamAssigns.Get(paID)
			if u == nil || i >= len(u.Params) {
				diag.ReportError(c.Reporter, diag.TooManyParamAssignments, pa.Span,
					"too many parameter assignments for '"+inst.DefName+"'").Emit()
				continue
			}
			target := c.Builder.Params.Get(u.Params[i])
			overrides[target.Name] = paramOverride{value: pa.Value, typ: pa.Type, span: pa.Span}
		}
	}
	return overrides
}

// buildParamScope constructs the temporary ScopeInstance that binds one
// instantiation's parameter vector: parented under the definition's own
// enclosing scope, populated with a fresh Param per header entry (cloned
// with the override's Default/DefaultTyp substituted in when one
// applies), with every value parameter's initializer evaluated
// immediately so a later reference to it never redoes the fold.
//
// This scope isn't spliced into the definition's body scope, so a
// variable or port declared in the body that references a header
// parameter still sees that parameter's original, unoverridden default -
// a deliberate simplification recorded in the design notes rather than a
// full per-instance body clone.
func (c *Compilation) buildParamScope(defSym *symbols.Symbol, overrides map[string]paramOverride, span source.Span) symbols.ScopeID {
	paramScope := c.Table.NewInstanceScope(defSym.Scope, defSym.Decl.Unit, span)
	u := c.Builder.Units.Get(defSym.Decl.Unit)
	if u == nil {
		return paramScope
	}

	seen := make(map[string]bool, len(overrides))
	for _, paramID := range u.Params {
		p := c.Builder.Params.Get(paramID)
		if p == nil {
			continue
		}
		targetID := paramID
		if ov, ok := overrides[p.Name]; ok {
			seen[p.Name] = true
			if p.IsLocal {
				diag.ReportError(c.Reporter, diag.AssignedToLocalPortParam, ov.span,
					"cannot assign to localparam port parameter '"+p.Name+"'").Emit()
			} else {
				np := *p
				np.Span = ov.span
				if p.IsType {
					np.DefaultTyp = ov.typ
				} else {
					np.Default = ov.value
				}
				targetID = c.Builder.Params.New(np)
			}
		}

		symID := c.Table.DeclareParam(c.Reporter, c.Builder, paramScope, targetID)
		if tp := c.Builder.Params.Get(targetID); tp != nil && !tp.IsType {
			c.evalParamMember(paramScope, symID, tp.Name, span)
		}
	}

	for name, ov := range overrides {
		if !seen[name] {
			c.diagnoseUnknownOverride(defSym, name, ov.span)
		}
	}
	return paramScope
}

// evalParamMember eagerly folds a just-declared parameter's value
// through a synthetic self-reference, so the constant is memoized under
// its own SymbolID (catching a self-referential override with
// RecursiveResolution) rather than only on first outside use.
func (c *Compilation) evalParamMember(scope symbols.ScopeID, symID symbols.SymbolID, name string, span source.Span) {
	_ = symID
	identID := c.Builder.Exprs.New(syntax.Expr{Kind: syntax.ExprIdent, Name: name, Span: span})
	c.withEval(scope, func() {
		ctx := binder.Context{Scope: scope, Flags: binder.Constant}
		c.Eval.EvalExpr(c.Reporter, ctx, identID)
	})
}

// diagnoseUnknownOverride reports why a named `#(...)` assignment didn't
// match any header parameter: ParameterDoesNotExist if name isn't
// declared anywhere in the definition, AssignedToLocalBodyParam if it
// names a localparam declared in the body instead of the header.
func (c *Compilation) diagnoseUnknownOverride(defSym *symbols.Symbol, name string, span source.Span) {
	if defSym.OwnScope.IsValid() {
		symID := c.Table.LookupInScope(c.Reporter, c.Builder, defSym.OwnScope, name)
		if sym := c.Table.Symbols.Get(symID); sym != nil &&
			(sym.Kind == symbols.SymbolParameter || sym.Kind == symbols.SymbolTypeParameter) {
			diag.ReportError(c.Reporter, diag.AssignedToLocalBodyParam, span,
				"cannot assign to '"+name+"', a parameter declared in the module body").Emit()
			return
		}
	}
	diag.ReportError(c.Reporter, diag.ParameterDoesNotExist, span,
		"'"+defSym.Name+"' has no parameter named '"+name+"'").Emit()
}
