package compilation

import (
	"sort"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
)

// collectSimpleIdents walks exprID's tree collecting every bare
// identifier reference. A bare identifier is the only expression shape
// LRM 23.3.2.1 allows an implicit net to come from - a hierarchical or
// member-select expression never introduces one, so those subtrees are
// not descended into.
func (c *Compilation) collectSimpleIdents(exprID syntax.ExprID, out map[string]source.Span) {
	if !exprID.IsValid() {
		return
	}
	ex := c.Builder.Exprs.Get(exprID)
	if ex == nil {
		return
	}
	switch ex.Kind {
	case syntax.ExprIdent:
		if _, ok := out[ex.Name]; !ok {
			out[ex.Name] = ex.Span
		}
		return
	case syntax.ExprHierarchical, syntax.ExprMember:
		return
	}
	c.collectSimpleIdents(ex.Lhs, out)
	c.collectSimpleIdents(ex.Rhs, out)
	c.collectSimpleIdents(ex.Cond, out)
	c.collectSimpleIdents(ex.Then, out)
	c.collectSimpleIdents(ex.Else, out)
	c.collectSimpleIdents(ex.Count, out)
	c.collectSimpleIdents(ex.Body, out)
	c.collectSimpleIdents(ex.Array, out)
	c.collectSimpleIdents(ex.MSB, out)
	c.collectSimpleIdents(ex.LSB, out)
	for _, elem := range ex.Elems {
		c.collectSimpleIdents(elem, out)
	}
}

// resolvePortConnections runs the implicit-net pass over one instance's
// port-connection list: every simple identifier that doesn't already
// resolve lexically in enclosingScope either becomes a fresh Net symbol
// there, declared with Net kind NetImplicit whatever the configured
// default nettype names, or - when the default nettype has been set to
// `none` (`` `default_nettype none ``) - is reported UsedBeforeDeclared
// instead of silently declared.
func (c *Compilation) resolvePortConnections(enclosingScope symbols.ScopeID, connIDs []syntax.ConnID) {
	idents := make(map[string]source.Span)
	for _, connID := range connIDs {
		conn := c.Builder.Conns.Get(connID)
		if conn == nil || conn.Name == "*" {
			continue
		}
		c.collectSimpleIdents(conn.Expr, idents)
	}
	if len(idents) == 0 {
		return
	}

	names := make([]string, 0, len(idents))
	for name := range idents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		span := idents[name]
		if c.Table.LookupLexical(c.Reporter, c.Builder, enclosingScope, symbols.NoLookupBound, name).IsValid() {
			continue
		}
		if c.Config.implicitNetsDisabled() {
			diag.ReportError(c.Reporter, diag.UsedBeforeDeclared, span,
				"'"+name+"' is used before its declaration and no default net type is in effect").Emit()
			continue
		}
		declID := c.Builder.Decls.New(syntax.Decl{
			Kind:     syntax.DeclNet,
			Names:    []string{name},
			NameSpan: []source.Span{span},
			Net:      syntax.NetImplicit,
			Span:     span,
		})
		c.Table.DeclareNet(c.Reporter, enclosingScope, name, declID, span)
	}
}
