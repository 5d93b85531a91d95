package symbols

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
)

// declare registers sym under name in scope, reporting DuplicateSymbol
// (and keeping the first declaration) on a collision. It returns the
// allocated SymbolID either way so callers that need to attach an OwnScope
// afterward always have one.
func (t *Table) declare(reporter diag.Reporter, scope ScopeID, name string, sym Symbol) SymbolID {
	sc := t.Scopes.Get(scope)
	sym.Scope = scope
	id := t.Symbols.New(sym)
	if sc == nil || name == "" {
		return id
	}
	if prev, ok := sc.NameIndex[name]; ok {
		if prevSym := t.Symbols.Get(prev); prevSym != nil {
			diag.ReportError(reporter, diag.DuplicateSymbol, sym.Span, "redeclaration of '"+name+"'").
				WithNote(prevSym.Span, "previous declaration is here").
				Emit()
		}
		return id
	}
	sc.NameIndex[name] = id
	sc.Symbols = append(sc.Symbols, id)
	return id
}

// DeclareDefinition registers a module/interface/program/package's
// Definition symbol in the compilation-unit scope and returns the new
// ScopeDefinition scope that owns its header ports/parameters (declared
// immediately, since a header is always fully parsed up front) and body
// items (queued as pendingItems for lazy elaboration).
func (t *Table) DeclareDefinition(reporter diag.Reporter, b *syntax.Builder, unitID syntax.UnitID) (SymbolID, ScopeID) {
	u := b.Units.Get(unitID)
	symID := t.declare(reporter, t.Root, u.Name, Symbol{
		Name: u.Name, Kind: SymbolDefinition, Span: u.Span, Decl: Decl{Unit: unitID},
	})

	bodyScope := t.Scopes.New(newScope(ScopeDefinition, t.Root, unitID, u.Span))
	bodyScope = t.attachOwnScope(symID, bodyScope)

	for _, portID := range u.Ports {
		port := b.Ports.Get(portID)
		t.declare(reporter, bodyScope, port.Name, Symbol{
			Name: port.Name, Kind: SymbolPort, Span: port.Span, Decl: Decl{Port: portID},
		})
	}
	for _, paramID := range u.Params {
		t.declareParam(reporter, b, bodyScope, paramID)
	}

	sc := t.Scopes.Get(bodyScope)
	sc.pendingItems = append(sc.pendingItems, u.Items...)
	return symID, bodyScope
}

func (t *Table) attachOwnScope(sym SymbolID, scope ScopeID) ScopeID {
	if s := t.Symbols.Get(sym); s != nil {
		s.OwnScope = scope
	}
	return scope
}

// DeclareParam registers a parameter/type-parameter symbol for paramID in
// scope. Exposed for internal/compilation, which synthesizes override
// Param nodes in a per-instantiation scope outside the normal
// DeclareDefinition/ElaboratePending header pass.
func (t *Table) DeclareParam(reporter diag.Reporter, b *syntax.Builder, scope ScopeID, paramID syntax.ParamID) SymbolID {
	return t.declareParam(reporter, b, scope, paramID)
}

// DeclareNet registers a Net symbol for an implicitly-created wire in
// scope. Exposed for internal/compilation's port-connection implicit-net
// pass (LRM 23.3.2.1), which declares nets outside the normal
// declareFromDecl body-item pass since the identifier never had its own
// net_declaration.
func (t *Table) DeclareNet(reporter diag.Reporter, scope ScopeID, name string, declID syntax.DeclID, span source.Span) SymbolID {
	return t.declare(reporter, scope, name, Symbol{
		Name: name, Kind: SymbolNet, Span: span, Decl: Decl{VarDecl: declID, VarIndex: 0},
	})
}

func (t *Table) declareParam(reporter diag.Reporter, b *syntax.Builder, scope ScopeID, paramID syntax.ParamID) SymbolID {
	p := b.Params.Get(paramID)
	kind := SymbolParameter
	if p.IsType {
		kind = SymbolTypeParameter
	}
	return t.declare(reporter, scope, p.Name, Symbol{
		Name: p.Name, Kind: kind, Span: p.Span, Decl: Decl{Param: paramID},
	})
}

// ElaboratePending realizes scope's queued body items into symbols the
// first time anything looks inside it: scopes elaborate lazily, so a
// Definition's port/parameter list is always
// known eagerly (its header is fully parsed before the body is), but
// variables, nets, instances, and typedefs declared in the body aren't
// turned into Symbols until Lookup or ForceElaborate demands it.
func (t *Table) ElaboratePending(reporter diag.Reporter, b *syntax.Builder, scope ScopeID) {
	sc := t.Scopes.Get(scope)
	if sc == nil || sc.elaborated {
		return
	}
	sc.elaborated = true
	items := sc.pendingItems
	sc.pendingItems = nil

	forwardByName := make(map[string]SymbolID)

	for _, itemID := range items {
		item := b.Items.Get(itemID)
		switch item.Kind {
		case syntax.ItemDecl:
			t.declareFromDecl(reporter, b, scope, item.Decl, forwardByName)
		case syntax.ItemParamDecl:
			for _, paramID := range item.Params {
				t.declareParam(reporter, b, scope, paramID)
			}
		case syntax.ItemInstantiation:
			t.declareInstances(reporter, b, scope, item.Inst)
		case syntax.ItemProceduralBlock:
			// Statement-level scopes (begin/end blocks, for-loop genvars)
			// aren't elaborated into the symbol table at this level; the
			// binder walks a procedural block's statements directly
			// against its enclosing Definition scope.
		}
	}
}

func (t *Table) declareFromDecl(reporter diag.Reporter, b *syntax.Builder, scope ScopeID, declID syntax.DeclID, forwardByName map[string]SymbolID) {
	decl := b.Decls.Get(declID)
	switch decl.Kind {
	case syntax.DeclVariable, syntax.DeclNet:
		kind := SymbolVariable
		if decl.Kind == syntax.DeclNet {
			kind = SymbolNet
		}
		for i, name := range decl.Names {
			span := decl.Span
			if i < len(decl.NameSpan) {
				span = decl.NameSpan[i]
			}
			t.declare(reporter, scope, name, Symbol{
				Name: name, Kind: kind, Span: span, Decl: Decl{VarDecl: declID, VarIndex: i},
			})
		}
		t.declareEnumMembers(reporter, b, scope, decl.DataType)
	case syntax.DeclGenvar:
		for i, name := range decl.Names {
			span := decl.Span
			if i < len(decl.NameSpan) {
				span = decl.NameSpan[i]
			}
			t.declare(reporter, scope, name, Symbol{
				Name: name, Kind: SymbolGenvar, Span: span, Decl: Decl{VarDecl: declID, VarIndex: i},
			})
		}
	case syntax.DeclTypedefForward:
		id := t.declare(reporter, scope, decl.TypedefName, Symbol{
			Name: decl.TypedefName, Kind: SymbolForwardingTypedef, Span: decl.Span, Decl: Decl{Typedef: declID},
		})
		if prev, ok := forwardByName[decl.TypedefName]; ok {
			if prevSym := t.Symbols.Get(prev); prevSym != nil {
				prevSym.Next = id
			}
		} else if sc := t.Scopes.Get(scope); sc != nil {
			if sc.forwardHeads == nil {
				sc.forwardHeads = make(map[string]SymbolID)
			}
			sc.forwardHeads[decl.TypedefName] = id
		}
		forwardByName[decl.TypedefName] = id
	case syntax.DeclTypedef:
		id := t.declare(reporter, scope, decl.TypedefName, Symbol{
			Name: decl.TypedefName, Kind: SymbolTypeAlias, Span: decl.Span, Decl: Decl{Typedef: declID},
		})
		if prev, ok := forwardByName[decl.TypedefName]; ok {
			if prevSym := t.Symbols.Get(prev); prevSym != nil {
				prevSym.Next = id
			}
			delete(forwardByName, decl.TypedefName)
		}
		t.declareEnumMembers(reporter, b, scope, decl.DataType)
	case syntax.DeclContinuousAssign:
		// introduces no symbol
	}
}

// declareEnumMembers walks an enum data type's member list and declares
// each value name in scope (LRM 6.19: enum values are visible in the
// scope enclosing the enum declaration, not nested under the type).
func (t *Table) declareEnumMembers(reporter diag.Reporter, b *syntax.Builder, scope ScopeID, dtID syntax.DataTypeID) {
	if !dtID.IsValid() {
		return
	}
	dt := b.DataTypes.Get(dtID)
	if dt.Kind != syntax.DataTypeEnum {
		return
	}
	for _, memberID := range dt.Members {
		m := b.DataTypes.Members.Get(memberID)
		t.declare(reporter, scope, m.Name, Symbol{
			Name: m.Name, Kind: SymbolEnumValue, Span: m.Span,
			Decl: Decl{Member: memberID, EnumType: dtID},
		})
	}
}

func (t *Table) declareInstances(reporter diag.Reporter, b *syntax.Builder, scope ScopeID, instID syntax.InstID) {
	inst := b.Insts.Get(instID)
	for _, instanceID := range inst.Instances {
		instance := b.Instances.Get(instanceID)
		kind := SymbolModuleInstance
		if len(instance.Dims) > 0 {
			kind = SymbolInstanceArray
		}
		t.declare(reporter, scope, instance.Name, Symbol{
			Name: instance.Name, Kind: kind, Span: instance.Span,
			Decl: Decl{Inst: instID, Instance: instanceID},
		})
	}
}

// ForwardHead returns the first SymbolForwardingTypedef declared for name
// in scope, or NoSymbolID if name was never forward-declared there.
// internal/types uses this to give a TypeAlias a pointer to the forward
// declaration chain it terminates. Callers must have already elaborated
// scope (any prior Lookup call does this); an unelaborated scope simply
// reports no forward declarations.
func (t *Table) ForwardHead(scope ScopeID, name string) SymbolID {
	sc := t.Scopes.Get(scope)
	if sc == nil || sc.forwardHeads == nil {
		return NoSymbolID
	}
	return sc.forwardHeads[name]
}

// ForceElaborate elaborates scope and every scope nested inside it,
// useful for diagnostics passes (unused-symbol checks) that need the
// full symbol set rather than only what a particular lookup touched.
func (t *Table) ForceElaborate(reporter diag.Reporter, b *syntax.Builder, scope ScopeID) {
	t.ElaboratePending(reporter, b, scope)
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return
	}
	for _, child := range sc.Children {
		t.ForceElaborate(reporter, b, child)
	}
}
