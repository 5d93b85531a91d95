package types

import (
	"fmt"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
	"github.com/mohamed/svlang/internal/syntax"
	"github.com/mohamed/svlang/internal/token"
)

// ConstIntEval evaluates a syntax expression to a concrete integer,
// returning ok=false if it isn't a compile-time constant this evaluator
// can fold. internal/compilation wires internal/eval's full 4-state
// evaluator in here once elaboration is running; LiteralConstEval below
// is a minimal literal-only fallback used by tests and by resolution
// that only ever needs to fold an integer literal packed dimension.
type ConstIntEval func(exprID syntax.ExprID) (int64, bool)

// LiteralConstEval returns a ConstIntEval that only folds bare integer
// literal expressions, reading the four-state value internal/lexer
// already parsed onto the token. It has no notion of named parameters or
// arithmetic - just enough to resolve the overwhelmingly common
// `[7:0]`-style literal packed dimension without depending on
// internal/eval.
func LiteralConstEval(b *syntax.Builder) ConstIntEval {
	return func(exprID syntax.ExprID) (int64, bool) {
		if !exprID.IsValid() {
			return 0, false
		}
		e := b.Exprs.Get(exprID)
		if e == nil || e.Kind != syntax.ExprLiteral || e.Token == nil || e.Token.Numeric == nil {
			return 0, false
		}
		return e.Token.Numeric.Int.Int64()
	}
}

// Resolve maps a syntax.DataType to a TypeID, looking up named types
// (typedefs) through table starting at scope and folding packed-
// dimension/enum-value constant expressions through eval. cache
// memoizes one TypeID per SymbolTypeAlias so repeated uses of the same
// typedef share a TypeID and a self-referential typedef is caught as
// RecursiveResolution rather than looping.
func (in *Interner) Resolve(reporter diag.Reporter, cache *Cache, table *symbols.Table, b *syntax.Builder, scope symbols.ScopeID, dtID syntax.DataTypeID, eval ConstIntEval) TypeID {
	if !dtID.IsValid() {
		return in.builtins.Logic
	}
	d := b.DataTypes.Get(dtID)
	switch d.Kind {
	case syntax.DataTypeImplicit:
		return in.builtins.Logic
	case syntax.DataTypeString:
		return in.builtins.String
	case syntax.DataTypeCHandle:
		return in.builtins.CHandle
	case syntax.DataTypeEvent:
		return in.builtins.Event
	case syntax.DataTypeVoid:
		return in.builtins.Void
	case syntax.DataTypeScalar:
		return in.resolveScalar(b, d, eval)
	case syntax.DataTypeIntegerAtom:
		return in.resolveIntegerAtom(b, d, eval)
	case syntax.DataTypeFloating:
		return in.resolveFloating(d)
	case syntax.DataTypeEnum:
		return in.resolveEnum(reporter, cache, table, b, scope, d, eval)
	case syntax.DataTypeStruct:
		return in.resolveAggregate(reporter, cache, table, b, scope, d, false, eval)
	case syntax.DataTypeUnion:
		return in.resolveAggregate(reporter, cache, table, b, scope, d, true, eval)
	case syntax.DataTypeNamed:
		return in.resolveNamed(reporter, cache, table, b, scope, d, eval)
	case syntax.DataTypeVirtual:
		// A virtual interface handle's members belong to the interface
		// definition it names, which internal/compilation resolves once
		// instance elaboration is wired up; treated as an opaque handle
		// here since no consumer needs member access yet.
		return in.builtins.CHandle
	default:
		return in.builtins.Error
	}
}

// scalarBaseKeywords identifies which BaseKind values name a
// DataTypeScalar kind rather than a DataTypeIntegerAtom kind - needed
// because an enum's explicit base type stores its BaseKind/Signed
// directly on the enum's own DataType (internal/parser's parseEnumType)
// rather than nesting a separate base DataType.
var scalarBaseKeywords = map[token.Kind]bool{
	token.LogicKeyword: true, token.RegKeyword: true, token.BitKeyword: true,
}

func (in *Interner) resolveScalar(b *syntax.Builder, d *syntax.DataType, eval ConstIntEval) TypeID {
	fourState := d.BaseKind != token.BitKeyword
	width := 1
	if w, ok := resolvePackedWidth(b, d.PackedDims, eval); ok {
		width = w
	}
	return in.Intern(Type{Kind: KindScalar, Width: width, Signed: d.Signed, FourState: fourState})
}

var integerAtomWidths = map[token.Kind]struct {
	width     int
	signed    bool
	fourState bool
}{
	token.ByteKeyword:     {8, true, false},
	token.ShortIntKeyword: {16, true, false},
	token.IntKeyword:      {32, true, false},
	token.LongIntKeyword:  {64, true, false},
	token.IntegerKeyword:  {32, true, true},
	token.TimeKeyword:     {64, false, true},
}

func (in *Interner) resolveIntegerAtom(b *syntax.Builder, d *syntax.DataType, eval ConstIntEval) TypeID {
	info, ok := integerAtomWidths[d.BaseKind]
	if !ok {
		info = integerAtomWidths[token.IntKeyword]
	}
	signed := info.signed
	if d.Explicit {
		signed = d.Signed
	}
	width := info.width
	if dims, ok := resolvePackedWidth(b, d.PackedDims, eval); ok {
		width *= dims
	}
	return in.Intern(Type{Kind: KindIntegerAtom, Width: width, Signed: signed, FourState: info.fourState})
}

func (in *Interner) resolveFloating(d *syntax.DataType) TypeID {
	switch d.BaseKind {
	case token.ShortRealKeyword:
		return in.builtins.ShortReal
	case token.RealTimeKeyword:
		return in.builtins.RealTime
	default:
		return in.builtins.Real
	}
}

// resolvePackedWidth folds a list of packed dimensions into a single
// flattened bit-width multiplier (LRM 7.4.1: a multi-dimensional packed
// declaration is just a wider vector, not a nested array). ok is false
// if any dimension bound didn't fold, in which case the caller keeps its
// own default width rather than fail resolution outright.
func resolvePackedWidth(b *syntax.Builder, dims []syntax.RangeID, eval ConstIntEval) (int, bool) {
	if len(dims) == 0 {
		return 1, true
	}
	width := 1
	for _, rid := range dims {
		size, ok := resolveRangeSize(b, rid, eval)
		if !ok {
			return 1, false
		}
		width *= size
	}
	return width, true
}

// resolveRangeSize folds one `[msb:lsb]` or `[base +: width]`/`[base -: width]`
// dimension to its element count.
func resolveRangeSize(b *syntax.Builder, rid syntax.RangeID, eval ConstIntEval) (int, bool) {
	r := b.DataTypes.Ranges.Get(rid)
	if r == nil || eval == nil {
		return 0, false
	}
	if r.Indexed {
		width, ok := eval(r.LSB)
		if !ok || width <= 0 {
			return 0, false
		}
		return int(width), true
	}
	msb, ok := eval(r.MSB)
	if !ok {
		return 0, false
	}
	lsb, ok := eval(r.LSB)
	if !ok {
		return 0, false
	}
	diff := msb - lsb
	if diff < 0 {
		diff = -diff
	}
	return int(diff) + 1, true
}

// resolveEnum resolves an anonymous enum data type: its base integral
// type (defaulting to int per LRM 6.19) and its ordered member values,
// each explicit member folded through eval and each implicit member one
// greater than its predecessor (starting at 0).
func (in *Interner) resolveEnum(reporter diag.Reporter, cache *Cache, table *symbols.Table, b *syntax.Builder, scope symbols.ScopeID, d *syntax.DataType, eval ConstIntEval) TypeID {
	base := in.builtins.Int
	if d.EnumBase == syntax.EnumBaseExplicit {
		baseSyntax := *d
		baseSyntax.Members = nil
		if scalarBaseKeywords[d.BaseKind] {
			baseSyntax.Kind = syntax.DataTypeScalar
			base = in.resolveScalar(b, &baseSyntax, eval)
		} else {
			baseSyntax.Kind = syntax.DataTypeIntegerAtom
			base = in.resolveIntegerAtom(b, &baseSyntax, eval)
		}
	}
	members := make([]EnumValue, 0, len(d.Members))
	seen := make(map[int64]source.Span, len(d.Members))
	next := int64(0)
	for _, memberID := range d.Members {
		m := b.DataTypes.Members.Get(memberID)
		val := next
		if m.Init.IsValid() {
			if v, ok := eval(m.Init); ok {
				val = v
			}
		}
		if prev, dup := seen[val]; dup {
			diag.ReportError(reporter, diag.DuplicateEnumValue, m.Span,
				fmt.Sprintf("enumeration value %d is already in use", val)).
				WithNote(prev, "previous use is here").
				Emit()
		} else {
			seen[val] = m.Span
		}
		members = append(members, EnumValue{Name: m.Name, Value: val, Span: m.Span})
		next = val + 1
	}
	return in.RegisterEnum(EnumInfo{Base: base, Members: members, Span: d.Span})
}

// resolveAggregate resolves a struct or union data type, recursively
// resolving each field's own data type and summing packed field widths
// when the aggregate itself is packed.
func (in *Interner) resolveAggregate(reporter diag.Reporter, cache *Cache, table *symbols.Table, b *syntax.Builder, scope symbols.ScopeID, d *syntax.DataType, isUnion bool, eval ConstIntEval) TypeID {
	fields := make([]Field, 0, len(d.Fields))
	width := 0
	signed := false
	for _, memberID := range d.Fields {
		m := b.DataTypes.Members.Get(memberID)
		fieldType := in.Resolve(reporter, cache, table, b, scope, m.DataType, eval)
		fields = append(fields, Field{Name: m.Name, Type: fieldType, Span: m.Span})
		if ft, ok := in.Lookup(fieldType); ok {
			if isUnion {
				if ft.Width > width {
					width = ft.Width
				}
			} else {
				width += ft.Width
			}
		}
	}
	info := StructInfo{Fields: fields, Span: d.Span}
	if isUnion {
		return in.RegisterUnion(d.Packed, info, width, signed)
	}
	return in.RegisterStruct(d.Packed, info, width, signed)
}

// resolveNamed looks name up lexically and resolves the SymbolTypeAlias
// it must name to a TypeID, caching the result per symbol so every
// reference to the same typedef shares one nominal TypeID rather than
// minting a fresh alias each time it's mentioned.
func (in *Interner) resolveNamed(reporter diag.Reporter, cache *Cache, table *symbols.Table, b *syntax.Builder, scope symbols.ScopeID, d *syntax.DataType, eval ConstIntEval) TypeID {
	symID := table.LookupLexical(reporter, b, scope, symbols.NoLookupBound, d.Name)
	if !symID.IsValid() {
		diag.ReportError(reporter, diag.UnknownTypeName, d.Span, "unknown type '"+d.Name+"'").Emit()
		return in.builtins.Error
	}
	sym := table.Symbols.Get(symID)
	if sym == nil {
		return in.builtins.Error
	}
	switch sym.Kind {
	case symbols.SymbolTypeAlias:
		decl := b.Decls.Get(sym.Decl.Typedef)
		return cache.Resolve(reporter, symID, decl.DataType, syntax.NoExprID, sym.Span, func() TypeID {
			target := in.Resolve(reporter, cache, table, b, sym.Scope, decl.DataType, eval)
			return in.RegisterAlias(AliasInfo{
				Name:        sym.Name,
				Target:      target,
				ForwardHead: table.ForwardHead(sym.Scope, sym.Name),
				Span:        sym.Span,
			})
		})
	case symbols.SymbolForwardingTypedef:
		diag.ReportError(reporter, diag.IncompleteForwardType, d.Span, "'"+d.Name+"' was only forward-declared, never fully defined").Emit()
		return in.builtins.Error
	default:
		diag.ReportError(reporter, diag.UnknownTypeName, d.Span, "'"+d.Name+"' does not name a type").Emit()
		return in.builtins.Error
	}
}
