package types

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/mohamed/svlang/internal/source"
)

// Field is one member of a struct or union type.
type Field struct {
	Name string
	Type TypeID
	Span source.Span
}

// StructInfo stores field metadata for a struct or union type - the two
// share this shape since a union's members are only distinguished from a
// struct's by KindPackedUnion/KindUnpackedUnion on the owning Type.
type StructInfo struct {
	Fields []Field
	Span   source.Span
}

// EnumValue is one named, valued member of an enum type.
type EnumValue struct {
	Name  string
	Value int64
	Span  source.Span
}

// EnumInfo stores the base type and member list for an enum type.
type EnumInfo struct {
	Base    TypeID
	Members []EnumValue
	Span    source.Span
}

// RegisterStruct allocates a fresh packed or unpacked struct type; each
// call gets a new nominal TypeID even if the field list is identical to
// an existing struct's, since two separately declared structs with the
// same shape are still distinct types (canonicalization only unifies a
// type with its own aliases, never two nominal declarations with
// matching structure).
func (in *Interner) RegisterStruct(packed bool, info StructInfo, width int, signed bool) TypeID {
	slot := in.appendStructInfo(info)
	kind := KindUnpackedStruct
	if packed {
		kind = KindPackedStruct
	}
	return in.internRaw(Type{Kind: kind, Payload: slot, Width: width, Signed: signed, FourState: true})
}

// RegisterUnion allocates a fresh packed or unpacked union type.
func (in *Interner) RegisterUnion(packed bool, info StructInfo, width int, signed bool) TypeID {
	slot := in.appendUnionInfo(info)
	kind := KindUnpackedUnion
	if packed {
		kind = KindPackedUnion
	}
	return in.internRaw(Type{Kind: kind, Payload: slot, Width: width, Signed: signed, FourState: true})
}

// RegisterEnum allocates a fresh enum type over base.
func (in *Interner) RegisterEnum(info EnumInfo) TypeID {
	slot := in.appendEnumInfo(info)
	base := in.MustLookup(info.Base)
	return in.internRaw(Type{Kind: KindEnum, Payload: slot, Width: base.Width, Signed: base.Signed, FourState: base.FourState})
}

// StructInfo returns field metadata for a struct/union TypeID.
func (in *Interner) StructInfo(id TypeID) (*StructInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || (t.Kind != KindPackedStruct && t.Kind != KindUnpackedStruct) {
		return nil, false
	}
	if t.Payload == 0 || int(t.Payload) >= len(in.structs) {
		return nil, false
	}
	return &in.structs[t.Payload], true
}

// UnionInfo returns field metadata for a union TypeID.
func (in *Interner) UnionInfo(id TypeID) (*StructInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || (t.Kind != KindPackedUnion && t.Kind != KindUnpackedUnion) {
		return nil, false
	}
	if t.Payload == 0 || int(t.Payload) >= len(in.unions) {
		return nil, false
	}
	return &in.unions[t.Payload], true
}

// EnumInfo returns base type and member metadata for an enum TypeID.
func (in *Interner) EnumInfo(id TypeID) (*EnumInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindEnum {
		return nil, false
	}
	if t.Payload == 0 || int(t.Payload) >= len(in.enums) {
		return nil, false
	}
	return &in.enums[t.Payload], true
}

func (in *Interner) appendStructInfo(info StructInfo) uint32 {
	in.structs = append(in.structs, info)
	slot, err := safecast.Conv[uint32](len(in.structs) - 1)
	if err != nil {
		panic(fmt.Errorf("types: struct info overflow: %w", err))
	}
	return slot
}

func (in *Interner) appendUnionInfo(info StructInfo) uint32 {
	in.unions = append(in.unions, info)
	slot, err := safecast.Conv[uint32](len(in.unions) - 1)
	if err != nil {
		panic(fmt.Errorf("types: union info overflow: %w", err))
	}
	return slot
}

func (in *Interner) appendEnumInfo(info EnumInfo) uint32 {
	in.enums = append(in.enums, info)
	slot, err := safecast.Conv[uint32](len(in.enums) - 1)
	if err != nil {
		panic(fmt.Errorf("types: enum info overflow: %w", err))
	}
	return slot
}
