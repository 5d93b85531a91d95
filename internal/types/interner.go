package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins holds TypeIDs for SV's predefined scalar/integer/floating/
// string/event/chandle/void types, interned once per Interner.
type Builtins struct {
	Bit, Logic, Reg                                     TypeID
	Byte, ShortInt, Int, LongInt, Integer, Time          TypeID
	ShortReal, Real, RealTime                            TypeID
	String, Event, CHandle, Void                         TypeID
	Error                                                TypeID
}

// Interner assigns stable TypeIDs to structural descriptors and stores
// out-of-band metadata (struct fields, enum members, alias targets) for
// the nominal kinds.
type Interner struct {
	types []Type
	index map[typeKey]TypeID

	builtins Builtins

	structs []StructInfo
	unions  []StructInfo // packed/unpacked unions share the field-list shape
	enums   []EnumInfo
	aliases []AliasInfo
}

// NewInterner allocates an Interner seeded with SV's predefined types.
func NewInterner() *Interner {
	in := &Interner{index: make(map[typeKey]TypeID, 64), types: make([]Type, 1, 64)} // slot 0 reserved for NoTypeID
	in.structs = append(in.structs, StructInfo{})
	in.unions = append(in.unions, StructInfo{})
	in.enums = append(in.enums, EnumInfo{})
	in.aliases = append(in.aliases, AliasInfo{})

	in.builtins.Error = in.internRaw(Type{Kind: KindError})
	in.builtins.Bit = in.Intern(Type{Kind: KindScalar, Width: 1, FourState: false})
	in.builtins.Logic = in.Intern(Type{Kind: KindScalar, Width: 1, FourState: true})
	in.builtins.Reg = in.Intern(Type{Kind: KindScalar, Width: 1, FourState: true})
	in.builtins.Byte = in.Intern(Type{Kind: KindIntegerAtom, Width: 8, Signed: true})
	in.builtins.ShortInt = in.Intern(Type{Kind: KindIntegerAtom, Width: 16, Signed: true})
	in.builtins.Int = in.Intern(Type{Kind: KindIntegerAtom, Width: 32, Signed: true})
	in.builtins.LongInt = in.Intern(Type{Kind: KindIntegerAtom, Width: 64, Signed: true})
	in.builtins.Integer = in.Intern(Type{Kind: KindIntegerAtom, Width: 32, Signed: true, FourState: true})
	in.builtins.Time = in.Intern(Type{Kind: KindIntegerAtom, Width: 64, FourState: true})
	in.builtins.ShortReal = in.Intern(Type{Kind: KindFloating, Width: 32})
	in.builtins.Real = in.Intern(Type{Kind: KindFloating, Width: 64})
	in.builtins.RealTime = in.Intern(Type{Kind: KindFloating, Width: 64})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Event = in.Intern(Type{Kind: KindEvent})
	in.builtins.CHandle = in.Intern(Type{Kind: KindCHandle})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	return in
}

// Builtins returns the predefined-type TypeIDs.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern returns t's stable TypeID, reusing an existing one for a
// structurally identical descriptor. Only anonymous (non-nominal) kinds
// should be interned this way; RegisterStruct/RegisterUnion/RegisterEnum/
// RegisterAlias always allocate a fresh nominal TypeID instead.
func (in *Interner) Intern(t Type) TypeID {
	key := keyOf(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	id := in.internRaw(t)
	in.index[key] = id
	return id
}

func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: type arena overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	return id
}

// Lookup returns the descriptor for id.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics on an invalid TypeID; used where the caller has
// already established id came from this interner.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}
