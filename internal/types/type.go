package types

// Type is a compact descriptor for one SystemVerilog type. Only the
// fields relevant to Kind are meaningful; aggregate/alias metadata too
// large to inline (struct fields, enum members, an alias's target) lives
// out of band in the interner's info slices, indexed by Payload.
type Type struct {
	Kind Kind

	Width     int  // bit width, for KindScalar/KindIntegerAtom/KindPackedArray/KindPackedStruct/KindPackedUnion
	Signed    bool
	FourState bool // false for a two-state type (bit, byte, shortint, int, longint)

	Elem  TypeID // element type, for KindPackedArray/KindUnpackedArray/KindNet
	Count int    // element count, for KindUnpackedArray

	Payload uint32 // index into the interner's structs/unions/enums/aliases slice
}

// typeKey is the structural hash key anonymous (non-nominal) types intern
// under: two scalar/array/net descriptors with identical fields collapse
// to one TypeID, the structural-equivalence rule for unnamed types.
// Nominal kinds (enum, struct, union, alias) always get a fresh Payload
// slot and so never collide here.
type typeKey struct {
	Kind      Kind
	Width     int
	Signed    bool
	FourState bool
	Elem      TypeID
	Count     int
	Payload   uint32
}

func keyOf(t Type) typeKey {
	return typeKey{
		Kind: t.Kind, Width: t.Width, Signed: t.Signed, FourState: t.FourState,
		Elem: t.Elem, Count: t.Count, Payload: t.Payload,
	}
}
