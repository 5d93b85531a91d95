package syntax

import (
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

// DataTypeKind classifies a data-type syntax node.
type DataTypeKind uint8

const (
	DataTypeScalar     DataTypeKind = iota // logic/reg/bit/wire and friends
	DataTypeIntegerAtom                     // byte/shortint/int/longint/integer/time
	DataTypeFloating                        // shortreal/real/realtime
	DataTypeString
	DataTypeCHandle
	DataTypeEvent
	DataTypeVoid
	DataTypeEnum
	DataTypeStruct
	DataTypeUnion
	DataTypeNamed  // a typedef/class/interface name reference, resolved later
	DataTypeVirtual
	DataTypeImplicit // no explicit type keyword; inferred by context
)

// Range is one `[msb:lsb]` (or `[msb-:width]`/`[msb+:width]`) dimension.
type Range struct {
	MSB, LSB ExprID
	Indexed  bool // true for `+:`/`-:` indexed part-select style dimensions
	PlusForm bool
	Span     source.Span
}

type Ranges struct{ Arena *Arena[Range] }

func NewRanges(capHint uint) *Ranges { return &Ranges{Arena: NewArena[Range](capHint)} }
func (r *Ranges) New(rg Range) RangeID { return RangeID(r.Arena.Allocate(rg)) }
func (r *Ranges) Get(id RangeID) *Range { return r.Arena.Get(uint32(id)) }

// Member is one struct/union field or enum value.
type Member struct {
	Name     string
	DataType DataTypeID // struct/union field type; zero for an enum member
	Init     ExprID     // enum member's explicit value, zero if implicit
	Span     source.Span
}

type Members struct{ Arena *Arena[Member] }

func NewMembers(capHint uint) *Members { return &Members{Arena: NewArena[Member](capHint)} }
func (m *Members) New(mem Member) MemberID { return MemberID(m.Arena.Allocate(mem)) }
func (m *Members) Get(id MemberID) *Member { return m.Arena.Get(uint32(id)) }

// DataType is a data-type syntax node: LRM 6.3's data_type production
// generalized into one struct with kind-specific fields.
type DataType struct {
	Kind DataTypeKind

	// DataTypeScalar / DataTypeIntegerAtom / DataTypeFloating
	BaseKind token.Kind // e.g. LogicKeyword, IntKeyword, RealKeyword
	Signed   bool
	Explicit bool // false when Kind==DataTypeImplicit picked this as a default

	PackedDims   []RangeID
	UnpackedDims []RangeID

	// DataTypeEnum
	EnumBase EnumBaseKind
	Members  []MemberID

	// DataTypeStruct / DataTypeUnion
	Packed      bool
	TaggedUnion bool
	Fields      []MemberID

	// DataTypeNamed
	Name string

	Span source.Span
}

// EnumBaseKind is the enum's underlying integral base type, if named.
type EnumBaseKind uint8

const (
	EnumBaseImplicitInt EnumBaseKind = iota // default: int
	EnumBaseExplicit                        // BaseKind field on DataType holds the actual base
)

type DataTypes struct {
	Arena   *Arena[DataType]
	Ranges  *Ranges
	Members *Members
}

func NewDataTypes(capHint uint) *DataTypes {
	return &DataTypes{
		Arena:   NewArena[DataType](capHint),
		Ranges:  NewRanges(capHint),
		Members: NewMembers(capHint / 2),
	}
}

func (d *DataTypes) New(dt DataType) DataTypeID { return DataTypeID(d.Arena.Allocate(dt)) }
func (d *DataTypes) Get(id DataTypeID) *DataType { return d.Arena.Get(uint32(id)) }
