package symbols

import "github.com/mohamed/svlang/internal/syntax"

// LookupMember searches a struct/union/enum data type's member list for
// name, the structural half of `x.member` resolution: given the static
// data type of x's declaration, find which member (if any) name names.
// It intentionally works directly on syntax.DataType rather than a
// resolved internal/types.Type, since the member list itself is fixed at
// parse time and doesn't depend on type canonicalization - only the
// resulting member's own type does, which is internal/binder's concern
// once it has both a types.Type and a MemberID in hand.
func LookupMember(b *syntax.Builder, dt syntax.DataTypeID, name string) (syntax.MemberID, bool) {
	if !dt.IsValid() {
		return syntax.NoMemberID, false
	}
	d := b.DataTypes.Get(dt)
	switch d.Kind {
	case syntax.DataTypeEnum:
		return findMember(b, d.Members, name)
	case syntax.DataTypeStruct, syntax.DataTypeUnion:
		return findMember(b, d.Fields, name)
	default:
		return syntax.NoMemberID, false
	}
}

func findMember(b *syntax.Builder, members []syntax.MemberID, name string) (syntax.MemberID, bool) {
	for _, id := range members {
		if b.DataTypes.Members.Get(id).Name == name {
			return id, true
		}
	}
	return syntax.NoMemberID, false
}
