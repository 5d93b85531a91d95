package types

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
)

// AliasInfo stores a type alias's target and, if the name was ever
// forward-declared (`typedef name;` ahead of its full definition), the
// head of that forwarding chain in internal/symbols.
type AliasInfo struct {
	Name        string
	Target      TypeID
	ForwardHead symbols.SymbolID
	Span        source.Span
}

// RegisterAlias allocates a fresh TypeAlias type. Each typedef gets its
// own nominal TypeID even when its target is identical to another
// alias's, since aliases are only equivalent to their own canonical form
// (Canonical), never structurally unified with each other.
func (in *Interner) RegisterAlias(info AliasInfo) TypeID {
	slot := in.appendAliasInfo(info)
	return in.internRaw(Type{Kind: KindAlias, Payload: slot})
}

// AliasInfo returns metadata for an alias TypeID.
func (in *Interner) AliasInfo(id TypeID) (*AliasInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindAlias {
		return nil, false
	}
	if t.Payload == 0 || int(t.Payload) >= len(in.aliases) {
		return nil, false
	}
	return &in.aliases[t.Payload], true
}

func (in *Interner) appendAliasInfo(info AliasInfo) uint32 {
	in.aliases = append(in.aliases, info)
	slot, err := safecast.Conv[uint32](len(in.aliases) - 1)
	if err != nil {
		panic(fmt.Errorf("types: alias info overflow: %w", err))
	}
	return slot
}
