package types

// Canonical unwraps a chain of KindAlias types down to the non-alias type
// they ultimately name. A self-referential or unresolved alias chain
// (Target == NoTypeID) canonicalizes to the error type rather than
// looping forever.
func (in *Interner) Canonical(id TypeID) TypeID {
	seen := make(map[TypeID]bool)
	for {
		t, ok := in.Lookup(id)
		if !ok {
			return in.builtins.Error
		}
		if t.Kind != KindAlias {
			return id
		}
		if seen[id] {
			return in.builtins.Error
		}
		seen[id] = true
		info, ok := in.AliasInfo(id)
		if !ok || info.Target == NoTypeID {
			return in.builtins.Error
		}
		id = info.Target
	}
}

// Equivalent reports whether a and b name the same type once aliases are
// unwrapped: structural kinds compare equal by TypeID already (the
// interner unifies them at Intern time), so this reduces to comparing
// canonical IDs directly.
func (in *Interner) Equivalent(a, b TypeID) bool {
	return in.Canonical(a) == in.Canonical(b)
}
