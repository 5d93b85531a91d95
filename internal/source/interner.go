package source

import "slices"

// StringID is an interned string handle, stable for the lifetime of the
// Interner. Symbol names, macro names, and identifier value text are all
// interned so that equality checks are O(1) pointer/id comparisons rather
// than string comparisons.
type StringID uint32

// NoStringID marks the absence of an interned string.
const NoStringID StringID = 0

// Interner deduplicates strings into stable IDs.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner returns an Interner with NoStringID already mapped to "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the ID for s, allocating a new one if s has not been seen.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	cpy := string([]byte(s)) // detach from caller's backing array
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes is Intern for a byte slice; it converts b with string(b)
// before interning.
func (in *Interner) InternBytes(b []byte) StringID {
	return in.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) if id is not valid.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup panics if id is invalid.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}

// Has reports whether id was issued by this Interner.
func (in *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(in.byID)
}

// Len returns the number of distinct strings interned, including NoStringID.
func (in *Interner) Len() int { return len(in.byID) }

// Snapshot returns a defensive copy of every interned string, indexed by ID.
func (in *Interner) Snapshot() []string { return slices.Clone(in.byID) }
