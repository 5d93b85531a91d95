package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

// Scopes stores every allocated Scope in a compact, 1-based arena; index
// 0 is reserved for NoScopeID.
type Scopes struct {
	data []Scope
}

func NewScopes(capHint uint32) *Scopes {
	if capHint == 0 {
		capHint = 32
	}
	return &Scopes{data: make([]Scope, 1, capHint+1)}
}

func (s *Scopes) New(scope Scope) ScopeID {
	id, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("symbols: scope arena overflow: %w", err))
	}
	s.data = append(s.data, scope)
	if scope.Parent.IsValid() {
		if parent := s.Get(scope.Parent); parent != nil {
			parent.Children = append(parent.Children, ScopeID(id))
		}
	}
	return ScopeID(id)
}

func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

func (s *Scopes) Len() int { return len(s.data) - 1 }

// Symbols stores every allocated Symbol in a compact, 1-based arena.
type Symbols struct {
	data []Symbol
}

func NewSymbols(capHint uint32) *Symbols {
	if capHint == 0 {
		capHint = 64
	}
	return &Symbols{data: make([]Symbol, 1, capHint+1)}
}

func (s *Symbols) New(sym Symbol) SymbolID {
	id, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("symbols: symbol arena overflow: %w", err))
	}
	s.data = append(s.data, sym)
	return SymbolID(id)
}

func (s *Symbols) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

func (s *Symbols) Len() int { return len(s.data) - 1 }
