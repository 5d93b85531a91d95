package preprocessor

import "github.com/mohamed/svlang/internal/token"

// MacroParam is one formal argument of a function-like macro: a name and
// an optional default token list used when a call site leaves that
// argument empty.
type MacroParam struct {
	Name    string
	Default []token.Token
}

// MacroDef is a `define'd macro: its formal parameter list (nil for an
// object-like macro) and its unexpanded replacement token list.
type MacroDef struct {
	Name         string
	FunctionLike bool
	Params       []MacroParam
	Body         []token.Token
}

// macroTable holds every currently-`define'd macro, keyed by name.
type macroTable struct {
	byName map[string]*MacroDef
}

func newMacroTable() *macroTable {
	return &macroTable{byName: make(map[string]*MacroDef)}
}

func (t *macroTable) define(m *MacroDef)        { t.byName[m.Name] = m }
func (t *macroTable) undef(name string)         { delete(t.byName, name) }
func (t *macroTable) undefAll()                 { t.byName = make(map[string]*MacroDef) }
func (t *macroTable) lookup(name string) (*MacroDef, bool) {
	m, ok := t.byName[name]
	return m, ok
}
