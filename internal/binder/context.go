package binder

import (
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/symbols"
)

// Flags narrows how an expression is allowed to bind in a given
// context (LRM 11.2.1's constant-expression rules and 23.9's name
// resolution restrictions).
type Flags uint8

const (
	// Constant requires every operand to fold to a compile-time value;
	// a reference to a non-constant symbol reports NotConstant.
	Constant Flags = 1 << iota
	// NoHierarchicalNames rejects a dotted a.b.c reference outright,
	// matching contexts (parameter defaults, generate conditions) where
	// LRM forbids hierarchical names.
	NoHierarchicalNames
	// AssignmentAllowed permits an ExprAssignment node to bind as an
	// expression rather than only appearing as a statement.
	AssignmentAllowed
	// ProceduralStatement marks binding happening inside an always/
	// initial body, where blocking/nonblocking assignment operators and
	// system tasks like $display are legal.
	ProceduralStatement
)

// Has reports whether f is set in c's Flags.
func (c Context) Has(f Flags) bool { return c.Flags&f != 0 }

// lookupPos returns the source position LookupLexical should bound
// same-scope visibility against. An empty LookupLocation means no real
// span is known for the reference (a synthesized expression node in a
// test, say), so lookups fall back to unrestricted visibility rather
// than spuriously rejecting every name as "declared too late".
func (c Context) lookupPos() uint32 {
	if c.LookupLocation.Empty() {
		return symbols.NoLookupBound
	}
	return c.LookupLocation.Start
}

// Context carries the scope an expression binds against, the source
// location driving hierarchical/lexical lookups, and the Flags that
// gate what kind of expression is legal here.
type Context struct {
	Scope          symbols.ScopeID
	LookupLocation source.Span
	Flags          Flags
}

// WithFlags returns a copy of c with f added, used when recursing into
// a sub-expression that narrows the enclosing context (e.g. a
// constant-context parent still binds its operands in Constant).
func (c Context) WithFlags(f Flags) Context {
	c.Flags |= f
	return c
}
