// Package symbols builds the symbol/scope graph over a parsed
// internal/syntax tree: one Definition symbol per module/interface/
// program/package, one Scope per Definition body, and lazily-elaborated
// member symbols for the variables, nets, instances, parameters, enum
// values, and typedefs a body declares.
//
// A Table aggregates Scopes/Symbols arenas behind an on-demand walk into
// a resolver, with resolve_imports.go tracking each scope's wildcard
// import candidate set. Type resolution itself belongs to internal/types
// and internal/binder - this package only exposes the declaring syntax a
// symbol names, keeping it free of any dependency on the type system.
package symbols
