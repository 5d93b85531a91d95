// Package binder turns internal/syntax expression nodes into a small
// typed Expression tree, resolving names through internal/symbols,
// computing each node's result type through internal/types, and
// inserting explicit Conversion nodes wherever an operand's type
// differs from its context's determined type.
//
// The dispatch shape is one recursive Bind entry point, memoized per
// expression, with a per-node-kind case. The conversion and widening
// rules follow SystemVerilog's own semantics (LRM 11.8's
// context-determined expression rules).
package binder
