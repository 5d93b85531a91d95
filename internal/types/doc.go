// Package types implements SystemVerilog's data-type system: an
// arena-backed Interner that structurally deduplicates anonymous types
// (scalar vectors, integer atoms, floating point) while giving every
// nominal declaration (struct, union, enum, typedef alias) its own
// distinct TypeID, plus canonicalization and a tri-state resolution
// cache for cyclic-declaration detection.
//
// Resolve maps internal/syntax's DataType nodes to TypeIDs, consulting
// internal/symbols for named-type lookups and a caller-supplied
// ConstIntEval for packed-dimension widths and explicit enum values;
// internal/binder and internal/compilation own actually constructing a
// real constant evaluator (internal/eval) and threading it through.
package types
