// Package eval folds constant expressions to concrete values: LRM's
// four-state integer arithmetic (via internal/fourstate), real
// arithmetic in float64, and string values, walking already-bound
// internal/binder Expression trees rather than raw syntax.
//
// Evaluation dispatches by expression kind, keeps a per-symbol
// visiting/done state map to catch a parameter or enum member that
// refers to itself through a chain of other constants, and memoizes one
// result per bound expression node. The four-state propagation,
// divide-by-zero, and real/integer conversion rounding rules are
// specific to this domain's constant arithmetic.
package eval
