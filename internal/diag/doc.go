// Package diag defines the diagnostic model shared by every pipeline stage:
// the lexer, preprocessor, parser, symbol lookup, elaboration, and the
// constant evaluator all report through the same Diagnostic/Reporter/Bag
// types.
//
// Diagnostic is the central record: a Severity, a stable Code, a message,
// a primary source.Span, and optional Notes and Fixes. Producers should
// use a Reporter (BagReporter in the common case) rather than touching a
// Bag directly, so that stages stay decoupled from where diagnostics end
// up stored.
//
// Codes are grouped into numeric ranges by stage (see codes.go); Code.Stage
// recovers the range a code belongs to without a stage argument threaded
// through every call site.
//
// Diagnostics are appended in the order the underlying work was first
// triggered, not necessarily source order -- Bag.Sort exists purely for
// deterministic presentation and must never be relied on inside the core
// pipeline.
package diag
