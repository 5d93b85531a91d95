// Package preprocessor sits between internal/lexer and internal/parser.
// It handles `include resolution, `define/`undef macro tables
// (object-like and function-like, with stringize and token-paste), and
// `ifdef/`ifndef/`elsif/`else/`endif conditional compilation.
//
// It uses a stacked-lexer-plus-pushback shape: internal/lexer's own
// one-token lookahead buffer generalizes here into a pushback queue used
// both for single-token lookahead and for re-scanning a macro's expanded
// body.
//
// Two simplifications versus a full LRM preprocessor, both deliberate:
// a `define body never continues past its physical line (no
// backslash-newline continuation), and runaway self-referential macro
// expansion is bounded by a total expansion counter rather than
// per-token "blue paint" tracking.
package preprocessor
