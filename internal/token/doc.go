// Package token defines lexical token kinds, trivia, and the reserved-word
// table for the SystemVerilog front end.
//
// Invariants:
//   - Token.Text is always a verbatim slice of the source; ValueText holds
//     a decoded form only where the two differ (escaped identifiers,
//     string literal contents, macro-usage names).
//   - Concatenating every token's Leading trivia text followed by its own
//     Text, in stream order, reproduces the input file exactly.
//   - Synthetic tokens inserted by parser error recovery have an empty
//     Span and Text; Token.Missing reports them.
//   - Keyword recognition is case-sensitive; SystemVerilog keywords are
//     always lowercase, so mixed-case spellings lex as plain identifiers.
package token
