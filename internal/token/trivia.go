package token

import "github.com/mohamed/svlang/internal/source"

// TriviaKind classifies a span of source text carried alongside a token
// rather than being a token itself. Trivia keeps the syntax tree lossless:
// the concatenation of every token's text and its leading trivia's text,
// in order, reproduces the original file byte for byte.
type TriviaKind uint8

const (
	Whitespace TriviaKind = iota
	EndOfLine
	LineComment
	BlockComment
	// SkippedToken wraps a token the parser discarded during panic-mode
	// recovery; its Text is the discarded token's original text.
	SkippedToken
	// DirectiveTrivia wraps preprocessor directive text that survives into
	// trivia (e.g. a directive inside a disabled `ifdef branch, or one
	// pass-through directive form the parser leaves for a later pass).
	DirectiveTrivia
	// DisabledText wraps source text skipped by a false `ifdef/`ifndef
	// branch; it is not scanned for tokens or nested directives besides
	// the conditional-directive family itself.
	DisabledText
)

// Trivia is one contiguous run of non-significant (or deferred) text
// attached to the following token's Leading list.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
