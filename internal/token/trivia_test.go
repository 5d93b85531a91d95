package token_test

import (
	"testing"

	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

func TestTriviaRoundTripsText(t *testing.T) {
	tr := token.Trivia{
		Kind: token.LineComment,
		Span: source.Span{Start: 0, End: 12},
		Text: "// hi there",
	}
	if tr.Text != "// hi there" {
		t.Fatalf("unexpected trivia text %q", tr.Text)
	}
	if tr.Span.Len() != 12 {
		t.Fatalf("Span.Len() = %d, want 12", tr.Span.Len())
	}
}
