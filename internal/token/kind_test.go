package token_test

import (
	"testing"

	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 1}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntegerLit, token.RealLit, token.TimeLit,
		token.StringLit, token.UnbasedUnsizedLit,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.ModuleKeyword, token.Plus, token.OpenParenthesis}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	idents := []token.Kind{token.Ident, token.EscapedIdent, token.SystemIdent}
	for _, k := range idents {
		if !tok(k).IsIdentifier() {
			t.Fatalf("%v should be an identifier kind", k)
		}
	}
	if tok(token.ModuleKeyword).IsIdentifier() {
		t.Fatal("ModuleKeyword must not be an identifier kind")
	}
}

func TestMissingToken(t *testing.T) {
	missing := token.Token{Kind: token.Semicolon, Span: source.Span{Start: 5, End: 5}}
	if !missing.Missing() {
		t.Fatal("zero-length non-EOF span should be Missing")
	}
	present := tok(token.Semicolon)
	if present.Missing() {
		t.Fatal("non-empty span should not be Missing")
	}
	eof := token.Token{Kind: token.EOF, Span: source.Span{Start: 5, End: 5}}
	if eof.Missing() {
		t.Fatal("EOF should never be considered Missing")
	}
}

func TestIdentifierText(t *testing.T) {
	plain := token.Token{Kind: token.Ident, Text: "clk"}
	if got := plain.IdentifierText(); got != "clk" {
		t.Fatalf("IdentifierText() = %q, want clk", got)
	}
	escaped := token.Token{Kind: token.EscapedIdent, Text: `\my.signal `, ValueText: "my.signal"}
	if got := escaped.IdentifierText(); got != "my.signal" {
		t.Fatalf("IdentifierText() = %q, want my.signal", got)
	}
}
