package lexer_test

import (
	"math"
	"testing"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/lexer"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sv", []byte(src))
	bag := diag.NewBag(64)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.IsEOF() {
			break
		}
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	toks, bag := lexAll(t, "module Module")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.ModuleKeyword {
		t.Fatalf("expected ModuleKeyword, got %v", toks[0].Kind)
	}
	if toks[1].Kind != token.Ident {
		t.Fatalf("capitalized 'Module' must lex as an identifier, got %v", toks[1].Kind)
	}
}

func TestSimpleModuleTokenizes(t *testing.T) {
	toks, bag := lexAll(t, "module top; endmodule")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []token.Kind{token.ModuleKeyword, token.Ident, token.Semicolon, token.EndModuleKeyword, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSizedBasedLiteral(t *testing.T) {
	toks, bag := lexAll(t, "8'hFF")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	tok := toks[0]
	if tok.Kind != token.IntegerLit {
		t.Fatalf("kind = %v, want IntegerLit", tok.Kind)
	}
	if tok.Numeric == nil || tok.Numeric.Int.Width != 8 {
		t.Fatalf("expected an 8-bit value, got %+v", tok.Numeric)
	}
	got, ok := tok.Numeric.Int.Uint64()
	if !ok || got != 0xFF {
		t.Fatalf("value = (%d, %v), want (255, true)", got, ok)
	}
}

func TestUnsizedBasedLiteralWithUnknownDigit(t *testing.T) {
	toks, bag := lexAll(t, "'bx1")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	tok := toks[0]
	if tok.Kind != token.IntegerLit || tok.Numeric.Flags&token.Unsized == 0 {
		t.Fatalf("expected an unsized IntegerLit, got %+v", tok)
	}
	if !tok.Numeric.Int.HasX() {
		t.Fatal("expected the parsed value to carry an X bit")
	}
}

func TestUnbasedUnsizedLiteral(t *testing.T) {
	toks, _ := lexAll(t, "'z")
	if toks[0].Kind != token.UnbasedUnsizedLit {
		t.Fatalf("kind = %v, want UnbasedUnsizedLit", toks[0].Kind)
	}
}

func TestPlainDecimalLiteral(t *testing.T) {
	toks, bag := lexAll(t, "42")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	got, ok := toks[0].Numeric.Int.Uint64()
	if !ok || got != 42 {
		t.Fatalf("value = (%d, %v), want (42, true)", got, ok)
	}
}

func TestRealLiteral(t *testing.T) {
	toks, bag := lexAll(t, "3.14")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.RealLit || toks[0].Numeric.Real != 3.14 {
		t.Fatalf("token = %+v, want RealLit 3.14", toks[0])
	}
}

func TestRealLiteralMissingFraction(t *testing.T) {
	toks, bag := lexAll(t, "32.")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for a '.' with no fractional digits")
	}
	if toks[0].Kind != token.RealLit || toks[0].Numeric.Real != 32 {
		t.Fatalf("token = %+v, want RealLit 32", toks[0])
	}
	if toks[0].Text != "32." {
		t.Fatalf("Text = %q, want %q", toks[0].Text, "32.")
	}
}

func TestRealLiteralExponentOverflowIsInfNotDiagnosed(t *testing.T) {
	toks, bag := lexAll(t, "1e9999")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.RealLit || !math.IsInf(toks[0].Numeric.Real, 1) {
		t.Fatalf("token = %+v, want RealLit +Inf", toks[0])
	}
}

func TestExponentBacksOffWhenNoDigitFollows(t *testing.T) {
	// "1e" with nothing after the 'e' is not a valid exponent; the number
	// should stop at "1" and "e" should lex as its own identifier.
	toks, _ := lexAll(t, "1e")
	if toks[0].Kind != token.IntegerLit {
		t.Fatalf("first token kind = %v, want IntegerLit", toks[0].Kind)
	}
	if toks[1].Kind != token.Ident || toks[1].Text != "e" {
		t.Fatalf("second token = %+v, want identifier \"e\"", toks[1])
	}
}

func TestTimeLiteral(t *testing.T) {
	toks, bag := lexAll(t, "10ns")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.TimeLit || toks[0].Numeric.Flags&token.Nanoseconds == 0 {
		t.Fatalf("token = %+v, want a TimeLit flagged Nanoseconds", toks[0])
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	toks, bag := lexAll(t, `"a\nb\x41\101"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.StringLit {
		t.Fatalf("kind = %v, want StringLit", toks[0].Kind)
	}
	if toks[0].ValueText != "a\nbAA" {
		t.Fatalf("ValueText = %q, want %q", toks[0].ValueText, "a\nbAA")
	}
}

func TestUnterminatedStringReportsDiagnostic(t *testing.T) {
	_, bag := lexAll(t, `"no closing quote`)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for an unterminated string")
	}
}

func TestOctalEscapeTooBigIsDiagnosed(t *testing.T) {
	toks, bag := lexAll(t, `"literal\400"`)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for an octal escape exceeding 255")
	}
	if toks[0].ValueText != "literal" {
		t.Fatalf("ValueText = %q, want %q (an out-of-range octal escape contributes nothing)", toks[0].ValueText, "literal")
	}
}

func TestEscapedIdentifier(t *testing.T) {
	toks, bag := lexAll(t, `\foo$bar baz`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.EscapedIdent || toks[0].ValueText != "foo$bar" {
		t.Fatalf("token = %+v, want EscapedIdent \"foo$bar\"", toks[0])
	}
	if toks[1].Kind != token.Ident || toks[1].Text != "baz" {
		t.Fatalf("second token = %+v, want identifier \"baz\"", toks[1])
	}
}

func TestSystemIdentifier(t *testing.T) {
	toks, bag := lexAll(t, "$display")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.SystemIdent || toks[0].Text != "$display" {
		t.Fatalf("token = %+v, want SystemIdent \"$display\"", toks[0])
	}
}

func TestLineAndBlockComments(t *testing.T) {
	toks, bag := lexAll(t, "a // comment\n/* block */ b")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 3 { // a, b, EOF
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if len(toks[1].Leading) == 0 {
		t.Fatal("expected the comments to be attached as leading trivia on 'b'")
	}
}

func TestUnterminatedBlockCommentIsDiagnosed(t *testing.T) {
	_, bag := lexAll(t, "/* never closed")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for an unterminated block comment")
	}
}

func TestLongestMatchOperators(t *testing.T) {
	toks, bag := lexAll(t, "<<<= <<< === !== ==? |-> a<=b")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []token.Kind{
		token.TripleLeftShiftEqual, token.TripleLeftShift, token.TripleEquals,
		token.ExclamationDoubleEquals, token.DoubleEqualsQuestion, token.OrMinusArrow,
		token.Ident, token.LessThanEquals, token.Ident, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRoundTripInvariant(t *testing.T) {
	src := "module top #(parameter W = 8) (input logic [W-1:0] a); endmodule\n"
	toks, _ := lexAll(t, src)
	var rebuilt []byte
	for _, tok := range toks {
		for _, tr := range tok.Leading {
			rebuilt = append(rebuilt, tr.Text...)
		}
		rebuilt = append(rebuilt, tok.Text...)
	}
	if string(rebuilt) != src {
		t.Fatalf("round trip mismatch:\ngot:  %q\nwant: %q", string(rebuilt), src)
	}
}

func TestBOMIsDiagnosedAndKeptAsTrivia(t *testing.T) {
	src := "\xEF\xBB\xBFmodule m; endmodule\n"
	toks, bag := lexAll(t, src)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for a leading BOM")
	}
	var rebuilt []byte
	for _, tok := range toks {
		for _, tr := range tok.Leading {
			rebuilt = append(rebuilt, tr.Text...)
		}
		rebuilt = append(rebuilt, tok.Text...)
	}
	if string(rebuilt) != src {
		t.Fatal("BOM must still round-trip even though it's diagnosed")
	}
}
