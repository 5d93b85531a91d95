package preprocessor_test

import (
	"testing"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/preprocessor"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

func run(t *testing.T, src string, opts preprocessor.Options) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sv", []byte(src))
	bag := diag.NewBag(64)
	opts.Reporter = diag.BagReporter{Bag: bag}
	pp := preprocessor.New(fs, id, opts)

	var toks []token.Token
	for {
		tok := pp.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks, bag
}

func texts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestObjectLikeMacroExpandsToLiteral(t *testing.T) {
	toks, bag := run(t, "`define FOO 42\n`FOO\n", preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Kind != token.IntegerLit || toks[0].Text != "42" {
		t.Fatalf("got %#v", toks)
	}
}

func TestFunctionLikeMacroSubstitutesArguments(t *testing.T) {
	toks, bag := run(t, "`define ADD(a,b) (a+b)\n`ADD(1,2)\n", preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	got := texts(toks)
	want := []string{"(", "1", "+", "2", ")"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestFunctionLikeMacroDefaultArgument(t *testing.T) {
	toks, bag := run(t, "`define GREET(name=world) name\n`GREET()\n", preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Text != "world" {
		t.Fatalf("got %#v", toks)
	}
}

func TestUndefinedMacroUsageReportsDiagnostic(t *testing.T) {
	_, bag := run(t, "`FOO\n", preprocessor.Options{})
	if bag.Len() != 1 || bag.Items()[0].Code != diag.UnknownDirective {
		t.Fatalf("expected UnknownDirective, got %v", bag.Items())
	}
}

func TestIfdefTakesActiveBranch(t *testing.T) {
	toks, bag := run(t, "`define X\n`ifdef X\nfoo\n`else\nbar\n`endif\n", preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Text != "foo" {
		t.Fatalf("got %#v", toks)
	}
}

func TestIfndefTakesElseBranchWhenDefined(t *testing.T) {
	toks, bag := run(t, "`define X\n`ifndef X\nfoo\n`else\nbar\n`endif\n", preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Text != "bar" {
		t.Fatalf("got %#v", toks)
	}
}

func TestElsifChainPicksFirstTrueBranch(t *testing.T) {
	src := "`define B\n`ifdef A\none\n`elsif B\ntwo\n`elsif C\nthree\n`else\nfour\n`endif\n"
	toks, bag := run(t, src, preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Text != "two" {
		t.Fatalf("got %#v", toks)
	}
}

func TestNestedConditionalInsideInactiveBranchStaysInactive(t *testing.T) {
	src := "`ifdef UNDEF\n`ifdef ALSO_UNDEF\ninner\n`endif\nouter\n`endif\nkept\n"
	toks, bag := run(t, src, preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Text != "kept" {
		t.Fatalf("got %#v", toks)
	}
}

func TestUnbalancedEndifReportsDiagnostic(t *testing.T) {
	_, bag := run(t, "`endif\n", preprocessor.Options{})
	if bag.Len() != 1 || bag.Items()[0].Code != diag.UnbalancedConditional {
		t.Fatalf("expected UnbalancedConditional, got %v", bag.Items())
	}
}

func TestUndefRemovesMacro(t *testing.T) {
	_, bag := run(t, "`define X 1\n`undef X\n`X\n", preprocessor.Options{})
	if bag.Len() != 1 || bag.Items()[0].Code != diag.UnknownDirective {
		t.Fatalf("expected UnknownDirective after `undef, got %v", bag.Items())
	}
}

func TestStringizeOperatorProducesStringLiteral(t *testing.T) {
	toks, bag := run(t, "`define MSG(x) `\"value: x`\"\n`MSG(hello)\n", preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Kind != token.StringLit || toks[0].ValueText != "value: hello" {
		t.Fatalf("got %#v", toks)
	}
}

func TestTokenPasteJoinsIdentifiers(t *testing.T) {
	toks, bag := run(t, "`define CAT(a,b) a``b\n`CAT(foo,bar)\n", preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Kind != token.Ident || toks[0].Text != "foobar" {
		t.Fatalf("got %#v", toks)
	}
}

func TestIncludeWithoutResolverReportsDiagnostic(t *testing.T) {
	_, bag := run(t, "`include \"missing.svh\"\n", preprocessor.Options{})
	if bag.Len() != 1 || bag.Items()[0].Code != diag.CouldNotOpenIncludeFile {
		t.Fatalf("expected CouldNotOpenIncludeFile, got %v", bag.Items())
	}
}

func TestPredefinedMacroIsAvailableImmediately(t *testing.T) {
	toks, bag := run(t, "`FOO\n", preprocessor.Options{PredefinedMacros: map[string]string{"FOO": "99"}})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Text != "99" {
		t.Fatalf("got %#v", toks)
	}
}

func TestInertDirectivesAreConsumedWithoutError(t *testing.T) {
	src := "`timescale 1ns/1ps\n`default_nettype none\n`celldefine\nkept\n`endcelldefine\n"
	toks, bag := run(t, src, preprocessor.Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Text != "kept" {
		t.Fatalf("got %#v", toks)
	}
}
