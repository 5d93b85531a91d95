package token

import "testing"

func TestLookupKeywordPositive(t *testing.T) {
	cases := map[string]Kind{
		"module":      ModuleKeyword,
		"endmodule":   EndModuleKeyword,
		"always_comb": AlwaysCombKeyword,
		"logic":       LogicKeyword,
		"parameter":   ParameterKeyword,
		"localparam":  LocalParamKeyword,
		"generate":    GenerateKeyword,
		"posedge":     PosEdgeKeyword,
		"unique0":     Unique0Keyword,
		"1step":       OneStepKeyword,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeywordNegative(t *testing.T) {
	notKeywords := []string{
		"Module", "ENDMODULE", "AlwaysComb", // case matters
		"foo", "bar_baz", "myModule",
	}
	for _, s := range notKeywords {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

// TestKeywordCountMatchesTable is a completeness guard: every keyword
// listed here must be present in the table with a distinct Kind, and no
// two keywords may collide on the same Kind.
func TestKeywordTableHasNoKindCollisions(t *testing.T) {
	seen := make(map[Kind]string)
	for word, kind := range keywords {
		if prev, ok := seen[kind]; ok {
			t.Fatalf("keywords %q and %q both map to Kind %v", prev, word, kind)
		}
		seen[kind] = word
	}
}
