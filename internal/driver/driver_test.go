package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/token"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "leaf.sv", "module leaf();\nendmodule\n")

	result, err := Tokenize(path, 50)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if result.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", result.Bag.Items())
	}
	if len(result.Tokens) == 0 || result.Tokens[len(result.Tokens)-1].Kind != token.EOF {
		t.Fatalf("expected token stream to end in EOF, got %+v", result.Tokens)
	}
	var sawModule bool
	for _, tok := range result.Tokens {
		if tok.Kind == token.ModuleKeyword {
			sawModule = true
		}
	}
	if !sawModule {
		t.Fatalf("expected a module keyword token, got %+v", result.Tokens)
	}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "leaf.sv", "module leaf(input logic a, output logic b);\nendmodule\n")

	result, err := Parse(path, ParseOptions{MaxDiagnostics: 50})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", result.Bag.Items())
	}
	f := result.Builder.Files.Get(result.FileID)
	if f == nil || len(f.Units) != 1 {
		t.Fatalf("expected exactly one design unit, got %+v", f)
	}
	unit := result.Builder.Units.Get(f.Units[0])
	if unit.Name != "leaf" || len(unit.Ports) != 2 {
		t.Fatalf("unexpected unit: %+v", unit)
	}
}

func TestParseWithIncludeAndDefine(t *testing.T) {
	dir := t.TempDir()
	incDir := filepath.Join(dir, "inc")
	if err := os.MkdirAll(incDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFixture(t, incDir, "width.svh", "`define WIDTH 8\n")
	path := writeFixture(t, dir, "top.sv", "`include \"width.svh\"\nmodule top();\n  logic [`WIDTH-1:0] x;\nendmodule\n")

	result, err := Parse(path, ParseOptions{
		MaxDiagnostics:  50,
		IncludeResolver: &source.DirIncludeResolver{UserDirs: []string{incDir}},
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", result.Bag.Items())
	}
}

func TestCheckElaboratesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	leafPath := writeFixture(t, dir, "leaf.sv", "module leaf();\nendmodule\n")
	topPath := writeFixture(t, dir, "top.sv", "module top();\n  leaf a();\n  leaf b();\nendmodule\n")

	result, err := Check(context.Background(), CheckRequest{
		Paths:          []string{leafPath, topPath},
		MaxDiagnostics: 50,
		Tops:           []string{"top"},
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.HasErrors() {
		for _, f := range result.Files {
			if f.Bag != nil {
				t.Logf("%s: %+v", f.Path, f.Bag.Items())
			}
		}
		if result.ElabBag != nil {
			t.Logf("elab: %+v", result.ElabBag.Items())
		}
		t.Fatalf("expected a clean check")
	}
	if len(result.Tops) != 1 {
		t.Fatalf("expected one elaborated top, got %d", len(result.Tops))
	}
}

func TestCheckReportsMissingFile(t *testing.T) {
	dir := t.TempDir()
	result, err := Check(context.Background(), CheckRequest{
		Paths:          []string{filepath.Join(dir, "missing.sv")},
		MaxDiagnostics: 50,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !result.HasErrors() {
		t.Fatalf("expected HasErrors for a missing file")
	}
}

func TestParseDefines(t *testing.T) {
	got := ParseDefines([]string{"FOO", "BAR=1"})
	if got["FOO"] != "" {
		t.Fatalf("expected FOO to define an empty body, got %q", got["FOO"])
	}
	if got["BAR"] != "1" {
		t.Fatalf("expected BAR=1, got %q", got["BAR"])
	}
	if ParseDefines(nil) != nil {
		t.Fatalf("expected nil for no defines")
	}
}
