package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("module m;\n  wire x = \"unterminated\n endmodule\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.sv", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.ExpectedClosingQuote,
		source.Span{File: fileID, Start: 22, End: 40}, "unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.sv"},
		{"relative", PathModeRelative, "src/test.sv"},
		{"basename", PathModeBasename, "test.sv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{PathMode: tt.mode}
			if err := Pretty(&buf, bag, fs, opts); err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "error") {
				t.Error("expected severity label in output")
			}
			if !strings.Contains(output, "unterminated string literal") {
				t.Error("expected message in output")
			}
		})
	}
}

func TestPathModeAutoFallsBackOutsideBaseDir(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")
	fileID := fs.AddVirtual("/elsewhere/lib.sv", []byte("module m; endmodule\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.NonPrintableChar,
		source.Span{File: fileID, Start: 0, End: 6}, "non-printable byte in source"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "/elsewhere/lib.sv") {
		t.Errorf("expected absolute fallback path, got:\n%s", buf.String())
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("module m;\n  wire x y;\nendmodule\n")
	fileID := fs.AddVirtual("test.sv", content)

	primary := source.Span{File: fileID, Start: 18, End: 19}
	d := diag.New(diag.SevError, diag.UnexpectedToken, primary, "unexpected token 'y'")
	d = d.WithNote(source.Span{File: fileID, Start: 13, End: 17}, "did you mean to end the declaration here?")
	d = d.WithFix("insert semicolon", diag.FixEdit{Span: source.Span{File: fileID, Start: 18, End: 18}, NewText: ";"})

	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	opts := PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true}
	if err := Pretty(&buf, bag, fs, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "note:") {
		t.Fatalf("expected note line, got:\n%s", output)
	}
	if !strings.Contains(output, "fix: insert semicolon") {
		t.Fatalf("expected fix line, got:\n%s", output)
	}
}

func TestPrettyPreviewUnderlinesPrimarySpan(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("assign a = b + ;\n")
	fileID := fs.AddVirtual("example.sv", content)

	bag := diag.NewBag(2)
	bag.Add(diag.New(diag.SevError, diag.ExpectedExpression,
		source.Span{File: fileID, Start: 15, End: 16}, "expected expression"))

	var buf bytes.Buffer
	opts := PrettyOpts{PathMode: PathModeBasename, ShowPreview: true}
	if err := Pretty(&buf, bag, fs, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "assign a = b + ;") {
		t.Fatalf("expected source line in preview, got:\n%s", output)
	}
	if !strings.Contains(output, "^") {
		t.Fatalf("expected caret in preview, got:\n%s", output)
	}
}
