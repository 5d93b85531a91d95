package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("module m;\n  wire x = \"unterminated\n}")
	fileID := fs.AddVirtual("test.sv", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.ExpectedClosingQuote,
		source.Span{File: fileID, Start: 21, End: 33}, "unterminated string literal"))

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeNotes: true, IncludeFixes: true}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}

	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got count=%d len=%d", output.Count, len(output.Diagnostics))
	}

	d := output.Diagnostics[0]
	if d.Severity != "error" {
		t.Errorf("expected severity=error, got %s", d.Severity)
	}
	if d.Message != "unterminated string literal" {
		t.Errorf("unexpected message: %s", d.Message)
	}
	if d.Location.File != "test.sv" {
		t.Errorf("expected file=test.sv, got %s", d.Location.File)
	}
	if d.Location.StartByte != 21 || d.Location.EndByte != 33 {
		t.Errorf("unexpected byte range: %d-%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 {
		t.Errorf("expected start_line=2, got %d", d.Location.StartLine)
	}
}

func TestJSONWithNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("wire x;")
	fileID := fs.AddVirtual("test.sv", content)

	d := diag.New(diag.SevWarning, diag.UsedBeforeDeclared,
		source.Span{File: fileID, Start: 5, End: 6}, "'x' driven with no assignment")
	d = d.WithNote(source.Span{File: fileID, Start: 5, End: 6}, "declared here")
	d = d.WithFix("remove unused net", diag.FixEdit{Span: source.Span{File: fileID, Start: 0, End: 7}, NewText: ""})

	bag := diag.NewBag(10)
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeNotes: true, IncludeFixes: true}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	got := output.Diagnostics[0]
	if len(got.Notes) != 1 || got.Notes[0].Message != "declared here" {
		t.Fatalf("unexpected notes: %#v", got.Notes)
	}
	if len(got.Fixes) != 1 || got.Fixes[0].Title != "remove unused net" {
		t.Fatalf("unexpected fixes: %#v", got.Fixes)
	}
	if len(got.Fixes[0].Edits) != 1 || got.Fixes[0].Edits[0].NewText != "" {
		t.Fatalf("unexpected edits: %#v", got.Fixes[0].Edits)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sv", []byte("wire x;"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevNote, diag.UnexpectedToken, source.Span{File: fileID, Start: 5, End: 6}, "note"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	got := output.Diagnostics[0]
	if got.Location.StartLine != 0 {
		t.Errorf("expected start_line to be omitted, got %d", got.Location.StartLine)
	}
	if got.Location.StartByte != 5 {
		t.Errorf("expected start_byte=5, got %d", got.Location.StartByte)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sv", []byte("wire a, b, c, d, e;"))

	bag := diag.NewBag(10)
	for i := 0; i < 5; i++ {
		bag.Add(diag.New(diag.SevError, diag.UnexpectedToken,
			source.Span{File: fileID, Start: uint32(i), End: uint32(i + 1)}, "error"))
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{PathMode: PathModeBasename, Max: 3}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if output.Count != 3 || len(output.Diagnostics) != 3 {
		t.Errorf("expected 3 diagnostics after truncation, got count=%d len=%d", output.Count, len(output.Diagnostics))
	}
}

func TestJSONPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/src/main.sv", []byte("module m; endmodule"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.UnexpectedToken, source.Span{File: fileID, Start: 0, End: 1}, "error"))

	tests := []struct {
		name     string
		pathMode PathMode
		expected string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/main.sv"},
		{"relative", PathModeRelative, "src/main.sv"},
		{"basename", PathModeBasename, "main.sv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := JSON(&buf, bag, fs, JSONOpts{PathMode: tt.pathMode}); err != nil {
				t.Fatalf("JSON() error: %v", err)
			}
			var output DiagnosticsOutput
			if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
				t.Fatalf("invalid JSON output: %v", err)
			}
			if output.Diagnostics[0].Location.File != tt.expected {
				t.Errorf("expected file=%s, got %s", tt.expected, output.Diagnostics[0].Location.File)
			}
		})
	}
}

func TestJSONFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("example.sv", []byte("assign a = b // missing semicolon"))

	insertSpan := source.Span{File: fileID, Start: 12, End: 12}
	d := diag.New(diag.SevWarning, diag.ExpectedToken, insertSpan, "missing semicolon")
	d = d.WithFix("insert semicolon", diag.FixEdit{Span: insertSpan, NewText: ";"})

	bag := diag.NewBag(2)
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeFixes: true, IncludePreviews: true}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	edit := output.Diagnostics[0].Fixes[0].Edits[0]
	if len(edit.BeforeLines) != 1 || edit.BeforeLines[0] != "assign a = b // missing semicolon" {
		t.Fatalf("unexpected before lines: %#v", edit.BeforeLines)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "assign a = b; // missing semicolon" {
		t.Fatalf("unexpected after lines: %#v", edit.AfterLines)
	}
}
