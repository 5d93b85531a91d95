package diag

import "github.com/mohamed/svlang/internal/source"

// Note is a secondary span/message attached to a Diagnostic, typically
// pointing at a related declaration ("previous declaration was here").
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement over a span, part of a Fix.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix bundles a set of edits that together resolve a diagnostic.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one coded message produced by a pipeline stage, always
// carrying a stable Code, a Severity, and a primary source range.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
