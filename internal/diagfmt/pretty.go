package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan, color.Bold)
	fatalColor   = color.New(color.FgHiRed, color.Bold)
	locColor     = color.New(color.Faint)
	gutterColor  = color.New(color.FgBlue)
	caretColor   = color.New(color.FgRed, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevFatal:
		return fatalColor
	case diag.SevWarning:
		return warningColor
	default:
		return noteColor
	}
}

// Pretty writes bag's diagnostics in human-readable form: one header line
// per diagnostic (location, severity, code, message), an optional source
// excerpt with a caret under the primary span, then notes and fix titles.
// Call bag.Sort() first for a deterministic file order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := prettyOne(w, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	loc := formatLocation(d.Primary, fs, opts.PathMode)
	sevText := fmt.Sprintf("%s[%04d]", d.Severity, uint32(d.Code))
	if opts.Color {
		sevText = severityColor(d.Severity).Sprint(sevText)
		loc = locColor.Sprint(loc)
	}
	if _, err := fmt.Fprintf(w, "%s: %s: %s\n", loc, sevText, d.Message); err != nil {
		return err
	}

	if opts.ShowPreview && fs != nil {
		if err := writePreview(w, d.Primary, fs, opts); err != nil {
			return err
		}
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nloc := formatLocation(n.Span, fs, opts.PathMode)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			if _, err := fmt.Fprintf(w, "  %s: %s: %s\n", nloc, label, n.Msg); err != nil {
				return err
			}
		}
	}

	if opts.ShowFixes {
		for _, f := range d.Fixes {
			if _, err := fmt.Fprintf(w, "  fix: %s\n", f.Title); err != nil {
				return err
			}
		}
	}
	return nil
}

func writePreview(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) error {
	start, end := fs.Resolve(span)
	f := fs.Get(span.File)
	line := f.GetLine(start.Line)
	if line == "" {
		return nil
	}
	gutter := fmt.Sprintf("%d", start.Line)
	if opts.Color {
		gutter = gutterColor.Sprint(gutter)
	}
	if _, err := fmt.Fprintf(w, "  %s | %s\n", gutter, strings.TrimRight(line, "\r\n")); err != nil {
		return err
	}

	pad := strings.Repeat(" ", len(fmt.Sprintf("%d", start.Line)))
	caretLen := int(end.Col) - int(start.Col)
	if caretLen < 1 || end.Line != start.Line {
		caretLen = 1
	}
	caret := strings.Repeat(" ", int(start.Col)-1) + strings.Repeat("^", caretLen)
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	_, err := fmt.Fprintf(w, "  %s | %s\n", pad, caret)
	return err
}
