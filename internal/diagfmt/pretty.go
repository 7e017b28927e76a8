package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"modlint/internal/diag"
	"modlint/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() (call bag.Sort() first) and prints, for each diagnostic:
//
//	<path>:<line>:<col>: <severity> <ID>: <message>
//	   <line no> | <source line>
//	             | ^~~~~
//
// followed by notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, &d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		formatLocation(d.Primary, fs, opts.PathMode),
		severityText(d.Severity, opts.Color),
		d.Code.ID(),
		d.Message)

	printContext(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "%s: %s: %s\n",
				formatLocation(note.Span, fs, opts.PathMode), label, note.Msg)
			printContext(w, note.Span, fs, opts)
		}
	}
}

// printContext emits the source line the span starts on, with a
// ^~~~ underline beneath the spanned columns.
func printContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if span.Empty() && span.Start == 0 {
		return
	}
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	gutter := fmt.Sprintf("%4d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	// Underline within the start line only; multi-line spans stop at EOL.
	runes := []rune(line)
	startCol := int(start.Col) - 1
	endCol := len(runes)
	if end.Line == start.Line {
		endCol = int(end.Col) - 1
	}
	if startCol < 0 || startCol >= len(runes) {
		return
	}
	if endCol > len(runes) {
		endCol = len(runes)
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}

	// Runewidth keeps the caret aligned under wide characters and tabs.
	pad := 0
	for _, r := range runes[:startCol] {
		if r == '\t' {
			pad += 8
			continue
		}
		pad += runewidth.RuneWidth(r)
	}
	width := 0
	for _, r := range runes[startCol:endCol] {
		width += runewidth.RuneWidth(r)
	}
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "%s%s%s\n",
		strings.Repeat(" ", len(gutter)), strings.Repeat(" ", pad), underline)
}

func formatLocation(span source.Span, fs *source.FileSet, mode PathMode) (loc string) {
	// Diagnostics without a resolvable span (load failures) still render.
	defer func() {
		if recover() != nil {
			loc = "<unknown>"
		}
	}()
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(file, fs, mode), start.Line, start.Col)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

func severityText(sev diag.Severity, colored bool) string {
	var label string
	var c *color.Color
	switch sev {
	case diag.SevError:
		label, c = "error", errorColor
	case diag.SevWarning:
		label, c = "warning", warningColor
	default:
		label, c = "info", infoColor
	}
	if colored {
		return c.Sprint(label)
	}
	return label
}

// Short renders one line per finding, suitable for scripts and golden
// files. It delegates to the diag package so tests and CLI agree on the
// exact shape.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) {
	out := diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes)
	if out == "" {
		return
	}
	fmt.Fprintln(w, out)
}
