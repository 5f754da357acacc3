package output

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"
)

// TableWriter wraps tabwriter for formatted output
type TableWriter struct {
	writer *tabwriter.Writer
}

// NewTableWriter creates a new table writer on stdout
func NewTableWriter() *TableWriter {
	return NewTableWriterTo(os.Stdout)
}

// NewTableWriterTo creates a new table writer on w
func NewTableWriterTo(w io.Writer) *TableWriter {
	return &TableWriter{writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// WriteHeader writes table headers
func (t *TableWriter) WriteHeader(headers ...string) {
	t.WriteRow(headers...)
}

// WriteRow writes a table row
func (t *TableWriter) WriteRow(values ...string) {
	for i, v := range values {
		if i > 0 {
			fmt.Fprint(t.writer, "\t")
		}
		fmt.Fprint(t.writer, v)
	}
	fmt.Fprintln(t.writer)
}

// Flush writes buffered output
func (t *TableWriter) Flush() error {
	return t.writer.Flush()
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// glyph returns symbol when f is a terminal and fallback otherwise
func glyph(f *os.File, symbol, fallback string) string {
	if IsTerminal(f) {
		return symbol
	}
	return fallback
}

// PrintSuccess prints a success message with checkmark
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", glyph(os.Stdout, "✓", "OK:"), message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", glyph(os.Stderr, "✗", "ERROR:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", glyph(os.Stderr, "⚠", "WARNING:"), message)
}
