package cli

import (
	"fmt"
	"io"

	"github.com/isilang/isic/internal/diagnostics"
	"github.com/isilang/isic/internal/span"
)

// FormatDiagnostic renders one diagnostic against the original source text,
// converting its byte-offset span to a 1-indexed line:col the way a human
// reading the source expects.
func FormatDiagnostic(source string, d *diagnostics.DiagnosticError) string {
	line, col := span.LineCol(source, d.Span.Start)
	kind := "error"
	if d.IsWarning() {
		kind = "warning"
	}
	return fmt.Sprintf("%d:%d: %s [%s]: %s\n", line, col, kind, d.Code, d.Describe())
}

func printDiagnostic(w io.Writer, source string, d *diagnostics.DiagnosticError) {
	fmt.Fprint(w, FormatDiagnostic(source, d))
}
