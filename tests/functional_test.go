// Package tests drives the whole lex -> parse -> typecheck -> usagecheck ->
// interpret pipeline against fixture programs under fixtures/, the way the
// teacher's own tests package diffs a compiled program's output against
// .want files, except here the front end is exercised through
// internal/cli.RunFrontend directly rather than a built binary.
package tests

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isilang/isic/internal/cli"
	"github.com/isilang/isic/internal/diagnostics"
	"github.com/isilang/isic/internal/interp"
)

// runFixture runs source through the full front end and, if it comes out
// clean, the interpreter, folding whatever diagnostics and stdout resulted
// into one string — the same "combine everything observable, diff once"
// shape as the teacher's combined stdout+stderr comparison.
func runFixture(src string) string {
	log := logrus.New()
	log.SetOutput(io.Discard)

	ctx := cli.RunFrontend(src, log)

	var b strings.Builder
	writeDiag := func(d *diagnostics.DiagnosticError) {
		fmt.Fprintf(&b, "[%s] %s\n", d.Code, d.Describe())
	}

	if ctx.ParseError != nil {
		writeDiag(ctx.ParseError)
		return b.String()
	}
	for _, d := range ctx.TypeErrors {
		writeDiag(d)
	}
	if len(ctx.TypeErrors) > 0 {
		return b.String()
	}
	for _, d := range ctx.UsageWarnings {
		writeDiag(d)
	}

	var out strings.Builder
	ip := interp.New(strings.NewReader(""), &out)
	if err := ip.Run(*ctx.Program); err != nil {
		fmt.Fprintln(&b, err)
	}
	b.WriteString(out.String())
	return b.String()
}

// TestFunctional runs every fixtures/*.isi file with a matching .want file
// through runFixture and diffs the result, covering the literal scenario
// list and negative tests end to end.
func TestFunctional(t *testing.T) {
	matches, err := filepath.Glob("fixtures/*.isi")
	require.NoError(t, err)
	require.NotEmpty(t, matches, "no fixtures found")

	for _, isiPath := range matches {
		isiPath := isiPath
		name := strings.TrimSuffix(filepath.Base(isiPath), ".isi")

		t.Run(name, func(t *testing.T) {
			wantPath := strings.TrimSuffix(isiPath, ".isi") + ".want"
			wantBytes, err := os.ReadFile(wantPath)
			require.NoErrorf(t, err, "missing %s", wantPath)

			srcBytes, err := os.ReadFile(isiPath)
			require.NoError(t, err)

			got := runFixture(string(srcBytes))
			want := strings.TrimRight(string(wantBytes), "\n")
			got = strings.TrimRight(got, "\n")

			assert.Equal(t, want, got)
		})
	}
}
