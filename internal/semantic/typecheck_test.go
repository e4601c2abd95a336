package semantic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isilang/isic/internal/diagnostics"
	"github.com/isilang/isic/internal/lexer"
	"github.com/isilang/isic/internal/parser"
	"github.com/isilang/isic/internal/semantic"
	"github.com/isilang/isic/internal/symbols"
)

// TestTypeChecker runs one source program through NewTypeChecker().Check
// per case, table-driven the way the teacher's own parser tests are.
func TestTypeChecker(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		check func(t *testing.T, checker *semantic.TypeChecker, errs []*diagnostics.DiagnosticError)
	}{
		{
			name:  "accepts_hello_scalar",
			input: `programa declare x: int. x := 42. escreva(x). fimprog.`,
			check: func(t *testing.T, checker *semantic.TypeChecker, errs []*diagnostics.DiagnosticError) {
				assert.Empty(t, errs)
				assert.Len(t, checker.Table, 1)
			},
		},
		{
			name:  "rejects_mismatched_assignment",
			input: `programa declare x: int. x := "oi". fimprog.`,
			check: func(t *testing.T, _ *semantic.TypeChecker, errs []*diagnostics.DiagnosticError) {
				require.Len(t, errs, 1)
				assert.Equal(t, "mismatched types: String vs Int", errs[0].Describe())
			},
		},
		{
			name:  "rejects_redeclaration",
			input: `programa declare x: int, x: float. fimprog.`,
			check: func(t *testing.T, _ *semantic.TypeChecker, errs []*diagnostics.DiagnosticError) {
				require.Len(t, errs, 1)
				assert.Contains(t, errs[0].Describe(), "redeclaration")
			},
		},
		{
			name:  "rejects_unknown_type",
			input: `programa declare x: bool. fimprog.`,
			check: func(t *testing.T, _ *semantic.TypeChecker, errs []*diagnostics.DiagnosticError) {
				require.Len(t, errs, 1)
				assert.Contains(t, errs[0].Describe(), "unknown type")
			},
		},
		{
			name: "accumulates_across_top_level_statements",
			input: `programa
declare x: int.
declare y: bool.
x := "nope".
fimprog.`,
			check: func(t *testing.T, _ *semantic.TypeChecker, errs []*diagnostics.DiagnosticError) {
				require.Len(t, errs, 2, "one bad statement must not hide the next")
			},
		},
		{
			name:  "mod_requires_int",
			input: `programa declare x: float. declare y: float. x := 1,0. y := 2,0. declare z: float. z := x % y. fimprog.`,
			check: func(t *testing.T, _ *semantic.TypeChecker, errs []*diagnostics.DiagnosticError) {
				require.Len(t, errs, 1)
				assert.Contains(t, errs[0].Describe(), "%")
			},
		},
		{
			name:  "condition_must_be_bool",
			input: `programa declare x: int. x := 1. se (x) entao { } fimprog.`,
			check: func(t *testing.T, _ *semantic.TypeChecker, errs []*diagnostics.DiagnosticError) {
				require.Len(t, errs, 1)
				assert.Contains(t, errs[0].Describe(), "Bool")
			},
		},
		{
			name:  "comparison_yields_bool",
			input: `programa declare x: int. x := 1. declare done: int. done := 2. enquanto (x < done) { x := x + 1. } fimprog.`,
			check: func(t *testing.T, _ *semantic.TypeChecker, errs []*diagnostics.DiagnosticError) {
				assert.Empty(t, errs)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stream := lexer.NewTokenStream(lexer.New(tc.input))
			prog, perr := parser.ParseProgram(stream)
			require.Nil(t, perr)

			checker := semantic.NewTypeChecker()
			errs := checker.Check(*prog)
			tc.check(t, checker, errs)
		})
	}
}

func TestSourceTypeNameExcludesBool(t *testing.T) {
	_, ok := symbols.SourceTypeName("bool")
	assert.False(t, ok, "bool must not be a declarable source type")
}
