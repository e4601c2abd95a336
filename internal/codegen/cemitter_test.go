package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isilang/isic/internal/codegen"
	"github.com/isilang/isic/internal/lexer"
	"github.com/isilang/isic/internal/parser"
	"github.com/isilang/isic/internal/semantic"
)

func compileToC(t *testing.T, src string) string {
	t.Helper()
	stream := lexer.NewTokenStream(lexer.New(src))
	prog, perr := parser.ParseProgram(stream)
	require.Nil(t, perr, "unexpected parse error: %v", perr)

	checker := semantic.NewTypeChecker()
	errs := checker.Check(*prog)
	require.Empty(t, errs, "program must type-check before emitting C")

	var out strings.Builder
	require.NoError(t, codegen.NewCEmitter(&out, checker.Table).Emit(*prog))
	return out.String()
}

func TestEmitterEmptyProgram(t *testing.T) {
	got := compileToC(t, "programa fimprog.")
	assert.Equal(t, "/* !!! auto-gerado por isic-back !!! */\n#include <stdio.h>\n#include <stdlib.h>\n\nint main() {\n}\n", got)
}

func TestEmitterHelloScalar(t *testing.T) {
	got := compileToC(t, `programa declare x: int. x := 42. escreva(x). fimprog.`)
	body := "    int x;\n    x = 42;\n    printf(\"%d\\n\", x);\n"
	assert.Contains(t, got, body)
}

func TestEmitterConditionalElidesEmptyElse(t *testing.T) {
	got := compileToC(t, `programa declare x: int. x := 1. se (x == 1) entao { escreva(x). } fimprog.`)
	assert.NotContains(t, got, "else")
	assert.Contains(t, got, "if ((x == 1)) {")
}

func TestEmitterConditionalWithElse(t *testing.T) {
	got := compileToC(t, `programa declare x: int. x := 1. se (x == 1) entao { escreva(x). } senao { x := 0. } fimprog.`)
	assert.Contains(t, got, "} else {")
}

func TestEmitterDoWhileLoop(t *testing.T) {
	got := compileToC(t, `programa declare i: int. i := 0. faca { i := i + 1. } enquanto (i < 3). fimprog.`)
	assert.Contains(t, got, "do {")
	assert.Contains(t, got, "} while ((i < 3));")
}

func TestEmitterStringDeclaresCharPointer(t *testing.T) {
	got := compileToC(t, `programa declare s: string. leia(s). escreva(s). fimprog.`)
	assert.Contains(t, got, "char* s;")
	assert.Contains(t, got, "scanf(\"%s\", &s);")
	assert.Contains(t, got, "printf(\"%s\\n\", s);")
}
