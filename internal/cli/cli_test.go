package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isilang/isic/internal/cli"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCheckCommandPassesOnWellTypedProgram(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "hello.isi", "programa\ndeclare x: int.\nx := 42.\nescreva(x).\nfimprog.\n")

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"check", path})

	err := root.Execute()
	assert.NoError(t, err)
}

func TestCheckCommandFailsOnTypeMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.isi", "programa\ndeclare x: int.\nx := \"nope\".\nfimprog.\n")

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"check", path})

	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, out.String(), "T004")
}

func TestCheckCommandBatchesMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.isi", "programa\ndeclare x: int.\nx := 1.\nescreva(x).\nfimprog.\n")
	bad := writeSource(t, dir, "bad.isi", "programa\ndeclare y: widget.\nfimprog.\n")

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"check", good, bad})

	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, out.String(), "T003")
}

func TestBuildCommandEmitsC(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "hello.isi", "programa\ndeclare x: int.\nx := 42.\nescreva(x).\nfimprog.\n")
	outPath := filepath.Join(dir, "hello.c")

	root := cli.NewRootCmd()
	root.SetArgs([]string{"build", path, "-o", outPath})

	require.NoError(t, root.Execute())

	generated, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(generated), "int main()")
	assert.Contains(t, string(generated), "int x;")
}

func TestBuildCommandDefaultOutputReplacesAnyExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "hello.txt", "programa\ndeclare x: int.\nx := 42.\nescreva(x).\nfimprog.\n")

	root := cli.NewRootCmd()
	root.SetArgs([]string{"build", path})

	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(dir, "hello.c"))
	require.NoError(t, err, "default output path should replace .txt with .c, not append to it")
}

func TestRunCommandInterpretsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "hello.isi", "programa\ndeclare x: int.\nx := 42.\nescreva(x).\nfimprog.\n")

	root := cli.NewRootCmd()
	root.SetArgs([]string{"run", path})

	assert.NoError(t, root.Execute())
}
