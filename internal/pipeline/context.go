package pipeline

import (
	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/diagnostics"
	"github.com/isilang/isic/internal/symbols"
)

// PipelineContext holds everything passed between pipeline stages: lexing,
// parsing, type checking, usage checking, and finally codegen or
// interpretation. Each stage reads what earlier stages produced and adds
// its own output; nothing is ever removed.
type PipelineContext struct {
	SourceCode  string
	FilePath    string // path to the source file, if any (empty for stdin/REPL input)
	TokenStream TokenStream
	Program     *ast.Program
	SymbolTable symbols.Table

	// TypeErrors is populated by the type checker; a non-empty slice means
	// the pipeline must abort before codegen/interp runs.
	TypeErrors []*diagnostics.DiagnosticError

	// UsageWarnings is populated by the usage checker, sorted by
	// declaration span start. Non-fatal: the pipeline continues past it.
	UsageWarnings []*diagnostics.DiagnosticError

	// ParseError is set by the parser stage on a syntax error; it aborts
	// every later stage.
	ParseError *diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext for the
// given source text.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode:  source,
		SymbolTable: symbols.NewTable(),
	}
}
