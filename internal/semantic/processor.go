package semantic

import "github.com/isilang/isic/internal/pipeline"

// TypeCheckProcessor runs the type checker as a pipeline stage. It always
// populates ctx.SymbolTable, even when ctx.TypeErrors ends up non-empty,
// since later tooling (e.g. a --debug dump) wants the symbol table
// regardless of whether checking succeeded.
type TypeCheckProcessor struct{}

func (p *TypeCheckProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	checker := NewTypeChecker()
	ctx.TypeErrors = checker.Check(*ctx.Program)
	ctx.SymbolTable = checker.Table
	return ctx
}

// UsageCheckProcessor runs the usage checker as a pipeline stage. It runs
// unconditionally, even over a program that failed type checking, so a
// user sees every diagnostic a single run can produce.
type UsageCheckProcessor struct{}

func (p *UsageCheckProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.UsageWarnings = NewUsageChecker().Check(*ctx.Program)
	return ctx
}

var (
	_ pipeline.Processor = (*TypeCheckProcessor)(nil)
	_ pipeline.Processor = (*UsageCheckProcessor)(nil)
)
