package parser

import "github.com/isilang/isic/internal/pipeline"

// Processor runs parsing as a pipeline stage, consuming the token stream
// the lexer stage stashed on the context.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	prog, err := ParseProgram(ctx.TokenStream)
	if err != nil {
		ctx.ParseError = err
		return ctx
	}
	ctx.Program = prog
	return ctx
}
