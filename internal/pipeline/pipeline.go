package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes each stage in order, feeding its output context into the
// next. A parse error is unconditionally fatal: no later stage can do
// anything useful without an AST, so Run stops there. Type errors are left
// for the caller to check between assembling the semantic stages and the
// codegen/interp stage, since usage warnings are still worth collecting
// even when type checking failed.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.ParseError != nil {
			break
		}
	}
	return ctx
}
