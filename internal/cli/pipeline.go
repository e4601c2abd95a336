package cli

import (
	"github.com/sirupsen/logrus"

	"github.com/isilang/isic/internal/lexer"
	"github.com/isilang/isic/internal/parser"
	"github.com/isilang/isic/internal/pipeline"
	"github.com/isilang/isic/internal/semantic"
)

// loggingProcessor wraps a pipeline.Processor with a Debug-level log line
// emitted after the stage runs, so the core packages stay pure functions
// over PipelineContext and only this CLI-side wrapper knows about logrus.
type loggingProcessor struct {
	name  string
	log   *logrus.Logger
	inner pipeline.Processor
}

func (lp *loggingProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx = lp.inner.Process(ctx)
	entry := lp.log.WithField("phase", lp.name)
	switch lp.name {
	case "parser":
		if ctx.ParseError != nil {
			entry.Debugf("parse failed: %s", ctx.ParseError)
		} else {
			entry.Debugf("parsed %d top-level statements", len(ctx.Program.Statements))
		}
	case "typecheck":
		entry.Debugf("found %d type error(s)", len(ctx.TypeErrors))
	case "usagecheck":
		entry.Debugf("found %d usage warning(s)", len(ctx.UsageWarnings))
	default:
		entry.Debug("stage complete")
	}
	return ctx
}

// RunFrontend lexes, parses, and runs both semantic passes over source,
// logging each stage's progress at Debug level. Every CLI subcommand goes
// through this helper so the four front-end stages are never assembled
// more than once.
func RunFrontend(source string, log *logrus.Logger) *pipeline.PipelineContext {
	stage := func(name string, p pipeline.Processor) pipeline.Processor {
		return &loggingProcessor{name: name, log: log, inner: p}
	}

	p := pipeline.New(
		stage("lexer", &lexer.Processor{}),
		stage("parser", &parser.Processor{}),
		stage("typecheck", &semantic.TypeCheckProcessor{}),
		stage("usagecheck", &semantic.UsageCheckProcessor{}),
	)

	return p.Run(pipeline.NewPipelineContext(source))
}
