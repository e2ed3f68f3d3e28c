package pipeline

import (
	"github.com/funvibe/rgxchess/internal/calltree"
	"github.com/funvibe/rgxchess/internal/diagnostics"
	"github.com/funvibe/rgxchess/internal/linearize"
	"github.com/funvibe/rgxchess/internal/rule"
	"github.com/funvibe/rgxchess/internal/tracer"
)

// PipelineContext threads compile state through every stage, the same role
// ParserProcessor.Process's *pipeline.PipelineContext argument plays in the
// teacher: each Processor reads what an earlier stage produced, does its
// work, and appends to Errors rather than stopping the whole Run early (so
// a later stage's diagnostics, where it can still produce any, accumulate
// alongside earlier ones).
type PipelineContext struct {
	// TraceFn is the traced program, written against internal/tracer's
	// builder API. Set by the caller before running the pipeline.
	TraceFn func(t *tracer.Tracer) error

	Tree   *calltree.CallTree
	Stream []linearize.Instr
	Rules  []rule.Rule

	JSON string
	JS   string

	Errors []*diagnostics.Diagnostic
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// HasErrors reports whether any stage has recorded a diagnostic.
func (c *PipelineContext) HasErrors() bool {
	return len(c.Errors) > 0
}
