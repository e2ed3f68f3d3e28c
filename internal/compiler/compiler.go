// Package compiler wires internal/tracer, internal/linearize,
// internal/assemble and internal/emit into a staged driver:
// INIT -> TRACING (<=K) -> TREE_COMPLETE -> LINEARIZING ->
// ASSEMBLED -> SERIALIZED. Grounded on internal/pipeline's Pipeline/
// Processor split, generalized from "compile one source file" to
// "compile one traced program".
package compiler

import (
	"fmt"

	"github.com/funvibe/rgxchess/internal/assemble"
	"github.com/funvibe/rgxchess/internal/diagnostics"
	"github.com/funvibe/rgxchess/internal/emit"
	"github.com/funvibe/rgxchess/internal/linearize"
	"github.com/funvibe/rgxchess/internal/pipeline"
	"github.com/funvibe/rgxchess/internal/tracer"
)

// Stage names the driver's state machine position.
type Stage int

const (
	StageInit Stage = iota
	StageTracing
	StageTreeComplete
	StageLinearizing
	StageAssembled
	StageSerialized
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "INIT"
	case StageTracing:
		return "TRACING"
	case StageTreeComplete:
		return "TREE_COMPLETE"
	case StageLinearizing:
		return "LINEARIZING"
	case StageAssembled:
		return "ASSEMBLED"
	case StageSerialized:
		return "SERIALIZED"
	case StageFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Driver runs the compile pipeline and tracks which stage it reached.
type Driver struct {
	Stage Stage
}

// TracingProcessor runs the traced program to convergence, building the
// call tree (internal/tracer.Trace).
type TracingProcessor struct{ d *Driver }

func (p *TracingProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p.d.Stage = StageTracing
	if ctx.TraceFn == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.New("C002", "", "no traced program was provided"))
		p.d.Stage = StageFailed
		return ctx
	}
	tree, diags := tracer.Trace(ctx.TraceFn)
	ctx.Tree = tree
	ctx.Errors = append(ctx.Errors, diags.All()...)
	if diags.HasErrors() {
		p.d.Stage = StageFailed
		return ctx
	}
	p.d.Stage = StageTreeComplete
	return ctx
}

// LinearizeProcessor walks the completed call tree into a flat instruction
// stream (internal/linearize).
type LinearizeProcessor struct{ d *Driver }

func (p *LinearizeProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if p.d.Stage == StageFailed {
		return ctx
	}
	p.d.Stage = StageLinearizing
	stream, err := linearize.New().Linearize(ctx.Tree)
	if err != nil {
		ctx.Errors = append(ctx.Errors, diagnostics.Newf("L000", "", "%v", err))
		p.d.Stage = StageFailed
		return ctx
	}
	ctx.Stream = stream
	return ctx
}

// AssembleProcessor expands the instruction stream into a concrete rule
// list (internal/assemble).
type AssembleProcessor struct{ d *Driver }

func (p *AssembleProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if p.d.Stage == StageFailed {
		return ctx
	}
	rules, diags := assemble.Assemble(ctx.Stream)
	ctx.Errors = append(ctx.Errors, diags.All()...)
	if diags.HasErrors() {
		p.d.Stage = StageFailed
		return ctx
	}
	ctx.Rules = rules
	p.d.Stage = StageAssembled
	return ctx
}

// EmitProcessor serializes the assembled rule list to both external
// formats (internal/emit).
type EmitProcessor struct{ d *Driver }

func (p *EmitProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if p.d.Stage == StageFailed {
		return ctx
	}
	js, err := emit.ToJSON(ctx.Rules)
	if err != nil {
		ctx.Errors = append(ctx.Errors, diagnostics.Newf("E000", "", "%v", err))
		p.d.Stage = StageFailed
		return ctx
	}
	ctx.JSON = js

	jsSrc, err := emit.ToJS(ctx.Rules)
	if err != nil {
		ctx.Errors = append(ctx.Errors, diagnostics.Newf("E001", "", "%v", err))
		p.d.Stage = StageFailed
		return ctx
	}
	ctx.JS = jsSrc

	p.d.Stage = StageSerialized
	return ctx
}

// Compile runs the full pipeline against traceFn and returns the finished
// context. Once any stage fails, later stages short-circuit without doing
// further work: no recovery once assembly fails.
func Compile(traceFn func(t *tracer.Tracer) error) (*pipeline.PipelineContext, Stage) {
	d := &Driver{Stage: StageInit}
	p := pipeline.New(
		&TracingProcessor{d: d},
		&LinearizeProcessor{d: d},
		&AssembleProcessor{d: d},
		&EmitProcessor{d: d},
	)
	ctx := p.Run(&pipeline.PipelineContext{TraceFn: traceFn})
	return ctx, d.Stage
}

// Err renders ctx's first diagnostic as an error, or nil if there is none.
func Err(ctx *pipeline.PipelineContext) error {
	if !ctx.HasErrors() {
		return nil
	}
	return fmt.Errorf("%w", ctx.Errors[0])
}
