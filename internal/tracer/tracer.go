// Package tracer is the statically-typed Go builder API a traced program
// is written against (no lexer/parser at all,
// since the "source program" is Go code calling this surface directly).
// It plays the role compiler.py's VarTracer/trace() play in the original:
// running the same traced function up to K times, replaying each branch
// point through the call tree's two-phase cursor (internal/calltree) until
// every branch has been explored from both sides or the iteration budget
// is spent.
package tracer

import (
	"github.com/funvibe/rgxchess/internal/calltree"
	"github.com/funvibe/rgxchess/internal/diagnostics"
	"github.com/funvibe/rgxchess/internal/expr"
	"github.com/funvibe/rgxchess/internal/linearize"
)

// Tracer accumulates one call tree across repeated runs of a traced
// function. Every method appends to (or branches) the underlying
// calltree.CallTree; nothing here runs a regex engine — that only happens
// once internal/linearize and internal/assemble have turned the finished
// tree into rules.
type Tracer struct {
	tree *calltree.CallTree
}

// New returns a Tracer over a fresh call tree.
func New() *Tracer {
	return &Tracer{tree: calltree.New()}
}

// Tree exposes the underlying call tree, e.g. for internal/linearize once
// tracing has converged.
func (t *Tracer) Tree() *calltree.CallTree {
	return t.tree
}

// Op appends an opaque instruction node directly, for instructions
// (including every internal/instrset/chessops opcode) that have no
// dedicated Tracer method.
func (t *Tracer) Op(name string, args ...any) error {
	return t.tree.Append(&calltree.Node{Kind: calltree.KindOpaque, OpName: name, Args: args})
}

// Push pushes a constant.
func (t *Tracer) Push(v any) error { return t.Op("push", v) }

// Pop discards the top of stack.
func (t *Tracer) Pop() error { return t.Op("pop") }

// Lookup pushes a variable's current value.
func (t *Tracer) Lookup(name string) error { return t.Op("lookup", name) }

// AssignPop pops the stack into a variable.
func (t *Tracer) AssignPop(name string) error { return t.Op("assign_pop", name) }

// LitAssign assigns a literal constant to a variable without touching the
// stack.
func (t *Tracer) LitAssign(name, value string) error { return t.Op("lit_assign", name, value) }

// Eval lowers e into its opcode sequence and appends every resulting
// instruction, leaving e's value on top of stack.
func (t *Tracer) Eval(e expr.Expr) error {
	instrs, err := linearize.LowerExpr(e)
	if err != nil {
		return err
	}
	for _, in := range instrs {
		if err := t.Op(in.Op, in.Args...); err != nil {
			return err
		}
	}
	return nil
}

// Assign lowers value and assigns the result to name.
func (t *Tracer) Assign(name string, value expr.Expr) error {
	if err := t.Eval(value); err != nil {
		return err
	}
	return t.AssignPop(name)
}

// ForkBool splits every active thread into a True-top and a False-top copy.
func (t *Tracer) ForkBool() error { return t.Op("fork_bool") }

// ForkWithNewVar splits every active thread, binding varname to valueA in
// one copy and valueB in the other.
func (t *Tracer) ForkWithNewVar(varname, valueA, valueB string) error {
	return t.Op("fork_with_new_var", varname, valueA, valueB)
}

// If branches the traced program on cond. Only one of then/els actually
// runs during any single trace pass — the call tree's two-phase cursor
// (calltree.CallTree.Branch) decides which, so that across up to K passes
// both arms eventually get walked and their instructions recorded under
// the same branch tag. cond is recorded as the expr.Expr the eventual
// "cond" instruction will lower and test; it is not evaluated here.
func (t *Tracer) If(cond expr.Expr, then, els func() error) error {
	goThen, err := t.tree.Branch(cond)
	if err != nil {
		return err
	}
	if goThen {
		if then != nil {
			if err := then(); err != nil {
				return err
			}
		}
	} else {
		if els != nil {
			if err := els(); err != nil {
				return err
			}
		}
	}
	return t.tree.Merge()
}

// MaxTraceIterations bounds how many times Trace re-runs fn looking for
// convergence (decided in SPEC_FULL.md §9: K=10,
// non-convergence reported as a diagnostic rather than failing silently).
const MaxTraceIterations = 10

// Trace runs fn against a fresh Tracer repeatedly, resetting the call
// tree's replay cursor between runs, until the tree reports every branch
// fully explored (calltree.CallTree.IsComplete) or MaxTraceIterations is
// exhausted. fn should be deterministic and side-effect-free besides its
// calls on the Tracer it's given — it is invoked once per iteration.
func Trace(fn func(t *Tracer) error) (*calltree.CallTree, *diagnostics.Diagnostics) {
	diags := &diagnostics.Diagnostics{}
	tr := New()
	for i := 0; i < MaxTraceIterations; i++ {
		tr.tree.ResetCursor()
		if err := fn(tr); err != nil {
			diags.Addf("C001", "", "trace iteration %d: %v", i, err)
			return tr.tree, diags
		}
		if tr.tree.IsComplete() {
			return tr.tree, diags
		}
	}
	diags.Addf("C000", "", "tracing did not converge after %d iterations", MaxTraceIterations)
	return tr.tree, diags
}
