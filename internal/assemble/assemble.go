// Package assemble turns a linear instruction stream (internal/linearize)
// into the final ordered []rule.Rule list the compiled program runs as —
// the Go equivalent of compiler.py's create(), which looks an opcode name
// up in the instruction_set.py INSTRUCTIONS table and concatenates every
// instruction's expansion in sequence.
package assemble

import (
	"github.com/funvibe/rgxchess/internal/diagnostics"
	"github.com/funvibe/rgxchess/internal/instrset"
	"github.com/funvibe/rgxchess/internal/instrset/chessops"
	"github.com/funvibe/rgxchess/internal/linearize"
	"github.com/funvibe/rgxchess/internal/rule"
)

// Assemble expands every instruction in stream, in order, concatenating
// their rule expansions into one flat rule list. An unknown opcode is
// recorded as a fatal diagnostic (code "A000") and assembly stops: there is
// no recovery path once assembly fails.
func Assemble(stream []linearize.Instr) ([]rule.Rule, *diagnostics.Diagnostics) {
	var diags diagnostics.Diagnostics
	var out []rule.Rule

	for i, instr := range stream {
		rules, err := build(instr.Op, instr.Args)
		if err != nil {
			diags.Addf("A000", instr.Op, "instruction %d: %v", i, err)
			return nil, &diags
		}
		out = append(out, rules...)
	}
	return out, &diags
}

// build looks opcode up in the core instruction set first, then the
// chess-domain extension table, so a name collision would always resolve
// to the core set (none exist today; core and chessops opcode names are
// disjoint by construction).
func build(opcode string, args []any) ([]rule.Rule, error) {
	if b, ok := instrset.Registry[opcode]; ok {
		return b(args)
	}
	if b, ok := chessops.Registry[opcode]; ok {
		return b(args)
	}
	return instrset.Build(opcode, args) // produces the "unknown opcode" error uniformly
}
