package instrset

import "github.com/funvibe/rgxchess/internal/rule"

// LitAssign creates or overwrites varname with a literal constant value,
// without touching the stack. Same sentinel-backtick update-or-create shape
// as AssignPop: the overwrite rule marks its thread so the create rule,
// guarded against an already-present backtick, cannot also fire on it.
func LitAssign(varname, value string) ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(%%)([^%]*#" + varname + ": )[^\n]*",
			Replacement: "\\1`\\2" + value,
		},
		{
			Pattern:     "(%%)([^`][^%]*)$",
			Replacement: "\\1`\\2#" + varname + ": " + value + "\n",
		},
		{
			Pattern:     "%%`",
			Replacement: "%%",
		},
	}, nil
}

// Assign is an alias of LitAssign: it stores a value already known at trace
// time as a Go string and does not touch the stack (AssignPop covers the
// stack-sourced case).
func Assign(varname, value string) ([]rule.Rule, error) {
	return LitAssign(varname, value)
}

// DeleteVar removes varname's line entirely from every thread that has it.
func DeleteVar(varname string) ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "#" + varname + ": [^\n]*\n", Replacement: ""},
	}, nil
}

// VariableUniq renames varname to a fresh, call-site-unique name (newName)
// across every thread — used when a traced loop iteration needs its own
// private copy of a loop-local variable instead of sharing one slot.
func VariableUniq(varname, newName string) ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "#" + varname + ": ", Replacement: "#" + newName + ": "},
	}, nil
}

// AssignStackTo pops the top of stack and stores it into varname,
// overwriting it if present, appending it if not. Identical shape to
// AssignPop, registered under its own opcode name; internal/linearize never
// emits it, so it is reached only by name (e.g. through Tracer.Op).
func AssignStackTo(varname string) ([]rule.Rule, error) {
	return AssignPop(varname)
}
