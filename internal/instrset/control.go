package instrset

import "github.com/funvibe/rgxchess/internal/rule"

// Cond pops a bool and relabels the current active thread's header with
// tag+"True" or tag+"False", deactivating it until a matching Reactivate
// brings it back. This is how a runtime (not trace-time) branch — chess
// move legality depends on piece placement the tracer cannot see ahead of
// time — gets realized as two disjoint sets of inactive threads the
// assembled rule list's two arms reactivate independently.
func Cond(tag string) ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "%%\n#stack:\nTrue\n", Replacement: "%" + tag + "True\n#stack:\n"},
		{Pattern: "%%\n#stack:\nFalse\n", Replacement: "%" + tag + "False\n#stack:\n"},
	}, nil
}

// Reactivate turns every thread tagged exactly tag back into an active
// ("%%") thread.
func Reactivate(tag string) ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "%" + tag + "\n", Replacement: "%%\n"},
	}, nil
}

// Pause deactivates the current active thread(s) under tag, the inverse of
// Reactivate.
func Pause(tag string) ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "%%\n", Replacement: "%" + tag + "\n"},
	}, nil
}

// ForkBool splits every active thread into two: one with True pushed, one
// with False. Both copies keep the original thread's stack and variables
// (\2), diverging only in the new top-of-stack value.
func ForkBool() ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(%%\n#stack:\n)([^%]*)",
			Replacement: "\\1True\n\\2\\1False\n\\2",
		},
	}, nil
}

// ForkWithNewVar splits every active thread into two, each keeping the
// original stack/vars and additionally binding varname to valueA in the
// first copy and valueB in the second — used where a traced program
// iterates a fixed two-way domain value (e.g. a piece color) rather than a
// stack boolean.
func ForkWithNewVar(varname, valueA, valueB string) ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(%%\n#stack:\n)([^%]*)",
			Replacement: "\\1\\2#" + varname + ": " + valueA + "\n" + "\\1\\2#" + varname + ": " + valueB + "\n",
		},
	}, nil
}

// ForkInactive duplicates every active thread's body into a new thread
// tagged tag, left inactive, while the original stays active — used to
// park a copy of the current computation for a later Reactivate rather
// than branch the live thread itself.
func ForkInactive(tag string) ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(%%\n#stack:\n)([^%]*)",
			Replacement: "\\1\\2%" + tag + "\n#stack:\n\\2",
		},
	}, nil
}

// maxForkListItems bounds how many elements ForkListPop can spread across
// threads in one call. Chess domains here never exceed a few dozen
// candidate squares or pieces per fork point, so 64 is ample headroom
// without requiring unbounded-arity regex (which the rule grammar, a fixed
// ordered list compiled once, cannot express).
const maxForkListItems = 64

// ForkListPop pops a comma-joined list value and, for each item but the
// last, spins off a new active thread carrying just that one item on top
// of stack; the last item stays in the original thread. Each peel reuses
// ForkBool's duplicate-then-diverge shape, repeated up to maxForkListItems
// times so one Apply pass exhausts lists of any length up to the bound.
func ForkListPop() ([]rule.Rule, error) {
	peel := rule.Rule{
		Pattern:     "(%%\n#stack:\n)([^,\n]+),([^\n]*)\n([^%]*)",
		Replacement: "\\1\\3\n\\4\\1\\2\n\\4",
	}
	rules := make([]rule.Rule, maxForkListItems-1)
	for i := range rules {
		rules[i] = peel
	}
	return rules, nil
}

// FixDoubleList repairs the leading-comma/empty-segment artifacts
// ForkListPop's peeling can leave behind when the source list had fewer
// than maxForkListItems-1 entries.
func FixDoubleList() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: ",,", Replacement: ","},
		{Pattern: "^,", Replacement: ""},
		{Pattern: ",\n", Replacement: "\n"},
	}, nil
}

// DestroyActiveThreads removes every currently active thread outright —
// used to collapse branches a runtime check has rejected.
func DestroyActiveThreads() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "%%\n#stack:\n[^%]*", Replacement: ""},
	}, nil
}

// JoinPop collapses every active thread back into (at most) one: each
// active thread's top-of-stack bool is popped and OR-reduced, the survivor
// keeps the reduced result, and the rest are destroyed. This realizes the
// common case ForkBool's two branches rejoin into — any True survives.
func JoinPop() ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(?:%%\n#stack:\nFalse\n[^%]*)*%%\n#stack:\nTrue\n([^%]*)(?:%%\n#stack:\n(?:True|False)\n[^%]*)*",
			Replacement: "%%\n#stack:\nTrue\n\\1",
		},
		{
			Pattern:     "%%\n#stack:\nFalse\n([^%]*)(?:%%\n#stack:\nFalse\n[^%]*)+",
			Replacement: "%%\n#stack:\nFalse\n\\1",
		},
	}, nil
}

// ListPop splits a comma-joined list value on top of stack into its head
// item (pushed back on top) and the remainder (pushed below it), the
// sequential counterpart to ForkListPop's thread-spreading version.
func ListPop() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)([^,\n]*),([^\n]*)\n", Replacement: "\\1`\\2\n\\3\n"},
		{Pattern: "(%%\n#stack:\n)([^`\n]*)\n", Replacement: "\\1\\2\n\n"},
		clearSentinel,
	}, nil
}
