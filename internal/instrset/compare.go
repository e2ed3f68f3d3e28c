package instrset

import (
	"regexp"
	"strings"

	"github.com/funvibe/rgxchess/internal/rule"
)

// clearSentinel is appended to every comparator/boolean rule list: once the
// deciding rule has marked its result with a backtick, this drops the
// marker. Same shape as IsStackEmpty's cleanup rule.
var clearSentinel = rule.Rule{Pattern: "`", Replacement: ""}

// Eq pops two values and pushes True if they are textually identical, False
// otherwise.
func Eq() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)([^\n]*)\n\\2\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)([^`][^\n]*)\n([^\n]*)\n", Replacement: "\\1`False\n"},
		clearSentinel,
	}, nil
}

// Neq is Eq with the two outcomes swapped.
func Neq() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)([^\n]*)\n\\2\n", Replacement: "\\1`False\n"},
		{Pattern: "(%%\n#stack:\n)([^`][^\n]*)\n([^\n]*)\n", Replacement: "\\1`True\n"},
		clearSentinel,
	}, nil
}

// IsAny pops one value and pushes True if it equals any of options, False
// otherwise.
func IsAny(options []string) ([]rule.Rule, error) {
	escaped := make([]string, len(options))
	for i, o := range options {
		escaped[i] = regexp.QuoteMeta(o)
	}
	alt := strings.Join(escaped, "|")
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(?:" + alt + ")\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)([^`\n]*)\n", Replacement: "\\1`False\n"},
		clearSentinel,
	}, nil
}

// BooleanNot pops a bool and pushes its negation.
func BooleanNot() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)True\n", Replacement: "\\1`False\n"},
		{Pattern: "(%%\n#stack:\n)False\n", Replacement: "\\1`True\n"},
		clearSentinel,
	}, nil
}

// BooleanAnd pops two bools and pushes their conjunction.
func BooleanAnd() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)True\nTrue\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)(?:True|False)\n(?:True|False)\n", Replacement: "\\1`False\n"},
		clearSentinel,
	}, nil
}

// BooleanOr pops two bools and pushes their disjunction.
func BooleanOr() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)False\nFalse\n", Replacement: "\\1`False\n"},
		{Pattern: "(%%\n#stack:\n)(?:True|False)\n(?:True|False)\n", Replacement: "\\1`True\n"},
		clearSentinel,
	}, nil
}

// The four unary-integer comparators share one shape: the left operand (the
// expression lowering leaves it on top of stack, per SPEC_FULL.md's
// rightmost-operand-first evaluation order) and the right operand
// (second-from-top) are both runs of 'A' characters. Equality of the
// shorter run to a prefix of the longer one is tested by capturing it once
// and requiring the backreference to match exactly on the other line;
// regexp2's backtracking finds the right split since Go's RE2 could not.

// GreaterThan pops a, b (a on top) and pushes True iff a > b.
func GreaterThan() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(A*)A+\n\\2\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)(A*)\n(A*)\n", Replacement: "\\1`False\n"},
		clearSentinel,
	}, nil
}

// LessThan pops a, b (a on top) and pushes True iff a < b.
func LessThan() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(A*)\n\\2A+\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)(A*)\n(A*)\n", Replacement: "\\1`False\n"},
		clearSentinel,
	}, nil
}

// GreaterEqualThan pops a, b (a on top) and pushes True iff a >= b.
func GreaterEqualThan() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(A*)A*\n\\2\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)(A*)\n(A*)\n", Replacement: "\\1`False\n"},
		clearSentinel,
	}, nil
}

// LessEqualThan pops a, b (a on top) and pushes True iff a <= b.
func LessEqualThan() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(A*)\n\\2A*\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)(A*)\n(A*)\n", Replacement: "\\1`False\n"},
		clearSentinel,
	}, nil
}

// Mod2Unary pops a unary value and pushes True if it is odd, False if even.
func Mod2Unary() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(?:AA)*A\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)(?:AA)*\n", Replacement: "\\1`False\n"},
		clearSentinel,
	}, nil
}
