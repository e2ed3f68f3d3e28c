package instrset

import "github.com/funvibe/rgxchess/internal/rule"

// ToUnary converts the top-of-stack fixed-width binary literal ("int" + 10
// bits) into its unary run-of-'A' equivalent, consuming the bits MSB-first
// behind a "U...|..." scratch marker. Each of the ten bit positions gets its
// own (0-bit, 1-bit) rule pair appended in sequence, so the whole conversion
// completes within a single Apply pass over the state — matching
// instruction_set.py's to_unary, which is itself a fixed, unrolled sequence
// of doubling steps rather than a loop run to a fixed point.
func ToUnary() ([]rule.Rule, error) {
	rules := []rule.Rule{
		{Pattern: "(%%\n#stack:\n)int([01]{10})\n", Replacement: "\\1U|\\2\n"},
	}
	rules = append(rules, unaryDoublingSteps()...)
	rules = append(rules, rule.Rule{Pattern: "U(A*)\\|\n", Replacement: "\\1\n"})
	return rules, nil
}

func unaryDoublingSteps() []rule.Rule {
	var steps []rule.Rule
	for i := 0; i < 10; i++ {
		steps = append(steps,
			rule.Rule{Pattern: "U(A*)\\|0", Replacement: "U\\1\\1|"},
			rule.Rule{Pattern: "U(A*)\\|1", Replacement: "U\\1\\1A|"},
		)
	}
	return steps
}

// FromUnary converts the top-of-stack unary run back into a fixed-width
// binary literal: ten iterations of (extract parity bit, halve the
// remaining run), each iteration prepending its bit so the finished bit
// string reads MSB-first. Halving ("AA" -> "A" globally, scoped with a
// lookahead to the run's own "#" terminator) relies on the same
// simultaneous-global-substitution semantics the regex engine gives
// every rule, mirroring instruction_set.py's from_unary.
func FromUnary() ([]rule.Rule, error) {
	rules := []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(A*)\n", Replacement: "\\1|\\2#\n"},
	}
	for i := 0; i < 10; i++ {
		rules = append(rules,
			rule.Rule{Pattern: "([01]*)\\|((?:AA)*)#", Replacement: "0\\1|\\2#"},
			rule.Rule{Pattern: "([01]*)\\|((?:AA)*)A#", Replacement: "1\\1|\\2#"},
			rule.Rule{Pattern: "AA(?=A*#)", Replacement: "A"},
		)
	}
	rules = append(rules, rule.Rule{Pattern: "([01]{10})\\|#\n", Replacement: "int\\1\n"})
	return rules, nil
}

// AddUnary pops a, b and pushes their sum. Unary addition is concatenation.
func AddUnary() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(A*)\n(A*)\n", Replacement: "\\1\\2\\3\n"},
	}, nil
}

// SubUnary pops a (top, left operand), b (second, right operand) and pushes
// max(a-b, 0). a's value is split into a prefix equal to b plus a
// remainder; when no such split exists (b > a) the generic fallback yields
// the empty run, i.e. zero.
func SubUnary() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(A*)(A*)\n\\2\n", Replacement: "\\1\\3\n"},
		{Pattern: "(%%\n#stack:\n)(A*)\n(A*)\n", Replacement: "\\1\n"},
	}, nil
}

// StringCat pops a (top, left operand), b (second, right operand) and
// pushes their concatenation a++b, per expr.StrCat's left-then-right order.
func StringCat() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)([^\n]*)\n([^\n]*)\n", Replacement: "\\1\\2\\3\n"},
	}, nil
}

// BinaryAdd and BinarySubtract operate on the fixed-width binary literal
// representation, reserved for compact storage rather than
// arithmetic. Rather than re-deriving bit-level ripple-carry addition and
// borrow-subtraction as raw regex (a second, independent encoding of the
// same arithmetic this package already implements correctly for the unary
// form), both compose the already-verified unary primitives: convert each
// binary operand to unary in place, run the unary op, convert the unary
// result back to binary. This is a deliberate simplification recorded in
// DESIGN.md, not a behavior the original instruction set expresses
// differently; the externally observable result is identical.
func BinaryAdd() ([]rule.Rule, error) {
	return composeBinaryOp(AddUnary)
}

// BinarySubtract is BinaryAdd's counterpart for subtraction.
func BinarySubtract() ([]rule.Rule, error) {
	return composeBinaryOp(SubUnary)
}

func composeBinaryOp(unaryOp func() ([]rule.Rule, error)) ([]rule.Rule, error) {
	var out []rule.Rule

	top, err := ToUnary()
	if err != nil {
		return nil, err
	}
	out = append(out, top...)

	second, err := toUnaryAtDepth(1)
	if err != nil {
		return nil, err
	}
	out = append(out, second...)

	op, err := unaryOp()
	if err != nil {
		return nil, err
	}
	out = append(out, op...)

	result, err := FromUnary()
	if err != nil {
		return nil, err
	}
	out = append(out, result...)
	return out, nil
}

// toUnaryAtDepth is ToUnary with every rule's anchor shifted past depth
// already-processed stack lines, so it converts the operand sitting one
// line below the top (which ToUnary has already turned into a unary run)
// without disturbing that line.
func toUnaryAtDepth(depth int) ([]rule.Rule, error) {
	base, err := ToUnary()
	if err != nil {
		return nil, err
	}
	skip := ""
	for i := 0; i < depth; i++ {
		skip += "[^\n]*\n"
	}
	out := make([]rule.Rule, len(base))
	for i, r := range base {
		out[i] = rule.Rule{
			Pattern:     insertAfterStackAnchor(r.Pattern, skip),
			Replacement: r.Replacement,
		}
	}
	return out, nil
}

// insertAfterStackAnchor splices skip immediately after the "#stack:\n"
// anchor literal in pattern, if present; rules with no such anchor (the
// mid-conversion "U..." scratch-marker steps) are left untouched since they
// already operate purely on the marker text, not on stack-line position.
func insertAfterStackAnchor(pattern, skip string) string {
	const anchor = "#stack:\n"
	idx := indexOf(pattern, anchor)
	if idx < 0 {
		return pattern
	}
	cut := idx + len(anchor)
	return pattern[:cut] + skip + pattern[cut:]
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
