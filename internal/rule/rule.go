// Package rule defines the rewrite rule type and the runtime
// that applies a compiled rule list to a text state (the Consumer
// contract, supplemented per SPEC_FULL.md so Testable Properties 1/2/6/7/8
// can be exercised end to end).
//
// Rule patterns use POSIX-like ERE syntax extended with backreferences
// (\1-\9, \g<n> for n>=10) in both pattern and replacement, applied as a
// global (all non-overlapping matches, left to right) substitution over the
// whole text state. Go's stdlib regexp (RE2) cannot backtrack or support
// backreferences at all, so the engine is built on github.com/dlclark/regexp2
// instead (grounded on _examples/other_examples/manifests/cogentcore-core
// and .../ProbeChain-go-probe, both of which depend on it for the same
// reason: backreference support no RE2 engine provides).
package rule

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Rule is one ordered (pattern, replacement) rewrite.
type Rule struct {
	Pattern     string
	Replacement string
}

// compiledRule caches the parsed pattern and a replacement template already
// translated from backslash backreferences to regexp2's $n syntax.
type compiledRule struct {
	Rule
	re   *regexp2.Regexp
	repl string
}

// Machine applies an ordered, compiled rule list to successive text states.
type Machine struct {
	compiled []compiledRule
}

// Compile parses every rule's pattern up front so Apply never pays
// compilation cost per call: a one-time compile step feeding a hot
// execution loop.
func Compile(rules []Rule) (*Machine, error) {
	compiled := make([]compiledRule, len(rules))
	for i, r := range rules {
		re, err := regexp2.Compile(r.Pattern, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("rule %d: bad pattern %q: %w", i, r.Pattern, err)
		}
		compiled[i] = compiledRule{Rule: r, re: re, repl: toDotNetReplacement(r.Replacement)}
	}
	return &Machine{compiled: compiled}, nil
}

// Apply runs every rule once, in order, against state and returns the
// resulting state (rewrite rule semantics;
// instruction composition).
func (m *Machine) Apply(state string) (string, error) {
	for i, c := range m.compiled {
		next, err := c.re.Replace(state, c.repl, -1, -1)
		if err != nil {
			return "", fmt.Errorf("rule %d (%q): %w", i, c.Pattern, err)
		}
		state = next
	}
	return state, nil
}

// Len reports how many rules the machine holds.
func (m *Machine) Len() int { return len(m.compiled) }

var backrefDigit = regexp.MustCompile(`\\([1-9])`)
var backrefNamed = regexp.MustCompile(`\\g<(\d+)>`)

// toDotNetReplacement rewrites \n (1-9) and \g<n> (n>=10) backreferences
// into regexp2's $n replacement syntax, the same translation
// write_regex_json.py performs for its JS emitter (internal/emit mirrors it
// for the JS output format; this is the runtime's independent need for the
// same rewrite, since regexp2's Replace uses $-syntax rather than
// backslash-syntax for group substitution).
func toDotNetReplacement(repl string) string {
	repl = backrefNamed.ReplaceAllString(repl, `$${$1}`)
	repl = backrefDigit.ReplaceAllString(repl, `$${$1}`)
	return repl
}
