// Package emit serializes an assembled rule list to the two external
// formats original_source/write_regex_json.py produces: a JSON document for
// consumption by any host language's own regex engine, and a standalone JS
// snippet that declares the rules as RegExp literals. Both formats
// prepend the same bootstrap rule write_regex_json.py does: an empty-input
// match that seeds the very first "%%\n#stack:\n" thread, since a freshly
// invoked program starts from nothing, not from a pre-existing text state.
package emit

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/funvibe/rgxchess/internal/rule"
)

// JSONRule is one (pattern, replacement) entry in the JSON document.
type JSONRule struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// bootstrapRule seeds an empty buffer into the program's single initial
// active thread before any assembled rule runs.
var bootstrapRule = rule.Rule{Pattern: `^$`, Replacement: "%%\n#stack:\n"}

// ToJSON renders rules (with the bootstrap rule prepended) as an indented
// JSON array of {"pattern", "replacement"} objects.
func ToJSON(rules []rule.Rule) (string, error) {
	all := append([]rule.Rule{bootstrapRule}, rules...)
	out := make([]JSONRule, len(all))
	for i, r := range all {
		out[i] = JSONRule{Pattern: r.Pattern, Replacement: r.Replacement}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("emit: marshal json: %w", err)
	}
	return string(b), nil
}

var backrefDigit = regexp.MustCompile(`\\([1-9])`)
var backrefNamed = regexp.MustCompile(`\\g<(\d+)>`)

// toJSReplacement rewrites \n / \g<n> backreferences to JavaScript's $n
// replacement syntax.
func toJSReplacement(repl string) string {
	repl = backrefNamed.ReplaceAllString(repl, `$$$1`)
	repl = backrefDigit.ReplaceAllString(repl, `$$$1`)
	return repl
}

// escapeJSPattern escapes characters that would otherwise terminate a
// JavaScript /pattern/ literal or introduce an unintended escape.
func escapeJSPattern(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '/':
			b.WriteString(`\/`)
		case '\n':
			b.WriteString(`\n`)
		default:
			if r > 127 {
				b.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func escapeJSString(s string) string {
	return strconv.Quote(s)
}

// ToJS renders rules (with the bootstrap rule prepended) as a standalone
// JavaScript snippet: a `regexOperation` array plus an `initialState`
// constant, mirroring write_regex_json.py's write_js_output. Each rule
// compiles to a /pattern/g RegExp literal; every rule gets the plain "g"
// flag, and no rule gets the multiline "m" flag.
func ToJS(rules []rule.Rule) (string, error) {
	all := append([]rule.Rule{bootstrapRule}, rules...)
	var b strings.Builder
	b.WriteString("const initialState = \"\";\n\n")
	b.WriteString("const regexOperation = [\n")
	for _, r := range all {
		pattern := escapeJSPattern(r.Pattern)
		repl := toJSReplacement(r.Replacement)
		fmt.Fprintf(&b, "  { pattern: /%s/g, replacement: %s },\n", pattern, escapeJSString(repl))
	}
	b.WriteString("];\n")
	return b.String(), nil
}
