package emit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/funvibe/rgxchess/internal/rule"
)

func TestToJSONPrependsBootstrapRule(t *testing.T) {
	out, err := ToJSON([]rule.Rule{{Pattern: "a", Replacement: "b"}})
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var decoded []JSONRule
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("ToJSON produced %d entries, want 2 (bootstrap + 1)", len(decoded))
	}
	if decoded[0].Pattern != `^$` || decoded[0].Replacement != "%%\n#stack:\n" {
		t.Fatalf("bootstrap rule = %+v", decoded[0])
	}
	if decoded[1].Pattern != "a" || decoded[1].Replacement != "b" {
		t.Fatalf("second rule = %+v", decoded[1])
	}
}

func TestToJSONEmptyRuleList(t *testing.T) {
	out, err := ToJSON(nil)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var decoded []JSONRule
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("ToJSON(nil) produced %d entries, want 1 (bootstrap only)", len(decoded))
	}
}

func TestToJSReplacementRewritesDigitBackrefs(t *testing.T) {
	// toJSReplacement turns \n digit backreferences into JavaScript's $n
	// replacement syntax.
	repl := `\1-\2`
	js := toJSReplacement(repl)
	if !strings.Contains(js, "$1") || !strings.Contains(js, "$2") {
		t.Fatalf("toJSReplacement(%q) = %q, want $1/$2 substitution", repl, js)
	}
}

func TestEscapeJSPatternEscapesSlashAndNewline(t *testing.T) {
	got := escapeJSPattern("a/b\nc")
	want := `a\/b\nc`
	if got != want {
		t.Fatalf("escapeJSPattern = %q, want %q", got, want)
	}
}

func TestEscapeJSPatternEscapesNonASCII(t *testing.T) {
	got := escapeJSPattern("café")
	want := "caf" + `\u00e9`
	if got != want {
		t.Fatalf("escapeJSPattern(%q) = %q, want %q", "café", got, want)
	}
}

func TestToJSProducesRegexOperationArray(t *testing.T) {
	out, err := ToJS([]rule.Rule{{Pattern: "a/b", Replacement: `\1`}})
	if err != nil {
		t.Fatalf("ToJS: %v", err)
	}
	if !strings.Contains(out, "const regexOperation = [") {
		t.Fatalf("ToJS output missing regexOperation declaration:\n%s", out)
	}
	if !strings.Contains(out, `/a\/b/g`) {
		t.Fatalf("ToJS output missing escaped pattern:\n%s", out)
	}
	if !strings.Contains(out, "$1") {
		t.Fatalf("ToJS output missing rewritten backreference:\n%s", out)
	}
}
