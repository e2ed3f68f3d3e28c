package rule

import "testing"

// Testable Property 2 (instruction composition): applying an instruction's
// rule list in order produces the same result as applying each rule
// individually in sequence — which Apply already does by construction, so
// this exercises that a multi-rule instruction (push then a later
// transform) composes correctly end to end.
func TestApplyComposesRulesInOrder(t *testing.T) {
	m, err := Compile([]Rule{
		{Pattern: `(%%\n#stack:\n)`, Replacement: `\1AAA` + "\n"},
		{Pattern: `(%%\n#stack:\n)([^\n]*)\n`, Replacement: `\1\2` + "\n" + `\2` + "\n"},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := m.Apply("%%\n#stack:\n")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "%%\n#stack:\nAAA\nAAA\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApplyBackreferenceSubstitution(t *testing.T) {
	m, err := Compile([]Rule{
		{Pattern: `(%%\n#stack:\n)([^\n]*)\n([^\n]*)\n`, Replacement: `\1\3` + "\n" + `\2` + "\n"},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := m.Apply("%%\n#stack:\nfirst\nsecond\n")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "%%\n#stack:\nsecond\nfirst\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApplyRunsEveryThreadSimultaneously(t *testing.T) {
	m, err := Compile([]Rule{
		{Pattern: `(%%\n#stack:\n)([^\n]*)\n`, Replacement: `\1\2` + "\n" + `\2` + "\n"},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := m.Apply("%%\n#stack:\nA\n%%\n#stack:\nB\n")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "%%\n#stack:\nA\nA\n%%\n#stack:\nB\nB\n"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestCompileBadPattern(t *testing.T) {
	if _, err := Compile([]Rule{{Pattern: "(unterminated", Replacement: ""}}); err == nil {
		t.Fatalf("expected compile error for unterminated group")
	}
}
