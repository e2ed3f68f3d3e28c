package instrset

import "testing"

func TestBuildUnknownOpcode(t *testing.T) {
	if _, err := Build("not_a_real_opcode", nil); err == nil {
		t.Fatalf("expected error for unknown opcode")
	}
}

func TestBuildDispatchesToRegisteredOpcodes(t *testing.T) {
	cases := []struct {
		opcode string
		args   []any
	}{
		{"push", []any{"AAA"}},
		{"pop", nil},
		{"dup", nil},
		{"swap", nil},
		{"lookup", []any{"x"}},
		{"eq", nil},
		{"neq", nil},
		{"isany", []any{[]string{"a", "b"}}},
		{"boolean_not", nil},
		{"greater_than", nil},
		{"to_unary", nil},
		{"from_unary", nil},
		{"binary_add", nil},
		{"cond", []any{"UID0"}},
		{"reactivate", []any{"UID0True"}},
		{"fork_bool", nil},
		{"fork_with_new_var", []any{"color", "white", "black"}},
		{"fork_inactive", []any{"UID0"}},
		{"list_pop", nil},
		{"lit_assign", []any{"x", "5"}},
		{"assign", []any{"x", "5"}},
		{"delete_var", []any{"x"}},
		{"variable_uniq", []any{"i", "i_1"}},
		{"assign_stack_to", []any{"x"}},
	}
	for _, c := range cases {
		rules, err := Build(c.opcode, c.args)
		if err != nil {
			t.Fatalf("Build(%q): %v", c.opcode, err)
		}
		if rules == nil && c.opcode != "peek" {
			t.Fatalf("Build(%q) returned no rules", c.opcode)
		}
	}
}

func TestBuildRejectsWrongArgShape(t *testing.T) {
	if _, err := Build("lookup", nil); err == nil {
		t.Fatalf("expected error for lookup with no args")
	}
	if _, err := Build("variable_uniq", []any{"only-one"}); err == nil {
		t.Fatalf("expected error for variable_uniq with one arg")
	}
	if _, err := Build("fork_with_new_var", []any{"color", "white"}); err == nil {
		t.Fatalf("expected error for fork_with_new_var with two args")
	}
	if _, err := Build("isany", []any{"not-a-slice"}); err == nil {
		t.Fatalf("expected error for isany with non-[]string arg")
	}
}
