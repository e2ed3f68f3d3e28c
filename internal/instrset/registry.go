package instrset

import (
	"fmt"

	"github.com/funvibe/rgxchess/internal/rule"
)

// Builder expands one opcode invocation (its build-time args) into the
// ordered rule list it compiles to.
type Builder func(args []any) ([]rule.Rule, error)

// Registry is the opcode-name -> Builder table internal/assemble looks up
// against, the Go equivalent of instruction_set.py's INSTRUCTIONS dict.
var Registry = map[string]Builder{
	"push":                    noArgsVariadic(func(a []any) ([]rule.Rule, error) { return Push(a[0]) }),
	"pop":                     fixed0(Pop),
	"dup":                     fixed0(Dup),
	"swap":                    fixed0(Swap),
	"peek":                    fixed0(Peek),
	"lookup":                  str1(Lookup),
	"indirect_lookup":         fixed0(IndirectLookup),
	"indirect_assign":         fixed0(IndirectAssign),
	"assign_pop":              str1(AssignPop),
	"is_stack_empty":          fixed0(IsStackEmpty),
	"eq":                      fixed0(Eq),
	"neq":                     fixed0(Neq),
	"isany":                   strList(IsAny),
	"boolean_not":             fixed0(BooleanNot),
	"boolean_and":             fixed0(BooleanAnd),
	"boolean_or":              fixed0(BooleanOr),
	"greater_than":            fixed0(GreaterThan),
	"less_than":               fixed0(LessThan),
	"greater_equal_than":      fixed0(GreaterEqualThan),
	"less_equal_than":         fixed0(LessEqualThan),
	"mod2_unary":              fixed0(Mod2Unary),
	"to_unary":                fixed0(ToUnary),
	"from_unary":              fixed0(FromUnary),
	"add_unary":               fixed0(AddUnary),
	"sub_unary":               fixed0(SubUnary),
	"string_cat":              fixed0(StringCat),
	"binary_add":              fixed0(BinaryAdd),
	"binary_subtract":         fixed0(BinarySubtract),
	"cond":                    str1(Cond),
	"reactivate":              str1(Reactivate),
	"pause":                   str1(Pause),
	"fork_bool":               fixed0(ForkBool),
	"fork_with_new_var":       forkWithNewVarBuilder,
	"fork_inactive":           str1(ForkInactive),
	"fork_list_pop":           fixed0(ForkListPop),
	"fix_double_list":         fixed0(FixDoubleList),
	"destroy_active_threads":  fixed0(DestroyActiveThreads),
	"join_pop":                fixed0(JoinPop),
	"list_pop":                fixed0(ListPop),
	"lit_assign":              litAssignBuilder,
	"assign":                  litAssignBuilder,
	"delete_var":              str1(DeleteVar),
	"variable_uniq":           str2(VariableUniq),
	"assign_stack_to":         str1(AssignStackTo),
}

// Build looks up opcode and expands it with args. Unknown opcodes are a
// fatal assembly-time error.
func Build(opcode string, args []any) ([]rule.Rule, error) {
	b, ok := Registry[opcode]
	if !ok {
		return nil, fmt.Errorf("instrset: unknown opcode %q", opcode)
	}
	return b(args)
}

func fixed0(f func() ([]rule.Rule, error)) Builder {
	return func(a []any) ([]rule.Rule, error) { return f() }
}

func noArgsVariadic(f func([]any) ([]rule.Rule, error)) Builder {
	return f
}

func str1(f func(string) ([]rule.Rule, error)) Builder {
	return func(a []any) ([]rule.Rule, error) {
		s, err := arg0String(a)
		if err != nil {
			return nil, err
		}
		return f(s)
	}
}

func str2(f func(string, string) ([]rule.Rule, error)) Builder {
	return func(a []any) ([]rule.Rule, error) {
		if len(a) != 2 {
			return nil, fmt.Errorf("instrset: expected 2 args, got %d", len(a))
		}
		s0, ok0 := a[0].(string)
		s1, ok1 := a[1].(string)
		if !ok0 || !ok1 {
			return nil, fmt.Errorf("instrset: expected string args")
		}
		return f(s0, s1)
	}
}

func strList(f func([]string) ([]rule.Rule, error)) Builder {
	return func(a []any) ([]rule.Rule, error) {
		if len(a) != 1 {
			return nil, fmt.Errorf("instrset: expected 1 arg, got %d", len(a))
		}
		list, ok := a[0].([]string)
		if !ok {
			return nil, fmt.Errorf("instrset: expected []string arg")
		}
		return f(list)
	}
}

func forkWithNewVarBuilder(a []any) ([]rule.Rule, error) {
	if len(a) != 3 {
		return nil, fmt.Errorf("instrset: fork_with_new_var expects 3 args, got %d", len(a))
	}
	name, ok0 := a[0].(string)
	va, ok1 := a[1].(string)
	vb, ok2 := a[2].(string)
	if !ok0 || !ok1 || !ok2 {
		return nil, fmt.Errorf("instrset: fork_with_new_var expects 3 string args")
	}
	return ForkWithNewVar(name, va, vb)
}

func litAssignBuilder(a []any) ([]rule.Rule, error) {
	if len(a) != 2 {
		return nil, fmt.Errorf("instrset: lit_assign/assign expect 2 args, got %d", len(a))
	}
	name, ok0 := a[0].(string)
	value, ok1 := a[1].(string)
	if !ok0 || !ok1 {
		return nil, fmt.Errorf("instrset: lit_assign/assign expect 2 string args")
	}
	return LitAssign(name, value)
}

func arg0String(a []any) (string, error) {
	if len(a) != 1 {
		return "", fmt.Errorf("instrset: expected 1 arg, got %d", len(a))
	}
	s, ok := a[0].(string)
	if !ok {
		return "", fmt.Errorf("instrset: expected string arg, got %T", a[0])
	}
	return s, nil
}
