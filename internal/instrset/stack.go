// Package instrset is the instruction library: for every
// opcode, the ordered list of rewrite-rule templates it expands to. Each
// function here, except BinaryAdd/BinarySubtract (which compose the unary
// primitives, see arith.go), is a direct, rule-for-rule port of the matching
// function in original_source/instruction_set.py — same patterns, same replacements,
// same backtick-sentinel trick to keep a later fallback rule from
// overwriting an earlier match within one instruction's rule list.
package instrset

import (
	"strconv"

	"github.com/funvibe/rgxchess/internal/state"
	"github.com/funvibe/rgxchess/internal/rule"
)

// Push prepends a constant to the stack section of the active thread(s).
// Integer constants are rendered as the wire's fixed-width binary literal
// (state.EncodeInt), matching instruction_set.py's push() int branch.
func Push(v any) ([]rule.Rule, error) {
	var literal string
	switch c := v.(type) {
	case int:
		lit, err := state.EncodeInt(c)
		if err != nil {
			return nil, err
		}
		literal = lit
	case string:
		literal = c
	default:
		return nil, errUnsupportedLiteral(v)
	}
	return []rule.Rule{
		{Pattern: `(%%\n#stack:\n)`, Replacement: `\1` + literal + "\n"},
	}, nil
}

// Pop removes the top stack value from every active thread.
func Pop() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: `(%%\n#stack:\n)([^\n]*)\n`, Replacement: `\1`},
	}, nil
}

// Dup duplicates the top stack value.
func Dup() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: `(%%\n#stack:\n)([^\n]*)\n`, Replacement: `\1\2` + "\n" + `\2` + "\n"},
	}, nil
}

// Swap exchanges the top two stack values.
func Swap() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: `(%%\n#stack:\n)([^\n]*)\n([^\n]*)\n`, Replacement: `\1\3` + "\n" + `\2` + "\n"},
	}, nil
}

// Peek is a no-op at the rule level: it exists so a traced program can read
// the top of stack via a later opcode without disturbing it.
func Peek() ([]rule.Rule, error) {
	return nil, nil
}

// Lookup copies variable's value onto the stack, leaving the variable in
// place.
func Lookup(variable string) ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     `(%%\n#stack:)([^%]*\n#` + variable + `: )([^#%]*)\n`,
			Replacement: `\1` + "\n" + `\3\2\3` + "\n",
		},
	}, nil
}

// IndirectLookup pops a variable name and pushes that variable's value.
func IndirectLookup() ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     `(%%\n#stack:\n)([^\n]+)\n([^%]*#\2: )([^#%\n]*)`,
			Replacement: `\1\4` + "\n" + `\3\4`,
		},
	}, nil
}

// IndirectAssign pops a value then a variable name, assigning the value to
// the named variable (creating it if absent). The three-step
// update-or-create-then-unmark shape is the "sentinel backtick" pattern
// (GLOSSARY): the first rule marks success so the create rule, scoped to
// "no backtick yet", cannot also fire.
func IndirectAssign() ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(%%)[^%]*#stack:\n([^\n]*)\n([^\n]*)\n([^%]*#\\3: )[^\n]*",
			Replacement: "\\1`\n#stack:\n\\4\\2",
		},
		{
			Pattern:     "(%%)([^`][^%]*#stack:\n)([^\n]*)\n([^\n]*)\n([^%]*$)",
			Replacement: "\\1`\\2\\5#\\4: \\3\n",
		},
		{
			Pattern:     "%%`",
			Replacement: "%%",
		},
	}, nil
}

// AssignPop pops the stack and overwrites varname if it exists, otherwise
// creates it at the end of the thread. Same sentinel-backtick shape as
// IndirectAssign.
func AssignPop(varname string) ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(%%)\n#stack:\n([^\n]*)\n([^%]*#" + varname + ": )[^\n]*",
			Replacement: "\\1`\n#stack:\n\\3\\2",
		},
		{
			Pattern:     "(%%)([^`]\n?#stack:\n)([^\n%]*)\n([^%]*)",
			Replacement: "\\1`\\2\\4#" + varname + ": \\3\n",
		},
		{
			Pattern:     "%%`",
			Replacement: "%%",
		},
	}, nil
}

// IsStackEmpty pushes True if the active thread's stack section is empty,
// False otherwise.
func IsStackEmpty() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)([^#%])", Replacement: "\\1`False\n\\2"},
		{Pattern: "(%%\n#stack:\n)([^`])", Replacement: "\\1True\n\\2"},
		{Pattern: "(%%\n#stack:\n)$", Replacement: "\\1True\n"},
		{Pattern: "`", Replacement: ""},
	}, nil
}

func errUnsupportedLiteral(v any) error {
	return &unsupportedLiteralError{v}
}

type unsupportedLiteralError struct{ v any }

func (e *unsupportedLiteralError) Error() string {
	return "instrset: unsupported push literal of type " + typeName(e.v)
}

func typeName(v any) string {
	switch v.(type) {
	case int:
		return "int"
	case string:
		return "string"
	default:
		return strconv.Quote("unknown")
	}
}
