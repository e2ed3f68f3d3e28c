// Package state implements the canonical text-state format: threads, each
// with a stack section and a set of named variables, concatenated into one
// string with no thread separator beyond each thread's own header.
//
// Grounded on tests.py's CPUState.to_string/from_string (parse/reserialize
// round trip), generalized from a single-thread dataclass to the full
// multi-thread grammar.
package state

import (
	"fmt"
	"strings"
)

// Variable is one "#name: value" line within a thread.
type Variable struct {
	Name  string
	Value string
}

// Thread is one "%%"- or "%TAG"-prefixed region of the text state.
type Thread struct {
	Active bool   // true when the header is "%%"
	Tag    string // set when !Active
	Stack  []string
	Vars   []Variable // insertion order preserved, for byte-exact round trips
}

// Lookup returns the value of the named variable and whether it exists.
func (t *Thread) Lookup(name string) (string, bool) {
	for _, v := range t.Vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// State is the full text-state buffer: one or more threads.
type State struct {
	Threads []Thread
}

// Parse decodes a wire-format text state into its threads/stacks/variables.
func Parse(s string) (*State, error) {
	lines := strings.Split(s, "\n")
	// A well-formed state always ends with "\n"; Split then yields a
	// trailing empty element we must drop before walking thread boundaries.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var st State
	i := 0
	for i < len(lines) {
		header := lines[i]
		var th Thread
		switch {
		case header == "%%":
			th.Active = true
		case strings.HasPrefix(header, "%"):
			th.Active = false
			th.Tag = header[1:]
		default:
			return nil, fmt.Errorf("state: expected thread header at line %d, got %q", i, header)
		}
		i++

		if i >= len(lines) || lines[i] != "#stack:" {
			return nil, fmt.Errorf("state: expected \"#stack:\" after header, got %q", peek(lines, i))
		}
		i++

		for i < len(lines) && !strings.HasPrefix(lines[i], "#") && !strings.HasPrefix(lines[i], "%") {
			th.Stack = append(th.Stack, lines[i])
			i++
		}

		for i < len(lines) && strings.HasPrefix(lines[i], "#") {
			name, value, ok := splitVar(lines[i])
			if !ok {
				return nil, fmt.Errorf("state: malformed variable line %q", lines[i])
			}
			th.Vars = append(th.Vars, Variable{Name: name, Value: value})
			i++
		}

		st.Threads = append(st.Threads, th)
	}
	return &st, nil
}

func peek(lines []string, i int) string {
	if i >= len(lines) {
		return "<eof>"
	}
	return lines[i]
}

func splitVar(line string) (name, value string, ok bool) {
	rest := line[1:] // drop leading '#'
	idx := strings.Index(rest, ": ")
	if idx < 0 {
		return "", "", false
	}
	return rest[:idx], rest[idx+2:], true
}

// String reserializes the state to wire format. Parse(s.String()) round
// trips byte-for-byte for any State produced by Parse (Testable Property 1).
func (s *State) String() string {
	var b strings.Builder
	for _, th := range s.Threads {
		if th.Active {
			b.WriteString("%%\n")
		} else {
			b.WriteString("%")
			b.WriteString(th.Tag)
			b.WriteString("\n")
		}
		b.WriteString("#stack:\n")
		for _, v := range th.Stack {
			b.WriteString(v)
			b.WriteString("\n")
		}
		for _, v := range th.Vars {
			b.WriteString("#")
			b.WriteString(v.Name)
			b.WriteString(": ")
			b.WriteString(v.Value)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ActiveThreads returns the indices of every currently active ("%%") thread.
func (s *State) ActiveThreads() []int {
	var out []int
	for i, th := range s.Threads {
		if th.Active {
			out = append(out, i)
		}
	}
	return out
}
