// Package diagnostics implements the compiler's structured error reporting:
// a small code+context+message record appended to a list, rather than bare
// fmt.Errorf strings threaded through return values.
package diagnostics

import "fmt"

// Diagnostic is one compile-time error: unknown opcode, kind
// mismatch during lowering, non-convergent tracing, inconsistent branch
// structure, or an unsupported literal type. All are fatal.
type Diagnostic struct {
	Code    string // e.g. "C000" tracing, "L000" linearizer, "A000" assembler
	Context string // opcode name, call-tree path, or tag the error concerns
	Message string
}

func (d *Diagnostic) Error() string {
	if d.Context == "" {
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Code, d.Context, d.Message)
}

// New builds a Diagnostic.
func New(code, context, message string) *Diagnostic {
	return &Diagnostic{Code: code, Context: context, Message: message}
}

// Newf builds a Diagnostic with a formatted message.
func Newf(code, context, format string, args ...any) *Diagnostic {
	return New(code, context, fmt.Sprintf(format, args...))
}

// Diagnostics accumulates Diagnostic values across a compile stage. The
// Driver (internal/compiler) treats a non-empty accumulator as fatal and
// stops the pipeline: no recovery once it happens.
type Diagnostics struct {
	items []*Diagnostic
}

func (d *Diagnostics) Add(diag *Diagnostic) {
	d.items = append(d.items, diag)
}

func (d *Diagnostics) Addf(code, context, format string, args ...any) {
	d.Add(Newf(code, context, format, args...))
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.items) > 0
}

func (d *Diagnostics) All() []*Diagnostic {
	return d.items
}

// First returns the first recorded diagnostic, or nil.
func (d *Diagnostics) First() *Diagnostic {
	if len(d.items) == 0 {
		return nil
	}
	return d.items[0]
}
