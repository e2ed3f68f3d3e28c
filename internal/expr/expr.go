// Package expr implements the expression tree the tracing environment
// records when a traced program compares, combines, or extracts values.
//
// It is the statically typed replacement for the Python Tracer's operator
// overloading (compiler.py's Tracer.__eq__/__add__/...): one Go type per
// operator shape instead of runtime dispatch on dunder methods.
package expr

// Kind is the inferred type of an expression's value.
type Kind int

const (
	KindStr Kind = iota
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindStr:
		return "str"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Op identifies the operator a BinOp or Unary node applies.
type Op int

const (
	OpEq Op = iota
	OpNeq
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
	OpNot
	OpAdd
	OpSub
	OpStrCat
	OpMod2
)

// Expr is any node in the expression tree.
type Expr interface {
	Kind() Kind
	exprNode()
}

// Lit is a literal integer or string.
type Lit struct {
	IntVal int
	StrVal string
	K      Kind
}

func Int(v int) *Lit  { return &Lit{IntVal: v, K: KindInt} }
func Str(v string) *Lit { return &Lit{StrVal: v, K: KindStr} }

func (l *Lit) Kind() Kind { return l.K }
func (*Lit) exprNode()    {}

// Var is a direct variable lookup.
type Var struct {
	Name string
	K    Kind
}

func (v *Var) Kind() Kind { return v.K }
func (*Var) exprNode()    {}

// Indirect looks up the variable whose name is itself the result of Name.
type Indirect struct {
	Name Expr
}

func (*Indirect) Kind() Kind { return KindStr }
func (*Indirect) exprNode()  {}

// BinOp is a two-operand operator node (comparisons, boolean and/or,
// arithmetic, string concatenation).
type BinOp struct {
	Op          Op
	Left, Right Expr
	K           Kind
}

func (b *BinOp) Kind() Kind { return b.K }
func (*BinOp) exprNode()    {}

// Unary is a one-operand operator node (boolean not, mod-2).
type Unary struct {
	Op   Op
	X    Expr
	K    Kind
}

func (u *Unary) Kind() Kind { return u.K }
func (*Unary) exprNode()    {}

// IsAny tests membership of X's value in a fixed, build-time option set.
type IsAny struct {
	X       Expr
	Options []string
}

func (*IsAny) Kind() Kind { return KindBool }
func (*IsAny) exprNode()  {}

// Fen extracts the leading whitespace-delimited field of X's value.
type Fen struct {
	X Expr
}

func (*Fen) Kind() Kind { return KindStr }
func (*Fen) exprNode()  {}

// Constructors mirroring compiler.py's Tracer operator overloads.

func Eq(l, r Expr) *BinOp  { return &BinOp{Op: OpEq, Left: l, Right: r, K: KindBool} }
func Neq(l, r Expr) *BinOp { return &BinOp{Op: OpNeq, Left: l, Right: r, K: KindBool} }
func Lt(l, r Expr) *BinOp  { return &BinOp{Op: OpLt, Left: l, Right: r, K: KindBool} }
func Gt(l, r Expr) *BinOp  { return &BinOp{Op: OpGt, Left: l, Right: r, K: KindBool} }
func Le(l, r Expr) *BinOp  { return &BinOp{Op: OpLe, Left: l, Right: r, K: KindBool} }
func Ge(l, r Expr) *BinOp  { return &BinOp{Op: OpGe, Left: l, Right: r, K: KindBool} }
func And(l, r Expr) *BinOp { return &BinOp{Op: OpAnd, Left: l, Right: r, K: KindBool} }
func Or(l, r Expr) *BinOp  { return &BinOp{Op: OpOr, Left: l, Right: r, K: KindBool} }
func Not(x Expr) *Unary    { return &Unary{Op: OpNot, X: x, K: KindBool} }
func Mod2(x Expr) *Unary   { return &Unary{Op: OpMod2, X: x, K: KindBool} }

// Add mirrors Tracer.__add__: string kind means concatenation, otherwise
// integer addition (a negative literal operand lowers to Sub, matching the
// Python `other < 0` special case).
func Add(l, r Expr) Expr {
	if l.Kind() == KindStr {
		return &BinOp{Op: OpStrCat, Left: l, Right: r, K: KindStr}
	}
	if lit, ok := r.(*Lit); ok && lit.K == KindInt && lit.IntVal < 0 {
		return &BinOp{Op: OpSub, Left: l, Right: Int(-lit.IntVal), K: KindInt}
	}
	return &BinOp{Op: OpAdd, Left: l, Right: r, K: KindInt}
}

func Sub(l, r Expr) *BinOp { return &BinOp{Op: OpSub, Left: l, Right: r, K: KindInt} }

func StrCat(l, r Expr) *BinOp { return &BinOp{Op: OpStrCat, Left: l, Right: r, K: KindStr} }

func MakeIsAny(x Expr, options []string) *IsAny { return &IsAny{X: x, Options: options} }

func MakeFen(x Expr) *Fen { return &Fen{X: x} }

func MakeIndirect(name Expr) *Indirect { return &Indirect{Name: name} }
