// Package linearize walks a completed call tree (internal/calltree) into a
// flat ordered instruction stream, assigning each branch point a
// monotonically increasing tag ("UID0", "UID1", ...) used to pair its
// cond/reactivate instructions. Grounded on compiler.py's linearize_tree,
// generalized from a single global counter closure into an explicit
// Linearizer so multiple compiles in one process don't share counters.
package linearize

import (
	"fmt"

	"github.com/funvibe/rgxchess/internal/calltree"
	"github.com/funvibe/rgxchess/internal/expr"
)

// Instr is one opcode invocation in the linear stream: an opcode name plus
// its build-time arguments, exactly what internal/assemble's registries
// expect.
type Instr struct {
	Op   string
	Args []any
}

// Linearizer walks a CallTree (and, within opaque nodes, expr.Expr trees)
// into a flat []Instr stream.
type Linearizer struct {
	nextUID int
}

// New returns a Linearizer with a fresh tag counter.
func New() *Linearizer {
	return &Linearizer{}
}

// Linearize walks tree's root subtree into a flat instruction stream.
func (l *Linearizer) Linearize(tree *calltree.CallTree) ([]Instr, error) {
	if tree == nil || tree.Root == nil {
		return nil, fmt.Errorf("linearize: empty call tree")
	}
	return l.subtree(tree.Root)
}

func (l *Linearizer) subtree(st *calltree.Subtree) ([]Instr, error) {
	var out []Instr
	for _, n := range st.Nodes {
		ins, err := l.node(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ins...)
	}
	return out, nil
}

func (l *Linearizer) node(n *calltree.Node) ([]Instr, error) {
	switch n.Kind {
	case calltree.KindOpaque:
		return []Instr{{Op: n.OpName, Args: n.Args}}, nil

	case calltree.KindAssign:
		return []Instr{{Op: "assign_pop", Args: []any{n.VarName}}}, nil

	case calltree.KindLookup:
		return []Instr{{Op: "lookup", Args: []any{n.VarName}}}, nil

	case calltree.KindForkBool:
		return []Instr{{Op: "fork_bool", Args: nil}}, nil

	case calltree.KindForkWithNewVar:
		return []Instr{{Op: "fork_with_new_var", Args: n.Args}}, nil

	case calltree.KindReactivate:
		return []Instr{{Op: "reactivate", Args: []any{n.Tag}}}, nil

	case calltree.KindCond:
		condInstrs, err := l.lowerCond(n.Cond)
		if err != nil {
			return nil, err
		}
		return append(condInstrs, Instr{Op: "cond", Args: []any{n.Tag}}), nil

	case calltree.KindBranch:
		return l.branch(n)

	default:
		return nil, fmt.Errorf("linearize: unhandled node kind %v", n.Kind)
	}
}

// branch emits: evaluate-and-cond (tagging the split), the "then" arm under
// a reactivate(tag+"True"), and — only when the second child is non-nil —
// the "else" arm under reactivate(tag+"False"). calltree.Branch creates
// the second child (empty for a single-sided if) once the first arm is
// explored, so a converged single-sided if still gets the pause/reactivate
// pair below around an empty else arm; only a second child that was never
// created is skipped outright. Per-arm threads not reactivated by either
// arm stay parked until a later join, matching compiler.py's behavior of
// leaving unexplored tags inert rather than erroring.
//
// When both arms are present, the thread reactivated for the then-arm is
// still active ("%%") once the then-arm's instructions finish — left alone,
// it would also run the else-arm's instructions, since those only test for
// "%%" and can't tell a thread that just finished the then-arm from one
// that hasn't run anything yet. Pausing it under a fresh join tag parks it
// for the duration of the else-arm, and reactivating that join tag
// afterwards rejoins it with whatever the else-arm produced — the
// tag1/tag2 pairing compiler.py's linearize_tree uses around an if/else.
func (l *Linearizer) branch(n *calltree.Node) ([]Instr, error) {
	tag := n.Tag
	if tag == "" {
		tag = l.freshTag()
		n.Tag = tag
	}

	condInstrs, err := l.lowerCond(n.Cond)
	if err != nil {
		return nil, err
	}
	out := append(condInstrs, Instr{Op: "cond", Args: []any{tag}})

	hasThen := n.Children[0] != nil
	hasElse := n.Children[1] != nil

	if hasThen {
		out = append(out, Instr{Op: "reactivate", Args: []any{tag + "True"}})
		thenInstrs, err := l.subtree(n.Children[0])
		if err != nil {
			return nil, err
		}
		out = append(out, thenInstrs...)
	}

	var joinTag string
	if hasThen && hasElse {
		joinTag = l.freshTag()
		out = append(out, Instr{Op: "pause", Args: []any{joinTag}})
	}

	if hasElse {
		out = append(out, Instr{Op: "reactivate", Args: []any{tag + "False"}})
		elseInstrs, err := l.subtree(n.Children[1])
		if err != nil {
			return nil, err
		}
		out = append(out, elseInstrs...)
	}

	if hasThen && hasElse {
		out = append(out, Instr{Op: "reactivate", Args: []any{joinTag}})
	}

	return out, nil
}

func (l *Linearizer) freshTag() string {
	tag := fmt.Sprintf("UID%d", l.nextUID)
	l.nextUID++
	return tag
}

// lowerCond lowers the boolean expr.Expr that feeds a cond instruction into
// the stack-machine opcode sequence LowerExpr already knows how to produce.
func (l *Linearizer) lowerCond(cond any) ([]Instr, error) {
	e, ok := cond.(expr.Expr)
	if !ok {
		return nil, fmt.Errorf("linearize: branch condition is not an expr.Expr (got %T)", cond)
	}
	return LowerExpr(e)
}

// LowerExpr lowers an expression tree into a stack-machine opcode sequence.
// Operands are emitted rightmost-first (SPEC_FULL.md, Expression lowering):
// for a binary node the right child is linearized before the left, so by
// the time the operator instruction runs, the left operand is the last
// thing pushed and therefore sits on top of stack — the convention every
// binary instruction in internal/instrset and internal/instrset/chessops
// assumes (top of stack = left operand, second = right operand).
func LowerExpr(e expr.Expr) ([]Instr, error) {
	switch n := e.(type) {
	case *expr.Lit:
		switch n.K {
		case expr.KindInt:
			// Integer literals enter computation in unary (a run of 'A'
			// characters): every comparator and unary arithmetic
			// instruction in internal/instrset operates on that
			// representation, so a literal used in an expression is
			// converted immediately rather than left in the compact
			// fixed-width binary form internal/state.EncodeInt produces
			// (that form exists for storage, not arithmetic).
			return []Instr{{Op: "push", Args: []any{n.IntVal}}, {Op: "to_unary"}}, nil
		case expr.KindStr, expr.KindBool:
			return []Instr{{Op: "push", Args: []any{n.StrVal}}}, nil
		default:
			return nil, fmt.Errorf("linearize: literal of unknown kind %v", n.K)
		}

	case *expr.Var:
		return []Instr{{Op: "lookup", Args: []any{n.Name}}}, nil

	case *expr.Indirect:
		nameInstrs, err := LowerExpr(n.Name)
		if err != nil {
			return nil, err
		}
		return append(nameInstrs, Instr{Op: "indirect_lookup"}), nil

	case *expr.IsAny:
		xInstrs, err := LowerExpr(n.X)
		if err != nil {
			return nil, err
		}
		return append(xInstrs, Instr{Op: "isany", Args: []any{n.Options}}), nil

	case *expr.Fen:
		xInstrs, err := LowerExpr(n.X)
		if err != nil {
			return nil, err
		}
		return append(xInstrs, Instr{Op: "fen"}), nil

	case *expr.Unary:
		xInstrs, err := LowerExpr(n.X)
		if err != nil {
			return nil, err
		}
		op, err := unaryOpcode(n.Op)
		if err != nil {
			return nil, err
		}
		return append(xInstrs, Instr{Op: op}), nil

	case *expr.BinOp:
		rightInstrs, err := LowerExpr(n.Right)
		if err != nil {
			return nil, err
		}
		leftInstrs, err := LowerExpr(n.Left)
		if err != nil {
			return nil, err
		}
		op, err := binOpcode(n.Op, n.K)
		if err != nil {
			return nil, err
		}
		out := append(rightInstrs, leftInstrs...)
		return append(out, Instr{Op: op}), nil

	default:
		return nil, fmt.Errorf("linearize: unhandled expr node %T", e)
	}
}

func unaryOpcode(op expr.Op) (string, error) {
	switch op {
	case expr.OpNot:
		return "boolean_not", nil
	case expr.OpMod2:
		return "mod2_unary", nil
	default:
		return "", fmt.Errorf("linearize: unhandled unary op %v", op)
	}
}

func binOpcode(op expr.Op, k expr.Kind) (string, error) {
	switch op {
	case expr.OpEq:
		return "eq", nil
	case expr.OpNeq:
		return "neq", nil
	case expr.OpGt:
		return "greater_than", nil
	case expr.OpLt:
		return "less_than", nil
	case expr.OpGe:
		return "greater_equal_than", nil
	case expr.OpLe:
		return "less_equal_than", nil
	case expr.OpAnd:
		return "boolean_and", nil
	case expr.OpOr:
		return "boolean_or", nil
	case expr.OpStrCat:
		return "string_cat", nil
	case expr.OpAdd:
		// expr-level integer arithmetic always runs in unary; binary_add
		// stays registered for programs that invoke it directly on values
		// already in the compact fixed-width form (internal/state's
		// storage representation), which expression lowering never
		// produces on its own.
		return "add_unary", nil
	case expr.OpSub:
		return "sub_unary", nil
	default:
		return "", fmt.Errorf("linearize: unhandled binary op %v", op)
	}
}
