// Package calltree implements the traced call tree: a
// rose tree of assignments, lookups, branches, and opaque instruction nodes,
// built by re-executing a traced program against a cursor that walks the
// same positions each time and only descends into a fresh branch arm once.
//
// It is a direct port of compiler.py's CallTree class: the "active_path"
// list reference and "pointer" cursor become a *Subtree and an int field,
// and the two-phase branch replay (create on first visit, descend left
// until exhausted, then descend right once) is unchanged.
package calltree

import "fmt"

// NodeKind distinguishes the shapes of call tree nodes.
type NodeKind int

const (
	KindAssign NodeKind = iota
	KindLookup
	KindBranch
	KindReactivate
	KindCond
	KindForkBool
	KindForkWithNewVar
	KindOpaque
)

// Node is one entry in a Subtree. Which fields are meaningful depends on
// Kind; this mirrors the tagged Python tuples ("assign", name, value) etc.
// without needing a type switch per tuple arity.
type Node struct {
	Kind NodeKind

	// KindAssign, KindLookup
	VarName string
	Value   any // expr.Expr for a traced RHS, or a raw int/string literal

	// KindBranch
	Cond     any // expr.Expr
	Children [2]*Subtree

	// KindReactivate, KindCond, KindForkBool
	Tag string

	// KindForkWithNewVar
	Vars map[string]string

	// KindOpaque — any instruction the compiler does not interpret itself
	OpName string
	Args   []any
}

// Subtree is an ordered list of sibling nodes sharing one branch arm.
type Subtree struct {
	Nodes []*Node
}

// CallTree is the mutable recorder a Tracer appends to during one replay.
type CallTree struct {
	Root       *Subtree
	activePath *Subtree
	pointer    int

	pointerHist    []int
	activePathHist []*Subtree
}

// New creates an empty call tree, ready for the first trace pass.
func New() *CallTree {
	root := &Subtree{}
	return &CallTree{Root: root, activePath: root}
}

// ResetCursor rewinds the replay cursor to the start of the root subtree,
// as compiler.py's trace() loop does before each re-invocation.
func (t *CallTree) ResetCursor() {
	t.activePath = t.Root
	t.pointer = 0
	t.pointerHist = t.pointerHist[:0]
	t.activePathHist = t.activePathHist[:0]
}

// Append records a leaf node (assign, lookup, or opaque instruction) at the
// cursor. On a repeat trace pass the cursor walks the same nodes it
// recorded before; Append verifies that replay is consistent and returns an
// error if the traced program diverged between passes (a non-deterministic
// trace function, which is assumed not to happen).
func (t *CallTree) Append(node *Node) error {
	if t.pointer < len(t.activePath.Nodes) {
		existing := t.activePath.Nodes[t.pointer]
		if !sameShape(existing, node) {
			return fmt.Errorf("calltree: trace diverged at position %d: recorded %v, replayed %v", t.pointer, existing.Kind, node.Kind)
		}
	} else {
		t.activePath.Nodes = append(t.activePath.Nodes, node)
	}
	t.pointer++
	return nil
}

// Branch implements the two-phase branch replay:
//  1. if the branch node does not exist yet at the cursor, create it with
//     both children unexplored, descend left, return true;
//  2. if it exists and the left subtree is not yet fully explored, descend
//     left, return true;
//  3. else (the left subtree is fully explored) descend right, creating an
//     empty right subtree if there is none yet, and return false.
func (t *CallTree) Branch(cond any) (bool, error) {
	t.pointerHist = append(t.pointerHist, t.pointer)
	t.activePathHist = append(t.activePathHist, t.activePath)

	retVal := true
	if t.pointer < len(t.activePath.Nodes) {
		existing := t.activePath.Nodes[t.pointer]
		if existing.Kind != KindBranch {
			return false, fmt.Errorf("calltree: trace diverged at position %d: expected branch, found %v", t.pointer, existing.Kind)
		}
		if !t.Traverse(existing.Children[0]) {
			if existing.Children[0] == nil {
				existing.Children[0] = &Subtree{}
			}
			t.activePath = existing.Children[0]
		} else {
			if existing.Children[1] == nil {
				existing.Children[1] = &Subtree{}
			}
			t.activePath = existing.Children[1]
			retVal = false
		}
	} else {
		node := &Node{Kind: KindBranch, Cond: cond}
		node.Children[0] = &Subtree{}
		t.activePath.Nodes = append(t.activePath.Nodes, node)
		t.activePath = node.Children[0]
	}
	t.pointer = 0
	return retVal, nil
}

// Merge pops one level of the path-cursor stack, rejoining sibling subtrees
// after both arms of a branch have been visited in this pass.
func (t *CallTree) Merge() error {
	n := len(t.pointerHist)
	if n == 0 {
		return fmt.Errorf("calltree: merge with no matching branch")
	}
	t.pointer = t.pointerHist[n-1]
	t.pointerHist = t.pointerHist[:n-1]
	t.activePath = t.activePathHist[n-1]
	t.activePathHist = t.activePathHist[:n-1]
	t.pointer++
	return nil
}

// Traverse reports whether every branch reachable from path has both
// children populated (non-nil), i.e. has been fully explored.
func (t *CallTree) Traverse(path *Subtree) bool {
	if path == nil {
		return false
	}
	for _, node := range path.Nodes {
		if node.Kind == KindBranch {
			left, right := node.Children[0], node.Children[1]
			if left == nil || right == nil {
				return false
			}
			if !t.Traverse(left) {
				return false
			}
			if !t.Traverse(right) {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether tracing has converged: every branch has both
// arms explored, and at least one node was recorded.
func (t *CallTree) IsComplete() bool {
	return t.Traverse(t.Root) && len(t.Root.Nodes) > 0
}

func sameShape(a, b *Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindAssign, KindLookup:
		return a.VarName == b.VarName
	case KindReactivate, KindCond, KindForkBool:
		return a.Tag == b.Tag
	case KindForkWithNewVar:
		return a.Tag == b.Tag
	case KindOpaque:
		return a.OpName == b.OpName
	default:
		return true
	}
}
