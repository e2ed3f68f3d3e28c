package main

import (
	"strings"
	"testing"

	"github.com/funvibe/rgxchess/internal/expr"
	"github.com/funvibe/rgxchess/internal/tracer"
)

func TestChessMoveGeneratorTraces(t *testing.T) {
	tree, diags := tracer.Trace(ChessMoveGenerator)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", diags.All())
	}
	if !tree.IsComplete() {
		t.Fatalf("expected the knight-move call tree to converge within the iteration budget")
	}
}

func TestVarNameIndexesEachCandidate(t *testing.T) {
	if got := varName("cand_x", 0); got != "cand_x_0" {
		t.Fatalf("varName(cand_x, 0) = %q, want cand_x_0", got)
	}
	if got := varName("cand_y", 7); got != "cand_y_7" {
		t.Fatalf("varName(cand_y, 7) = %q, want cand_y_7", got)
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 7: "7", 12: "12", 100: "100"}
	for in, want := range cases {
		if got := itoa(in); got != want {
			t.Fatalf("itoa(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestVarRefCarriesName(t *testing.T) {
	ref := varRef("from_x")
	v, ok := ref.(*expr.Var)
	if !ok {
		t.Fatalf("varRef did not return an *expr.Var, got %T", ref)
	}
	if v.Name != "from_x" {
		t.Fatalf("varRef(%q).Name = %q", "from_x", v.Name)
	}
	if v.Kind() != expr.KindInt {
		t.Fatalf("varRef kind = %v, want KindInt", v.Kind())
	}
}

func TestGenerateKnightCandidateRecordsBranch(t *testing.T) {
	// generateKnightCandidate records a single onBoard If; two replay passes
	// (cursor reset between them) are enough for calltree's two-phase branch
	// replay to explore both arms and report the tree complete.
	tr := tracer.New()
	for i := 0; i < 2; i++ {
		tr.Tree().ResetCursor()
		if err := tr.LitAssign("from_x", "3"); err != nil {
			t.Fatalf("LitAssign from_x: %v", err)
		}
		if err := tr.LitAssign("from_y", "3"); err != nil {
			t.Fatalf("LitAssign from_y: %v", err)
		}
		if err := generateKnightCandidate(tr, 0, 1, 2); err != nil {
			t.Fatalf("generateKnightCandidate: %v", err)
		}
	}
	if !tr.Tree().IsComplete() {
		t.Fatalf("expected the onBoard branch to converge after two replay passes")
	}
}

func TestUsageRunsWithoutPanicking(t *testing.T) {
	// usage() writes to os.Stderr directly; smoke-test it doesn't panic and
	// exercise it purely for coverage of the CLI's help text shape.
	usage()
}

func TestReportNonTTYFallsBackToKeyValueLine(t *testing.T) {
	// report() branches on isatty.IsTerminal(os.Stdout.Fd()); under `go test`
	// stdout is not a terminal, so it always takes the key=value branch.
	// Capture nothing — just confirm it runs without panicking for a
	// populated path set.
	report("build-id", "rules.json", "rules.js", 3, 0)
}

func TestChessMoveGeneratorProducesAssignPopNodes(t *testing.T) {
	tr := tracer.New()
	if err := ChessMoveGenerator(tr); err != nil {
		t.Fatalf("ChessMoveGenerator: %v", err)
	}
	nodes := tr.Tree().Root.Nodes
	found := false
	for _, n := range nodes {
		if n.OpName == "assign_pop" && len(n.Args) == 1 && n.Args[0] == "from_x" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ChessMoveGenerator to record assign_pop(from_x), got %+v", nodes)
	}
}

func TestChessMoveGeneratorUsesSquareToXYAndListPop(t *testing.T) {
	tr := tracer.New()
	if err := ChessMoveGenerator(tr); err != nil {
		t.Fatalf("ChessMoveGenerator: %v", err)
	}
	var ops []string
	for _, n := range tr.Tree().Root.Nodes {
		ops = append(ops, n.OpName)
	}
	joined := strings.Join(ops, ",")
	if !strings.Contains(joined, "square_to_xy") {
		t.Fatalf("expected square_to_xy among recorded ops: %s", joined)
	}
	if !strings.Contains(joined, "list_pop") {
		t.Fatalf("expected list_pop among recorded ops: %s", joined)
	}
}
