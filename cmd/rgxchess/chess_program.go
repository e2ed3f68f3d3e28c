package main

import (
	"github.com/funvibe/rgxchess/internal/expr"
	"github.com/funvibe/rgxchess/internal/tracer"
)

// ChessMoveGenerator is the traced program compiler.Compile() runs:
// starting from from_square, split into from_x/from_y, it enumerates the
// eight knight moves and assigns move_to_<i> only for those that land on
// the board. It reads no piece color and makes no capture, king or check
// test. It is written purely against internal/tracer's builder surface: no
// lexer or parser runs over it, it IS the source program.
//
// Grounded on original_source/chess_engine.py's move-generation loop,
// reduced to the single piece kind that best demonstrates every opcode
// family (unary arithmetic for the coordinate deltas, one If per candidate
// offset, and the chessops square/coordinate helpers).
func ChessMoveGenerator(t *tracer.Tracer) error {
	knightDeltas := [][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}

	if err := t.Lookup("from_square"); err != nil {
		return err
	}
	if err := t.Op("square_to_xy"); err != nil {
		return err
	}
	if err := t.Op("list_pop"); err != nil {
		return err
	}
	// list_pop leaves the head (x) on top, the remainder (y) beneath it.
	if err := t.AssignPop("from_x"); err != nil {
		return err
	}
	if err := t.AssignPop("from_y"); err != nil {
		return err
	}

	for i, d := range knightDeltas {
		if err := generateKnightCandidate(t, i, d[0], d[1]); err != nil {
			return err
		}
	}
	return nil
}

func generateKnightCandidate(t *tracer.Tracer, idx, dx, dy int) error {
	xVar := varName("cand_x", idx)
	yVar := varName("cand_y", idx)

	if err := t.Assign(xVar, expr.Add(varRef("from_x"), expr.Int(dx))); err != nil {
		return err
	}
	if err := t.Assign(yVar, expr.Add(varRef("from_y"), expr.Int(dy))); err != nil {
		return err
	}

	// sub_unary clamps a negative difference to 0, so a negative delta is
	// checked against the starting coordinate instead of the candidate.
	xOK := expr.Le(varRef(xVar), expr.Int(7))
	if dx < 0 {
		xOK = expr.Ge(varRef("from_x"), expr.Int(-dx))
	}
	yOK := expr.Le(varRef(yVar), expr.Int(7))
	if dy < 0 {
		yOK = expr.Ge(varRef("from_y"), expr.Int(-dy))
	}
	onBoard := expr.And(xOK, yOK)

	return t.If(onBoard, func() error {
		if err := t.Lookup(xVar); err != nil {
			return err
		}
		if err := t.Lookup(yVar); err != nil {
			return err
		}
		if err := t.Op("pair_xy"); err != nil {
			return err
		}
		if err := t.Op("intxy_to_location"); err != nil {
			return err
		}
		return t.AssignPop(varName("move_to", idx))
	}, nil)
}

func varName(prefix string, idx int) string {
	return prefix + "_" + itoa(idx)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

func varRef(name string) expr.Expr {
	return &expr.Var{Name: name, K: expr.KindInt}
}
