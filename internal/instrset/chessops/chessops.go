// Package chessops holds the chess-domain opaque instructions SPEC_FULL.md
// supplements from original_source/instruction_set.py: the generic,
// reusable pieces of chess-move bookkeeping (square/coordinate conversion,
// piece comparison, promotion, king-safety, material value, thread
// trimming) — excluding the board-rendering and interactive-CLI-loop
// instructions instruction_set.py also defines, which have no analog in a
// compiler library (SPEC_FULL.md's Supplemented Features section records
// that scope cut).
//
// Each instruction follows the same pattern/replacement shape as
// internal/instrset: an ordered []rule.Rule a single Apply pass consumes.
package chessops

import (
	"fmt"
	"strconv"

	"github.com/funvibe/rgxchess/internal/rule"
)

// Fen pushes the current value of the "board" variable, the traced
// program's single source-of-truth snapshot of piece placement, as a
// stack value — a simplified stand-in for full Forsyth-Edwards rendering,
// sufficient for the equality/lookup uses a traced move generator needs.
func Fen() ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(%%\n#stack:)([^%]*\n#board: )([^#%]*)\n",
			Replacement: "\\1\n\\3\\2\\3\n",
		},
	}, nil
}

var files = "abcdefgh"

// unaryCoord renders n (0-7) as a run of 'A' characters, the representation
// every comparator and unary-arithmetic instruction in internal/instrset
// expects — coordinates need to feed straight into bound checks and
// deltas, so SquareToXY/IntxyToLocation speak unary rather than decimal.
func unaryCoord(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'A'
	}
	return string(b)
}

// SquareToXY pops an algebraic square ("a1".."h8") and pushes its "x,y"
// zero-based coordinate pair, each coordinate in unary, as a single
// comma-joined stack value (split later with list_pop). The conversion
// table is generated once, covering all 64 squares, rather than
// hand-enumerated.
func SquareToXY() ([]rule.Rule, error) {
	var rules []rule.Rule
	for x := 0; x < 8; x++ {
		for y := 1; y <= 8; y++ {
			square := string(files[x]) + strconv.Itoa(y)
			coord := unaryCoord(x) + "," + unaryCoord(y-1)
			rules = append(rules, rule.Rule{
				Pattern:     "(%%\n#stack:\n)" + square + "\n",
				Replacement: "\\1" + coord + "\n",
			})
		}
	}
	return rules, nil
}

// PairXY pops y (top, pushed last) and x (second) and pushes the single
// comma-joined "x,y" value IntxyToLocation expects, the counterpart to
// list_pop's split for code that computed x and y separately and now needs
// to feed them back into a coordinate-keyed lookup.
func PairXY() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)([^\n]*)\n([^\n]*)\n", Replacement: "\\1\\3,\\2\n"},
	}, nil
}

// IntxyToLocation is SquareToXY's inverse: pops a unary "x,y" coordinate
// pair and pushes the algebraic square name.
func IntxyToLocation() ([]rule.Rule, error) {
	var rules []rule.Rule
	for x := 0; x < 8; x++ {
		for y := 1; y <= 8; y++ {
			square := string(files[x]) + strconv.Itoa(y)
			coord := unaryCoord(x) + "," + unaryCoord(y-1)
			rules = append(rules, rule.Rule{
				Pattern:     "(%%\n#stack:\n)" + coord + "\n",
				Replacement: "\\1" + square + "\n",
			})
		}
	}
	return rules, nil
}

// DoPieceAssign pops a piece code and assigns it to the variable named by
// the given square (e.g. "board_e4"), creating the variable if absent.
// Same sentinel-backtick update-or-create shape as the core instruction
// set's assign_pop.
func DoPieceAssign(square string) ([]rule.Rule, error) {
	varname := "board_" + square
	return []rule.Rule{
		{
			Pattern:     "(%%)\n#stack:\n([^\n]*)\n([^%]*#" + varname + ": )[^\n]*",
			Replacement: "\\1`\n#stack:\n\\3\\2",
		},
		{
			Pattern:     "(%%)([^`]\n?#stack:\n)([^\n%]*)\n([^%]*)",
			Replacement: "\\1`\\2\\4#" + varname + ": \\3\n",
		},
		{Pattern: "%%`", Replacement: "%%"},
	}, nil
}

// IsSameKind pops two piece codes and pushes True iff they denote the same
// piece kind regardless of color — piece codes are a color letter ('w'/'b')
// followed by an uppercase kind letter (P/N/B/R/Q/K), so comparing kind
// alone means comparing everything past the first character.
func IsSameKind() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(?:w|b)([A-Z])\n(?:w|b)\\2\n", Replacement: "\\1`True\n"},
		{Pattern: "(%%\n#stack:\n)[^\n]*\n[^\n]*\n", Replacement: "\\1`False\n"},
		{Pattern: "`", Replacement: ""},
	}, nil
}

// PromoteToQueen pops a piece code and pushes the same color's queen,
// regardless of what kind it was (a pawn reaching the back rank).
func PromoteToQueen() ([]rule.Rule, error) {
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)(w|b)[A-Z]\n", Replacement: "\\1\\2Q\n"},
	}, nil
}

// CheckKingAlive pushes True iff some board_<square> variable still holds
// the given color's king code. The fallback rule is guarded against an
// already-inserted backtick so it cannot also fire once the alive rule has
// matched (same sentinel-backtick shape as assign_pop).
func CheckKingAlive(color string) ([]rule.Rule, error) {
	kingCode := color + "K"
	return []rule.Rule{
		{Pattern: "(%%\n#stack:\n)([^%]*#board_[a-h][1-8]: " + kingCode + "\n)", Replacement: "\\1`True\n\\2"},
		{Pattern: "(%%\n#stack:\n)([^`][^%]*)$", Replacement: "\\1`False\n\\2"},
		{Pattern: "`", Replacement: ""},
	}, nil
}

var pieceValues = map[byte]string{
	'P': "int0000000001",
	'N': "int0000000011",
	'B': "int0000000011",
	'R': "int0000000101",
	'Q': "int0000001001",
	'K': "int0000000000",
}

// PieceValue pops a piece code and pushes its standard material value as a
// binary integer literal (pawn=1, knight/bishop=3, rook=5, queen=9,
// king=0 — king safety is handled by CheckKingAlive, not material count).
func PieceValue() ([]rule.Rule, error) {
	var rules []rule.Rule
	for _, kind := range []byte{'P', 'N', 'B', 'R', 'Q', 'K'} {
		for _, color := range []byte{'w', 'b'} {
			rules = append(rules, rule.Rule{
				Pattern:     "(%%\n#stack:\n)" + string(color) + string(kind) + "\n",
				Replacement: "\\1" + pieceValues[kind] + "\n",
			})
		}
	}
	return rules, nil
}

// KeepOnlyFirstThread destroys every active thread except the first one
// appearing in the text-state buffer, collapsing a ForkBool/ForkListPop
// fan-out down to a single chosen candidate (e.g. "the first legal move
// found" when only one is wanted).
func KeepOnlyFirstThread() ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "(%%\n#stack:\n[^%]*)(?:%%\n#stack:\n[^%]*)+",
			Replacement: "\\1",
		},
	}, nil
}

// KeepOnlyLastThread is KeepOnlyFirstThread's mirror image.
func KeepOnlyLastThread() ([]rule.Rule, error) {
	return []rule.Rule{
		{
			Pattern:     "((?:%%\n#stack:\n[^%]*)+)(%%\n#stack:\n[^%]*)",
			Replacement: "\\2",
		},
	}, nil
}
