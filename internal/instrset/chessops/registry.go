package chessops

import (
	"fmt"

	"github.com/funvibe/rgxchess/internal/rule"
)

// Builder mirrors instrset.Builder; chessops is assembled through the same
// shape so internal/assemble can merge both tables into one lookup.
type Builder func(args []any) ([]rule.Rule, error)

// Registry is the chess-domain opcode table, merged into assemble's lookup
// alongside instrset.Registry.
var Registry = map[string]Builder{
	"fen":                    fixed0(Fen),
	"square_to_xy":           fixed0(SquareToXY),
	"pair_xy":                fixed0(PairXY),
	"intxy_to_location":      fixed0(IntxyToLocation),
	"do_piece_assign":        str1(DoPieceAssign),
	"is_same_kind":           fixed0(IsSameKind),
	"promote_to_queen":       fixed0(PromoteToQueen),
	"check_king_alive":       str1(CheckKingAlive),
	"piece_value":            fixed0(PieceValue),
	"keep_only_first_thread": fixed0(KeepOnlyFirstThread),
	"keep_only_last_thread":  fixed0(KeepOnlyLastThread),
}

func fixed0(f func() ([]rule.Rule, error)) Builder {
	return func(a []any) ([]rule.Rule, error) { return f() }
}

func str1(f func(string) ([]rule.Rule, error)) Builder {
	return func(a []any) ([]rule.Rule, error) {
		if len(a) != 1 {
			return nil, fmt.Errorf("chessops: expected 1 arg, got %d", len(a))
		}
		s, ok := a[0].(string)
		if !ok {
			return nil, fmt.Errorf("chessops: expected string arg, got %T", a[0])
		}
		return f(s)
	}
}
