package strategy

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// FindOppositeCorner - if the opponent holds a corner whose opposite corner is free, that opposite corner.
// Corners are checked in the order 1, 9, 3, 7.
func FindOppositeCorner(board entity.Board, opponent entity.Marker) (int, bool) {
	for _, corner := range tictactoe.Corners {
		if board.At(corner) != opponent {
			continue
		}

		if opposite := tictactoe.OppositeCorner(corner); board.IsValidMove(opposite) {
			return opposite, true
		}
	}

	return 0, false
}

// FindOpenCorner - a uniformly random free corner.
func FindOpenCorner(board entity.Board, rnd random.Random) (int, bool) {
	open := make([]int, 0, len(tictactoe.Corners))
	for _, corner := range tictactoe.Corners {
		if board.IsValidMove(corner) {
			open = append(open, corner)
		}
	}

	return random.Choice(rnd, open)
}

// FindCornerResponse - the opposite corner when there is one, otherwise any free corner.
func FindCornerResponse(board entity.Board, opponent entity.Marker, rnd random.Random) (int, bool) {
	if cell, ok := FindOppositeCorner(board, opponent); ok {
		return cell, true
	}

	return FindOpenCorner(board, rnd)
}

// FindOpenSide - a uniformly random free side cell.
func FindOpenSide(board entity.Board, rnd random.Random) (int, bool) {
	open := make([]int, 0, len(tictactoe.Sides))
	for _, side := range tictactoe.Sides {
		if board.IsValidMove(side) {
			open = append(open, side)
		}
	}

	return random.Choice(rnd, open)
}
