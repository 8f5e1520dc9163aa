package strategy

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Pair is two distinct cells held by the same player.
type Pair [2]int

// Pairs - every unordered pair of cells, (c0,c1), (c0,c2), ..., (c1,c2), ... in the order cells are given.
// OccupiedBy returns ascending cells, so pairs come out in ascending order too.
func Pairs(cells []int) []Pair {
	if len(cells) < 2 {
		return nil
	}

	pairs := make([]Pair, 0, len(cells)*(len(cells)-1)/2)
	for i := 0; i < len(cells)-1; i++ {
		for j := i + 1; j < len(cells); j++ {
			pairs = append(pairs, Pair{cells[i], cells[j]})
		}
	}

	return pairs
}

// FindCompletingMove - the cell that completes a winning line with two of cells.
// Pairs are tried in order, and for each pair the winning lines in table order. Candidates that are
// already taken are skipped.
func FindCompletingMove(board entity.Board, cells []int) (int, bool) {
	return findThird(Pairs(cells), tictactoe.WinningLines, func(cell int) bool {
		return board.IsValidMove(cell)
	})
}

// FindForkMove - the third cell of the first fork line containing a pair of cells. The candidate is not
// checked against the board and may already be taken; use FindOpenForkMove to skip those.
func FindForkMove(cells []int) (int, bool) {
	return findThird(Pairs(cells), tictactoe.ForkLines, nil)
}

// FindOpenForkMove - like FindForkMove but keeps looking when a candidate is taken.
func FindOpenForkMove(board entity.Board, cells []int) (int, bool) {
	return findThird(Pairs(cells), tictactoe.ForkLines, func(cell int) bool {
		return board.IsValidMove(cell)
	})
}

func findThird(pairs []Pair, lines [8]tictactoe.Line, accept func(cell int) bool) (int, bool) {
	for _, pair := range pairs {
		for _, line := range lines {
			if !line.Contains(pair[0], pair[1]) {
				continue
			}

			cell := line.Remaining(pair[0], pair[1])
			if accept != nil && !accept(cell) {
				continue
			}

			return cell, true
		}
	}

	return 0, false
}
