package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// PositionSuite checks the selector against every position reachable from an empty board.
type PositionSuite struct {
	suite.Suite
	positions []entity.Board
}

func TestPositionSuite(t *testing.T) {
	suite.Run(t, new(PositionSuite))
}

func (s *PositionSuite) SetupSuite() {
	seen := make(map[entity.Board]bool)
	s.positions = nil
	s.collect(entity.Board{}, entity.PlayerX, seen)
}

func (s *PositionSuite) collect(board entity.Board, mark entity.Marker, seen map[entity.Board]bool) {
	if seen[board] || tictactoe.BoardStatus(board).IsTerminal() {
		return
	}

	seen[board] = true
	s.positions = append(s.positions, board)

	for _, cell := range board.EmptyCells() {
		next := board
		s.Require().NoError(next.ApplyMove(cell, mark))
		s.collect(next, mark.Opponent(), seen)
	}
}

// toMove - X moves first, so X is to move whenever the counts are equal.
func toMove(board entity.Board) (entity.Marker, entity.Marker) {
	if len(board.OccupiedBy(entity.PlayerX)) == len(board.OccupiedBy(entity.PlayerO)) {
		return entity.PlayerX, entity.PlayerO
	}

	return entity.PlayerO, entity.PlayerX
}

// winningCells - every empty cell that completes a line for marker.
func winningCells(board entity.Board, marker entity.Marker) map[int]bool {
	cells := make(map[int]bool)

	for _, cell := range board.EmptyCells() {
		next := board
		_ = next.ApplyMove(cell, marker)

		if tictactoe.Winner(next) == marker {
			cells[cell] = true
		}
	}

	return cells
}

func (s *PositionSuite) TestReachablePositions() {
	// 5478 legal positions, 958 of them finished.
	s.Len(s.positions, 4520)
}

func (s *PositionSuite) TestPerfectTakesWinsThenBlocks() {
	for _, strict := range []bool{true, false} {
		selector := NewMoveSelector(discardLogger(), random.New(1), WithStrictForks(strict))

		for _, board := range s.positions {
			own, opponent := toMove(board)
			before := board

			cell, err := selector.SelectMove(board, own, opponent, entity.DifficultyPerfect)
			s.Require().NoError(err, board.Compact())
			s.Require().True(board.IsValidMove(cell), "%s -> %d", board.Compact(), cell)
			s.Require().Equal(before, board)

			if wins := winningCells(board, own); len(wins) > 0 {
				s.Require().True(wins[cell], "%s: %s should win, got %d", board.Compact(), own, cell)
				continue
			}

			if blocks := winningCells(board, opponent); len(blocks) > 0 {
				s.Require().True(blocks[cell], "%s: %s should block, got %d", board.Compact(), own, cell)
			}
		}
	}
}

func (s *PositionSuite) TestEveryDifficultyPlaysAnEmptyCell() {
	selector := NewMoveSelector(discardLogger(), random.New(7))

	for _, difficulty := range []entity.Difficulty{entity.DifficultyRandom, entity.DifficultyMixed} {
		for _, board := range s.positions {
			own, opponent := toMove(board)

			cell, err := selector.SelectMove(board, own, opponent, difficulty)
			s.Require().NoError(err)
			s.Require().True(board.IsValidMove(cell), "%s %s -> %d", difficulty, board.Compact(), cell)
		}
	}
}

func (s *PositionSuite) TestCenterIsTakenFirst() {
	selector := NewMoveSelector(discardLogger(), random.New(3))

	for _, board := range s.positions {
		own, opponent := toMove(board)
		if !board.IsValidMove(tictactoe.CenterCell) {
			continue
		}

		if len(winningCells(board, own)) > 0 || len(winningCells(board, opponent)) > 0 {
			continue
		}

		if _, ok := FindOpenForkMove(board, board.OccupiedBy(own)); ok {
			continue
		}

		if _, ok := FindOpenForkMove(board, board.OccupiedBy(opponent)); ok {
			continue
		}

		cell, err := selector.SelectMove(board, own, opponent, entity.DifficultyPerfect)
		s.Require().NoError(err)
		s.Equal(tictactoe.CenterCell, cell, board.Compact())
	}
}
