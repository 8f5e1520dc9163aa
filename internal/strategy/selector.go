package strategy

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type MoveSelector interface {
	SelectMove(board entity.Board, own, opponent entity.Marker, difficulty entity.Difficulty) (int, error)
}

type Option func(*moveSelector)

// WithStrictForks - when true, fork candidates that are already taken are skipped instead of ending the fork steps.
func WithStrictForks(strict bool) Option {
	return func(that *moveSelector) {
		that.strictForks = strict
	}
}

type moveSelector struct {
	logger      *slog.Logger
	rnd         random.Random
	strictForks bool
}

func NewMoveSelector(logger *slog.Logger, rnd random.Random, opts ...Option) MoveSelector {
	selector := &moveSelector{
		logger:      logger.With("component", "move_selector"),
		rnd:         rnd,
		strictForks: true,
	}

	for _, opt := range opts {
		opt(selector)
	}

	return selector
}

// SelectMove - picks the move for own. The board is only read.
func (that *moveSelector) SelectMove(board entity.Board, own, opponent entity.Marker, difficulty entity.Difficulty) (int, error) {
	if !own.IsPlayer() || !opponent.IsPlayer() || own == opponent {
		return 0, fmt.Errorf("%w: %q against %q", apperror.ErrInvalidMarker, own, opponent)
	}

	switch difficulty {
	case entity.DifficultyRandom:
		return that.randomMove(board)
	case entity.DifficultyMixed:
		if that.rnd.Intn(2) == 1 {
			return that.randomMove(board)
		}
		return that.perfectMove(board, own, opponent)
	case entity.DifficultyPerfect:
		return that.perfectMove(board, own, opponent)
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

func (that *moveSelector) randomMove(board entity.Board) (int, error) {
	cell, ok := random.Choice(that.rnd, board.EmptyCells())
	if !ok {
		return 0, apperror.ErrNoMoveAvailable
	}

	that.logger.Debug("random move", "cell", cell)

	return cell, nil
}

type step struct {
	name string
	find func() (int, bool)
}

// perfectMove - win, block, fork, block fork, center, corner, side. The first step giving a valid move wins.
func (that *moveSelector) perfectMove(board entity.Board, own, opponent entity.Marker) (int, error) {
	ownCells := board.OccupiedBy(own)
	opponentCells := board.OccupiedBy(opponent)

	steps := []step{
		{"win", func() (int, bool) { return FindCompletingMove(board, ownCells) }},
		{"block", func() (int, bool) { return FindCompletingMove(board, opponentCells) }},
		{"fork", func() (int, bool) { return that.findFork(board, ownCells) }},
		{"block fork", func() (int, bool) { return that.findFork(board, opponentCells) }},
		{"center", func() (int, bool) { return tictactoe.CenterCell, true }},
		{"corner", func() (int, bool) { return FindCornerResponse(board, opponent, that.rnd) }},
		{"side", func() (int, bool) { return FindOpenSide(board, that.rnd) }},
	}

	for _, s := range steps {
		that.logger.Debug("checking", "step", s.name, "mark", own)

		cell, ok := s.find()
		if ok && board.IsValidMove(cell) {
			that.logger.Debug("move selected", "step", s.name, "mark", own, "cell", cell)
			return cell, nil
		}
	}

	return 0, apperror.ErrNoMoveAvailable
}

func (that *moveSelector) findFork(board entity.Board, cells []int) (int, bool) {
	if that.strictForks {
		return FindOpenForkMove(board, cells)
	}

	return FindForkMove(cells)
}
