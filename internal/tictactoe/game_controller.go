package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// HasWon - reports whether any winning line is held entirely by one marker.
func HasWon(board entity.Board) bool {
	return Winner(board) != entity.EmptyCell
}

// Winner - the marker holding a complete line, EmptyCell when there is none.
func Winner(board entity.Board) entity.Marker {
	for _, line := range WinningLines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// BoardStatus - the outcome of the board. It does not modify anything, calling it twice gives the same answer.
func BoardStatus(board entity.Board) entity.Status {
	if winner := Winner(board); winner != entity.EmptyCell {
		return entity.Status{State: entity.StateWon, Winner: winner}
	}

	if board.IsFull() {
		return entity.Status{State: entity.StateDraw}
	}

	return entity.Status{State: entity.StateInProgress}
}

// MakeTurn - applies the move of player and moves the game to its next state.
func MakeTurn(gameInstance *entity.Game, player entity.Marker, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, player, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := gameInstance.Board.ApplyMove(cell, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(gameInstance, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, player entity.Marker, cell int) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, player)
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if !gameInstance.Board.IsValidMove(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidMove, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player entity.Marker) {
	status := BoardStatus(gameInstance.Board)

	gameInstance.Status = status.State
	gameInstance.Winner = status.Winner

	if status.IsTerminal() {
		gameInstance.Turn = entity.EmptyCell
		return
	}

	gameInstance.Turn = player.Opponent()
}
