package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type GameUseCase interface {
	SuggestMove(board entity.Board, own, opponent entity.Marker, difficulty entity.Difficulty) (int, error)
	BoardStatus(board entity.Board) entity.Status

	StartGame(ctx context.Context, players []*entity.Player) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, mark entity.Marker, cell int) (*entity.Game, error)
}

type moveSelector interface {
	SelectMove(board entity.Board, own, opponent entity.Marker, difficulty entity.Difficulty) (int, error)
}

type gamePlayService interface {
	StartGame(ctx context.Context, players []*entity.Player) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, mark entity.Marker, cell int) (*entity.Game, error)
}

type gameUseCase struct {
	selector        moveSelector
	gamePlayService gamePlayService
}

func NewGameUseCase(selector moveSelector, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		selector:        selector,
		gamePlayService: gamePlayService,
	}
}

// SuggestMove - the engine's move for own on a board the caller keeps.
func (that *gameUseCase) SuggestMove(board entity.Board, own, opponent entity.Marker, difficulty entity.Difficulty) (int, error) {
	cell, err := that.selector.SelectMove(board, own, opponent, difficulty)
	if err != nil {
		return 0, fmt.Errorf("failed to select move: %w", err)
	}

	return cell, nil
}

func (that *gameUseCase) BoardStatus(board entity.Board) entity.Status {
	return tictactoe.BoardStatus(board)
}

func (that *gameUseCase) StartGame(ctx context.Context, players []*entity.Player) (*entity.Game, error) {
	game, err := that.gamePlayService.StartGame(ctx, players)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gamePlayService.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, mark entity.Marker, cell int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, gameID, mark, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}
