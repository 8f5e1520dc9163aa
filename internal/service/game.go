package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
)

type GameService interface {
	CreateGame(ctx context.Context, players []*entity.Player) (*entity.Game, error)
	ModifyGame(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Modify(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

func (that *gameService) CreateGame(ctx context.Context, players []*entity.Player) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID)
	game.Players = players

	if err = game.ValidatePlayers(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	for _, player := range players {
		player.ID = fmt.Sprintf("%s:%s", gameID, player.Mark)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

// ModifyGame - applies apply to the stored game atomically. A concurrent change fails with ErrNotYourTurn.
func (that *gameService) ModifyGame(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error) {
	game, err := that.gameRepo.Modify(ctx, id, apply)
	if err != nil {
		return nil, fmt.Errorf("failed to modify game in storage: %w", err)
	}

	return game, nil
}
