package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type GamePlayService interface {
	StartGame(ctx context.Context, players []*entity.Player) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, mark entity.Marker, cell int) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
	}
}

// StartGame - creates the game and lets the computer open when it plays X.
func (that *gamePlayService) StartGame(ctx context.Context, players []*entity.Player) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, players)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	if player := game.CurrentPlayer(); player == nil || !player.IsBot() {
		return game, nil
	}

	game, err = that.gameService.ModifyGame(ctx, game.ID, that.playBots)
	if err != nil {
		return nil, fmt.Errorf("failed to play opening turn: %w", err)
	}

	that.logResult(game)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - applies a human move, then the computer replies if it is next. The whole exchange is stored
// atomically, a turn racing another one on the same game fails with ErrNotYourTurn.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, mark entity.Marker, cell int) (*entity.Game, error) {
	game, err := that.gameService.ModifyGame(ctx, gameID, func(game *entity.Game) error {
		if player := game.PlayerByMark(mark); player != nil && player.IsBot() {
			return fmt.Errorf("%w: %s is played by the computer", apperror.ErrNotYourTurn, mark)
		}

		if err := tictactoe.MakeTurn(game, mark, cell); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return that.playBots(game)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to play turn: %w", err)
	}

	that.logResult(game)

	return game, nil
}

// playBots - plays computer turns until a human is to move or the game ends.
func (that *gamePlayService) playBots(game *entity.Game) error {
	for player := game.CurrentPlayer(); player != nil && player.IsBot(); player = game.CurrentPlayer() {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	return nil
}

func (that *gamePlayService) logResult(game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	that.logger.Info("game finished", "gameID", game.ID, "status", game.Status, "winner", game.Winner)
}
