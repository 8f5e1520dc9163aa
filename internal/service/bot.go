package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type moveSelector interface {
	SelectMove(board entity.Board, own, opponent entity.Marker, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	selector moveSelector
}

func NewBotService(selector moveSelector) BotService {
	return &botService{
		selector: selector,
	}
}

// MakeTurn - plays the move of the computer player whose turn it is.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.CurrentPlayer()
	if botPlayer == nil || !botPlayer.IsBot() {
		return ErrBotNotFound
	}

	cell, err := that.selector.SelectMove(game.Board, botPlayer.Mark, botPlayer.Mark.Opponent(), botPlayer.Difficulty)
	if err != nil {
		return fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, botPlayer.Mark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
