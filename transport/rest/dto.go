package rest

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type moveRequest struct {
	Board      string `json:"board"`
	Mark       string `json:"mark"`
	Difficulty string `json:"difficulty,omitempty"`
}

func (that moveRequest) parse() (entity.Board, entity.Marker, entity.Difficulty, error) {
	board, err := entity.ParseBoard(that.Board)
	if err != nil {
		return board, "", "", fmt.Errorf("failed to parse board: %w", err)
	}

	mark, err := entity.ParseMarker(that.Mark)
	if err != nil {
		return board, "", "", fmt.Errorf("failed to parse mark: %w", err)
	}

	difficulty, err := parseDifficulty(that.Difficulty)
	if err != nil {
		return board, "", "", err
	}

	return board, mark, difficulty, nil
}

type moveResponse struct {
	Cell int `json:"cell"`
}

type statusRequest struct {
	Board string `json:"board"`
}

type createGameRequest struct {
	Mark       string `json:"mark"`
	Difficulty string `json:"difficulty,omitempty"`
}

// players - the caller plays mark, the computer takes the other one.
func (that createGameRequest) players() ([]*entity.Player, error) {
	mark, err := entity.ParseMarker(that.Mark)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mark: %w", err)
	}

	difficulty, err := parseDifficulty(that.Difficulty)
	if err != nil {
		return nil, err
	}

	return []*entity.Player{
		entity.NewHumanPlayer(mark),
		entity.NewComputerPlayer(mark.Opponent(), difficulty),
	}, nil
}

type turnRequest struct {
	Mark string `json:"mark"`
	Cell int    `json:"cell"`
}

type gameResponse struct {
	ID      string           `json:"id"`
	Board   string           `json:"board"`
	Turn    entity.Marker    `json:"turn,omitempty"`
	Status  entity.State     `json:"status"`
	Winner  entity.Marker    `json:"winner,omitempty"`
	Players []*entity.Player `json:"players"`
}

func newGameResponse(game *entity.Game) gameResponse {
	return gameResponse{
		ID:      game.ID,
		Board:   game.Board.Compact(),
		Turn:    game.Turn,
		Status:  game.Status,
		Winner:  game.Winner,
		Players: game.Players,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func parseDifficulty(value string) (entity.Difficulty, error) {
	if value == "" {
		return entity.DifficultyPerfect, nil
	}

	difficulty, err := entity.ParseDifficulty(value)
	if err != nil {
		return "", fmt.Errorf("failed to parse difficulty: %w", err)
	}

	return difficulty, nil
}
