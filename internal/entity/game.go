package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDraw       State = "draw"
)

// Status - the outcome of a board. Winner is only set for StateWon.
type Status struct {
	State  State  `json:"state"`
	Winner Marker `json:"winner,omitempty"`
}

func (that Status) IsTerminal() bool {
	return that.State != StateInProgress
}

func (that Status) String() string {
	if that.State == StateWon {
		return fmt.Sprintf("%s(%s)", that.State, that.Winner)
	}

	return string(that.State)
}

type Game struct {
	ID      string    `json:"id"`
	Board   Board     `json:"board"`
	Turn    Marker    `json:"turn,omitempty"`
	Status  State     `json:"status"`
	Winner  Marker    `json:"winner,omitempty"`
	Players []*Player `json:"players,omitempty"`
}

// NewGame - an empty board with X to move.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  Board{},
		Turn:   PlayerX,
		Status: StateInProgress,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StateWon || that.Status == StateDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StateInProgress
}

// PlayerByMark - the player holding mark, nil when nobody does.
func (that *Game) PlayerByMark(mark Marker) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// CurrentPlayer - the player whose turn it is, nil once the game is finished.
func (that *Game) CurrentPlayer() *Player {
	if that.IsFinished() {
		return nil
	}

	return that.PlayerByMark(that.Turn)
}

// ValidatePlayers - exactly one player per marker.
func (that *Game) ValidatePlayers() error {
	if len(that.Players) != 2 {
		return fmt.Errorf("%w: expected 2 players, got %d", apperror.ErrInvalidPlayer, len(that.Players))
	}

	for _, mark := range []Marker{PlayerX, PlayerO} {
		player := that.PlayerByMark(mark)
		if player == nil {
			return fmt.Errorf("%w: nobody plays %s", apperror.ErrInvalidPlayer, mark)
		}

		if player.IsBot() {
			if _, err := ParseDifficulty(string(player.Difficulty)); err != nil {
				return fmt.Errorf("%w: %w", apperror.ErrInvalidPlayer, err)
			}
		}
	}

	return nil
}
