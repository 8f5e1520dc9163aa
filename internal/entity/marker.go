package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Marker is the symbol a player places on the board.
type Marker string

const (
	PlayerX Marker = "X"
	PlayerO Marker = "O"

	EmptyCell Marker = ""
)

func (that Marker) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's marker, EmptyCell for anything that is not a player.
func (that Marker) Opponent() Marker {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// ParseMarker - accepts "x" or "o" in any case.
func ParseMarker(value string) (Marker, error) {
	switch marker := Marker(strings.ToUpper(strings.TrimSpace(value))); marker {
	case PlayerX, PlayerO:
		return marker, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, value)
	}
}
