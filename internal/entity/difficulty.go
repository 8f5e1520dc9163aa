package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Difficulty string

const (
	// DifficultyRandom plays a uniformly random legal move.
	DifficultyRandom Difficulty = "random"
	// DifficultyMixed flips a coin between a random move and the heuristic.
	DifficultyMixed Difficulty = "mixed"
	// DifficultyPerfect always runs the heuristic.
	DifficultyPerfect Difficulty = "perfect"
)

// ParseDifficulty - accepts the names above, the menu numbers 0-2 and the easy/medium/impossible aliases.
func ParseDifficulty(value string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "random", "easy", "0":
		return DifficultyRandom, nil
	case "mixed", "medium", "1":
		return DifficultyMixed, nil
	case "perfect", "impossible", "2":
		return DifficultyPerfect, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}
