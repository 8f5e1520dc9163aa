package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoMoveAvailable   = errors.New("no move available")
	ErrMalformedInput    = errors.New("malformed input")
	ErrInvalidMarker     = errors.New("invalid marker")
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrGameNotFound  = errors.New("game not found")
	ErrInvalidPlayer = errors.New("invalid player setup")
)
