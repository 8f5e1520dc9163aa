package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	SuggestMove(w http.ResponseWriter, r *http.Request)
	BoardStatus(w http.ResponseWriter, r *http.Request)

	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	SuggestMove(board entity.Board, own, opponent entity.Marker, difficulty entity.Difficulty) (int, error)
	BoardStatus(board entity.Board) entity.Status

	StartGame(ctx context.Context, players []*entity.Player) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, mark entity.Marker, cell int) (*entity.Game, error)
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func NewHandlers(logger *slog.Logger, gameUseCase gameUseCase) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// SuggestMove - the engine's move for mark on the posted board. The board is not stored.
func (that *handlers) SuggestMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		that.writeError(w, "SuggestMove", err)
		return
	}

	board, mark, difficulty, err := req.parse()
	if err != nil {
		that.writeError(w, "SuggestMove", err)
		return
	}

	if status := that.gameUseCase.BoardStatus(board); status.IsTerminal() {
		that.writeError(w, "SuggestMove", fmt.Errorf("%w: board is %s", apperror.ErrGameFinished, status))
		return
	}

	cell, err := that.gameUseCase.SuggestMove(board, mark, mark.Opponent(), difficulty)
	if err != nil {
		that.writeError(w, "SuggestMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Cell: cell})
}

func (that *handlers) BoardStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		that.writeError(w, "BoardStatus", err)
		return
	}

	board, err := entity.ParseBoard(req.Board)
	if err != nil {
		that.writeError(w, "BoardStatus", err)
		return
	}

	that.writeJSON(w, http.StatusOK, that.gameUseCase.BoardStatus(board))
}

// CreateGame - a human playing mark against the computer.
func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	players, err := req.players()
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	game, err := that.gameUseCase.StartGame(r.Context(), players)
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newGameResponse(game))
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	mark, err := entity.ParseMarker(req.Mark)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	game, err := that.gameUseCase.MakeTurn(r.Context(), chi.URLParam(r, "id"), mark, req.Cell)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

// maxBodyBytes bounds a request body, every request fits in a few dozen bytes.
const maxBodyBytes = 4 << 10

// decodeJSON - reads exactly one JSON value from the body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedInput, err)
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after the request body", apperror.ErrMalformedInput)
	}

	return nil
}

func (that *handlers) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	} else {
		that.logger.Debug("request rejected", "method", method, "error", err)
	}

	that.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrMalformedInput),
		errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrInvalidMarker),
		errors.Is(err, apperror.ErrUnknownDifficulty),
		errors.Is(err, apperror.ErrInvalidPlayer):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNoMoveAvailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
