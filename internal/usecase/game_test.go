package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-engine/mocks/service"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-engine/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

func TestGameUseCase_SuggestMove(t *testing.T) {
	t.Run("Returns the cell chosen by the selector", func(t *testing.T) {
		// Given: A selector that picks the center
		selector := mockedService.NewMockmoveSelector(t)
		useCase := NewGameUseCase(selector, mockedUseCase.NewMockgamePlayService(t))

		var board entity.Board
		selector.EXPECT().
			SelectMove(board, entity.PlayerX, entity.PlayerO, entity.DifficultyPerfect).
			Return(5, nil).
			Once()

		// When: Asking for a move
		cell, err := useCase.SuggestMove(board, entity.PlayerX, entity.PlayerO, entity.DifficultyPerfect)

		// Then: The selected cell is returned
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Wraps the selector error", func(t *testing.T) {
		// Given: A selector that has nothing to play
		selector := mockedService.NewMockmoveSelector(t)
		useCase := NewGameUseCase(selector, mockedUseCase.NewMockgamePlayService(t))

		selector.EXPECT().
			SelectMove(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, apperror.ErrNoMoveAvailable).
			Once()

		// When: Asking for a move
		_, err := useCase.SuggestMove(entity.Board{}, entity.PlayerO, entity.PlayerX, entity.DifficultyRandom)

		// Then: The sentinel survives wrapping
		require.ErrorIs(t, err, apperror.ErrNoMoveAvailable)
	})
}

func TestGameUseCase_BoardStatus(t *testing.T) {
	t.Run("Reports the winner of a finished board", func(t *testing.T) {
		// Given: A board where X holds the top row
		board, err := entity.ParseBoard("OO____XXX")
		require.NoError(t, err)

		useCase := NewGameUseCase(mockedService.NewMockmoveSelector(t), mockedUseCase.NewMockgamePlayService(t))

		// When: Asking for the status
		status := useCase.BoardStatus(board)

		// Then: X has won
		assert.Equal(t, entity.StateWon, status.State)
		assert.Equal(t, entity.PlayerX, status.Winner)
	})
}

func TestGameUseCase_Games(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts a game through the gameplay service", func(t *testing.T) {
		// Given: A gameplay service that creates a game
		gamePlay := mockedUseCase.NewMockgamePlayService(t)
		useCase := NewGameUseCase(mockedService.NewMockmoveSelector(t), gamePlay)

		players := []*entity.Player{
			entity.NewHumanPlayer(entity.PlayerX),
			entity.NewComputerPlayer(entity.PlayerO, entity.DifficultyPerfect),
		}
		gamePlay.EXPECT().
			StartGame(mock.Anything, players).
			Return(&entity.Game{ID: "game-1"}, nil).
			Once()

		// When: Starting the game
		game, err := useCase.StartGame(ctx, players)

		// Then: The created game is returned
		require.NoError(t, err)
		assert.Equal(t, "game-1", game.ID)
	})

	t.Run("Wraps a missing game", func(t *testing.T) {
		// Given: A gameplay service that cannot find the game
		gamePlay := mockedUseCase.NewMockgamePlayService(t)
		useCase := NewGameUseCase(mockedService.NewMockmoveSelector(t), gamePlay)

		gamePlay.EXPECT().
			GetGame(mock.Anything, "missing").
			Return(nil, apperror.ErrGameNotFound).
			Once()

		// When: Loading the game
		game, err := useCase.GetGame(ctx, "missing")

		// Then: The not found error is kept
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})

	t.Run("Forwards turns and storage failures", func(t *testing.T) {
		// Given: A gameplay service whose storage is down
		gamePlay := mockedUseCase.NewMockgamePlayService(t)
		useCase := NewGameUseCase(mockedService.NewMockmoveSelector(t), gamePlay)

		gamePlay.EXPECT().
			MakeTurn(mock.Anything, "game-1", entity.PlayerX, 5).
			Return(nil, errRedisDown).
			Once()

		// When: Making a turn
		_, err := useCase.MakeTurn(ctx, "game-1", entity.PlayerX, 5)

		// Then: The storage error is returned
		require.ErrorIs(t, err, errRedisDown)
	})
}
