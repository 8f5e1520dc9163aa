package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func newTestGame(t *testing.T) *entity.Game {
	t.Helper()

	game := entity.NewGame("123")
	game.Players = []*entity.Player{
		entity.NewHumanPlayer(entity.PlayerX),
		entity.NewComputerPlayer(entity.PlayerO, entity.DifficultyPerfect),
	}
	require.NoError(t, game.Board.ApplyMove(5, entity.PlayerX))
	game.Turn = entity.PlayerO

	return game
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour, time.Minute)

	// Given: a game in progress
	game := newTestGame(t)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored with a TTL
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "game:"+game.ID).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0, 0)

		// Given: a stored game
		game := newTestGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0, 0)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("GetByID_BrokenBoard", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0, 0)

		// Given: a snapshot with a marker that is not X or O
		raw := `{"id":"broken","board":["X","Z","","","","","","",""],"turn":"O","status":"in_progress"}`
		require.NoError(t, st.Storage.Set(ctx, "game:broken", raw, 0).Err())

		// When: GetByID is called
		retrievedGame, err := gameRepo.GetByID(ctx, "broken")

		// Then: the snapshot is rejected
		require.ErrorIs(t, err, apperror.ErrMalformedInput)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_CreateOrUpdate_Finished(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour, time.Minute)

	// Given: a finished game
	game := newTestGame(t)
	game.Status = entity.StateDraw
	game.Turn = entity.EmptyCell

	// When: it is stored
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

	// Then: it expires with the shorter finished TTL
	ttl, err := st.Storage.TTL(ctx, "game:"+game.ID).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestGameRepository_Modify(t *testing.T) {
	t.Run("Modify_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0, 0)

		// Given: a stored game with O to move
		game := newTestGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: O's move is applied through Modify
		modified, err := gameRepo.Modify(ctx, game.ID, func(game *entity.Game) error {
			game.Turn = entity.PlayerX
			return game.Board.ApplyMove(1, entity.PlayerO)
		})

		// Then: the returned and the stored game both hold the move
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, modified.Board.At(1))

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, modified, stored)
	})

	t.Run("Modify_ApplyError", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0, 0)

		game := newTestGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: apply changes the game and then fails
		_, err := gameRepo.Modify(ctx, game.ID, func(game *entity.Game) error {
			_ = game.Board.ApplyMove(1, entity.PlayerO)
			return apperror.ErrInvalidMove
		})

		// Then: the error is returned and nothing is stored
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, stored.Board.At(1))
	})

	t.Run("Modify_ConcurrentChange", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0, 0)

		game := newTestGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Given: another writer stores O in 3 while the first change is being applied
		_, err := gameRepo.Modify(ctx, game.ID, func(game *entity.Game) error {
			other := *game
			require.NoError(t, other.Board.ApplyMove(3, entity.PlayerO))
			require.NoError(t, gameRepo.CreateOrUpdate(ctx, &other))

			return game.Board.ApplyMove(1, entity.PlayerO)
		})

		// Then: the first change is rejected and the other writer's move is kept
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, stored.Board.At(3))
		assert.Equal(t, entity.EmptyCell, stored.Board.At(1))
	})

	t.Run("Modify_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0, 0)

		_, err := gameRepo.Modify(ctx, "9999999", func(*entity.Game) error { return nil })

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
