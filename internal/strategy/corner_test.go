package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	mockedRandom "github.com/rocketscienceinc/tictactoe-engine/mocks/random"
)

func TestFindOppositeCorner(t *testing.T) {
	t.Run("Opposite of the opponent corner", func(t *testing.T) {
		// Given: X holds corner 1
		board := mustBoard(t, "X___O____")

		// When: looking for the opposite corner
		cell, ok := FindOppositeCorner(board, entity.PlayerX)

		// Then: 9 is returned
		require.True(t, ok)
		assert.Equal(t, 9, cell)
	})

	t.Run("Opposite corner taken", func(t *testing.T) {
		// Given: X holds 3 and O already holds 7
		board := mustBoard(t, "__X_O_O__")

		// When: looking for the opposite corner
		_, ok := FindOppositeCorner(board, entity.PlayerX)

		// Then: nothing is found
		assert.False(t, ok)
	})

	t.Run("Opponent without corners", func(t *testing.T) {
		board := mustBoard(t, "____X____")

		_, ok := FindOppositeCorner(board, entity.PlayerX)

		assert.False(t, ok)
	})
}

func TestFindOpenCorner(t *testing.T) {
	t.Run("Random pick among free corners", func(t *testing.T) {
		// Given: all corners free and a random source answering 2
		board := mustBoard(t, "____X____")
		rnd := mockedRandom.NewMockRandom(2)

		// When: picking an open corner
		cell, ok := FindOpenCorner(board, rnd)

		// Then: corners are ordered 1, 9, 3, 7 so 3 is picked among four
		require.True(t, ok)
		assert.Equal(t, 3, cell)
		assert.Equal(t, []int{4}, rnd.Calls)
	})

	t.Run("Only free corners are candidates", func(t *testing.T) {
		// Given: corners 1 and 9 taken
		board := mustBoard(t, "X___O___X")
		rnd := mockedRandom.NewMockRandom(1)

		// When: picking an open corner
		cell, ok := FindOpenCorner(board, rnd)

		// Then: the choice is between 3 and 7
		require.True(t, ok)
		assert.Equal(t, 7, cell)
		assert.Equal(t, []int{2}, rnd.Calls)
	})

	t.Run("No free corner", func(t *testing.T) {
		board := mustBoard(t, "X_O_X_O_X")
		rnd := mockedRandom.NewMockRandom()

		_, ok := FindOpenCorner(board, rnd)

		assert.False(t, ok)
		assert.Empty(t, rnd.Calls)
	})
}

func TestFindCornerResponse(t *testing.T) {
	t.Run("Deterministic branch does not use randomness", func(t *testing.T) {
		board := mustBoard(t, "X___O____")
		rnd := mockedRandom.NewMockRandom()

		cell, ok := FindCornerResponse(board, entity.PlayerX, rnd)

		require.True(t, ok)
		assert.Equal(t, 9, cell)
		assert.Empty(t, rnd.Calls)
	})

	t.Run("Falls back to a random corner", func(t *testing.T) {
		board := mustBoard(t, "____X____")
		rnd := mockedRandom.NewMockRandom(3)

		cell, ok := FindCornerResponse(board, entity.PlayerX, rnd)

		require.True(t, ok)
		assert.Equal(t, 7, cell)
	})
}

func TestFindOpenSide(t *testing.T) {
	// Given: only sides 4 and 6 free
	board := mustBoard(t, "XOX_X_OXO")

	// When: picking with index 1
	cell, ok := FindOpenSide(board, mockedRandom.NewMockRandom(1))

	// Then: 6 is picked
	require.True(t, ok)
	assert.Equal(t, 6, cell)
}
