package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Same seed gives the same sequence", func(t *testing.T) {
		// Given: two sources with the same seed
		first, second := New(42), New(42)

		// When: drawing from both
		// Then: the draws should match
		for range 20 {
			assert.Equal(t, first.Intn(9), second.Intn(9))
		}
	})

	t.Run("Values stay in range", func(t *testing.T) {
		// Given: a clock seeded source
		rnd := New(0)

		// When: drawing many values
		// Then: every value is in [0, n)
		for range 100 {
			value := rnd.Intn(4)
			assert.GreaterOrEqual(t, value, 0)
			assert.Less(t, value, 4)
		}
	})

	t.Run("Non-positive bound returns zero", func(t *testing.T) {
		rnd := New(1)

		assert.Equal(t, 0, rnd.Intn(0))
		assert.Equal(t, 0, rnd.Intn(-3))
	})
}

type fixed int

func (that fixed) Intn(n int) int {
	return int(that) % n
}

func TestChoice(t *testing.T) {
	t.Run("Picks by index", func(t *testing.T) {
		// Given: a source that always answers 2
		// When: choosing from four values
		value, ok := Choice(fixed(2), []int{1, 9, 3, 7})

		// Then: the third value is returned
		require.True(t, ok)
		assert.Equal(t, 3, value)
	})

	t.Run("Empty slice", func(t *testing.T) {
		// When: choosing from nothing
		_, ok := Choice(fixed(0), nil)

		// Then: nothing is chosen
		assert.False(t, ok)
	})
}
