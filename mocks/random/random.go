package mocks

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg/random"
)

// MockRandom replays queued values from Intn, 0 once the queue is drained.
type MockRandom struct {
	IntnResults []int
	intnIndex   int

	// Calls records the n of every Intn call.
	Calls []int
}

var _ random.Random = (*MockRandom)(nil)

func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntnResults: values}
}

func (that *MockRandom) Intn(n int) int {
	that.Calls = append(that.Calls, n)

	if that.intnIndex >= len(that.IntnResults) {
		return 0
	}

	result := that.IntnResults[that.intnIndex]
	that.intnIndex++

	return result
}
