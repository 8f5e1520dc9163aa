package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random is the only source of randomness the engine uses, so tests can script it.
type Random interface {
	// Intn returns a random int in [0, n). n must be positive.
	Intn(n int) int
}

type pcgRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New - a PCG source seeded with seed, or with the clock when seed is 0.
func New(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // a clock seed is never negative
	}

	return &pcgRandom{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint: gosec // game moves, not secrets
	}
}

func (that *pcgRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.IntN(n)
}

// Choice - a uniformly random element of values. ok is false for an empty slice.
func Choice(rnd Random, values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}

	return values[rnd.Intn(len(values))], true
}
