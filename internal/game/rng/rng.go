// Package rng abstracts the randomness the game logic consumes so
// simulations and tests can run deterministically.
package rng

import (
	"math/rand/v2"
	"sync"
)

// Source yields the random values game logic draws on. Implementations
// must be safe for use by a single goroutine; the engine serializes
// access per action.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

type pcgSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *pcgSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *pcgSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// New returns a seeded source with a reproducible stream.
func New(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Default returns a source seeded from the process entropy pool.
func Default() Source {
	return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Between returns a uniform int in [lo, hi] inclusive using src.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
