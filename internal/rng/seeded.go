package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Seeded is a reproducible Generator backed by math/rand
// It may be shared by games dealt from different goroutines, but then the
// order the games draw in decides which permutation each one gets.
type Seeded struct {
	seed int64
	lock sync.Mutex
	rng  *rand.Rand
}

// NewSeeded returns a generator for the seed
// A seed of 0 will use the current time.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a number in [0, n)
func (s *Seeded) Intn(n int) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.rng.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
