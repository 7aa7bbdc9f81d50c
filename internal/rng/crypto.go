package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto wraps the crypto/rand library
// It is safe for concurrent use and is the generator used outside of tests.
type Crypto struct{}

// Intn returns a uniformly distributed number in [0, n)
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: n must be greater than 0")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
