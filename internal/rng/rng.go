package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number in [0, n)
	Intn(n int) int
}

// Seeder is implemented by generators that can report the seed they were created with
type Seeder interface {
	Seed() int64
}
