package memory

import (
	"time"

	"github.com/jonboulle/clockwork"
	"memorygame-server/internal/rng"
	"memorygame-server/pkg/deck"
)

// Options provides options for the game
type Options struct {
	// Symbols is the alphabet the deck is built from, two cards per symbol
	Symbols []deck.Symbol
	// RevealDelay is how long a mismatched pair stays face up
	RevealDelay time.Duration
	// TickInterval is how often the elapsed time advances by one second
	TickInterval time.Duration
	// Clock schedules the timers. Tests use a fake clock
	Clock clockwork.Clock
	// Generator shuffles the deck
	Generator rng.Generator
	// OnChange is called, outside of any lock, after every observable change
	OnChange func()
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Symbols:      deck.DefaultSymbols(),
		RevealDelay:  time.Second,
		TickInterval: time.Second,
		Clock:        clockwork.NewRealClock(),
		Generator:    rng.Crypto{},
	}
}

// fill in zero values from the defaults
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.RevealDelay <= 0 {
		o.RevealDelay = defaults.RevealDelay
	}

	if o.TickInterval <= 0 {
		o.TickInterval = defaults.TickInterval
	}

	if o.Clock == nil {
		o.Clock = defaults.Clock
	}

	if o.Generator == nil {
		o.Generator = defaults.Generator
	}

	if o.Symbols == nil {
		o.Symbols = defaults.Symbols
	}

	return o
}
