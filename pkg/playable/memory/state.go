package memory

import (
	"memorygame-server/pkg/deck"
)

// Phase is where the current turn stands
type Phase int

const (
	// PhaseIdle means no card has been revealed this turn
	PhaseIdle Phase = iota
	// PhaseOneRevealed means one card is face up, waiting for the second
	PhaseOneRevealed
	// PhaseReverting means two mismatched cards are face up, waiting to be hidden again
	PhaseReverting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneRevealed:
		return "oneRevealed"
	case PhaseReverting:
		return "reverting"
	default:
		return "unknown"
	}
}

// State is everything known about a single game
// Transitions (Reveal, Hide, Tick) take a State and return the next one; they
// never modify the State they were given.
type State struct {
	deck *deck.Deck

	// positions face up for the unresolved turn, at most two
	revealed []int
	// indexed by position
	matched      []bool
	matchedCount int

	moves      int
	elapsed    int
	running    bool
	won        bool
	generation uint64
}

// NewState returns the state of a fresh game for the deck
func NewState(d *deck.Deck, generation uint64) State {
	return State{
		deck:       d,
		matched:    make([]bool, d.Len()),
		generation: generation,
	}
}

func (s State) clone() State {
	next := s
	next.revealed = append([]int(nil), s.revealed...)
	next.matched = make([]bool, len(s.matched))
	copy(next.matched, s.matched)

	return next
}

// Deck returns the deck the game is played with
func (s State) Deck() *deck.Deck {
	return s.deck
}

// Phase returns the phase of the current turn
func (s State) Phase() Phase {
	switch len(s.revealed) {
	case 0:
		return PhaseIdle
	case 1:
		return PhaseOneRevealed
	default:
		return PhaseReverting
	}
}

// Revealed returns the positions face up for the current turn
func (s State) Revealed() []int {
	return append([]int(nil), s.revealed...)
}

// IsRevealed returns true if the position is face up for the current turn
func (s State) IsRevealed(position int) bool {
	for _, p := range s.revealed {
		if p == position {
			return true
		}
	}

	return false
}

// IsMatched returns true if the position has been matched
func (s State) IsMatched(position int) bool {
	if position < 0 || position >= len(s.matched) {
		return false
	}

	return s.matched[position]
}

// MatchedCount returns how many cards have been matched
func (s State) MatchedCount() int {
	return s.matchedCount
}

// Points returns the number of pairs found
func (s State) Points() int {
	return s.matchedCount / 2
}

// Moves returns the number of completed turns
func (s State) Moves() int {
	return s.moves
}

// Elapsed returns the number of seconds the game has been running
func (s State) Elapsed() int {
	return s.elapsed
}

// Running returns true once the first card is revealed, until the game is won
func (s State) Running() bool {
	return s.running
}

// Won returns true once every card has been matched
func (s State) Won() bool {
	return s.won
}

// Generation identifies which deal this state belongs to
func (s State) Generation() uint64 {
	return s.generation
}
