package memory

import (
	"memorygame-server/pkg/deck"
)

// CardState is how a card is showing on the board
type CardState string

// card state constants
const (
	CardHidden   CardState = "hidden"
	CardRevealed CardState = "revealed"
	CardMatched  CardState = "matched"
)

// CardView is a single card as the player may see it
// Symbol is only set when the card is face up.
type CardView struct {
	Position int          `json:"position"`
	State    CardState    `json:"state"`
	Symbol   *deck.Symbol `json:"symbol,omitempty"`
}

// Status is a read-only snapshot of the game
// These values must be safe for the player to see
type Status struct {
	Generation     uint64     `json:"generation"`
	ElapsedSeconds int        `json:"elapsedSeconds"`
	Elapsed        string     `json:"elapsed"`
	Moves          int        `json:"moves"`
	Points         int        `json:"points"`
	Pairs          int        `json:"pairs"`
	IsRunning      bool       `json:"isRunning"`
	IsWon          bool       `json:"isWon"`
	Phase          string     `json:"phase"`
	Deck           []CardView `json:"deck"`
}

// NewStatus builds the snapshot for the state
func NewStatus(s State) Status {
	views := make([]CardView, s.deck.Len())
	for i, card := range s.deck.Cards {
		view := CardView{
			Position: i,
			State:    CardHidden,
		}

		switch {
		case s.IsMatched(i):
			view.State = CardMatched
		case s.IsRevealed(i):
			view.State = CardRevealed
		}

		if view.State != CardHidden {
			symbol := card.Symbol
			view.Symbol = &symbol
		}

		views[i] = view
	}

	return Status{
		Generation:     s.generation,
		ElapsedSeconds: s.elapsed,
		Elapsed:        FormatElapsed(s.elapsed),
		Moves:          s.moves,
		Points:         s.Points(),
		Pairs:          s.deck.Pairs(),
		IsRunning:      s.running,
		IsWon:          s.won,
		Phase:          s.Phase().String(),
		Deck:           views,
	}
}
