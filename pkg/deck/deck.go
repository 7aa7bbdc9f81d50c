package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"memorygame-server/internal/rng"
)

// DefaultSymbols returns the alphabet a new game is dealt with when none is given
func DefaultSymbols() []Symbol {
	return []Symbol{"🐶", "🐱", "🦊", "🐻", "🐼", "🐵"}
}

// Deck is the board for a single game
// The order of the cards never changes once the deck is built.
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
}

// Build returns a shuffled deck containing two cards for every symbol
// Symbols must be distinct, and there must be at least one.
func Build(symbols []Symbol, gen rng.Generator) *Deck {
	if len(symbols) == 0 {
		panic("deck: at least one symbol is required")
	}

	cards := make([]*Card, 0, len(symbols)*2)
	for _, symbol := range symbols {
		cards = append(cards, &Card{Symbol: symbol}, &Card{Symbol: symbol})
	}

	shuffle(cards, gen)

	d := &Deck{seed: -1}
	if seeder, ok := gen.(rng.Seeder); ok {
		d.seed = seeder.Seed()
	}

	d.setCards(cards)
	return d
}

// FromCards returns a deck in the exact order given
// This should only be used by tests and replays. Positions are reassigned to match the order.
func FromCards(cards []*Card) *Deck {
	d := &Deck{seed: -1}
	d.setCards(cards)
	return d
}

// shuffle performs a Fisher-Yates shuffle in place
func shuffle(cards []*Card, gen rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// positions are handed out after the shuffle so a position never hints at its symbol
func (d *Deck) setCards(cards []*Card) {
	for i, card := range cards {
		card.Position = i
	}

	d.Cards = cards
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Pairs returns the number of pairs in the deck
func (d *Deck) Pairs() int {
	return len(d.Cards) / 2
}

// Card returns the card at the position
func (d *Deck) Card(position int) (*Card, bool) {
	if position < 0 || position >= len(d.Cards) {
		return nil, false
	}

	return d.Cards[position], true
}

// GetSeed returns the seed used to shuffle the deck, or -1 if unknown
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.Symbol))
		_, _ = hash.Write([]byte{0})
	}

	return hex.EncodeToString(hash.Sum(nil))
}

func (d *Deck) String() string {
	return CardsToString(d.Cards)
}
