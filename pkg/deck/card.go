package deck

import (
	"fmt"
	"strings"
)

// Symbol is the identity printed on the face of a card
// The engine only ever compares symbols for equality.
type Symbol string

// Card is an individual card on the board
type Card struct {
	Symbol   Symbol `json:"symbol"`
	Position int    `json:"position"`
}

func (c *Card) String() string {
	return fmt.Sprintf("%d:%s", c.Position, c.Symbol)
}

// Matches returns true if both cards carry the same symbol
func (c *Card) Matches(card *Card) bool {
	return c.Symbol == card.Symbol
}

// SymbolsFromStrings converts a slice of strings into symbols
func SymbolsFromStrings(s []string) []Symbol {
	symbols := make([]Symbol, len(s))
	for i, str := range s {
		symbols[i] = Symbol(str)
	}

	return symbols
}

// SymbolsToStrings converts a slice of symbols into strings
func SymbolsToStrings(symbols []Symbol) []string {
	s := make([]string, len(symbols))
	for i, symbol := range symbols {
		s[i] = string(symbol)
	}

	return s
}

// CardsFromString returns cards from a comma separated list of symbols (i.e., "A,B,A,B")
// Positions are assigned in order.
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	parts := strings.Split(s, ",")
	cards := make([]*Card, len(parts))
	for i, part := range parts {
		cards[i] = &Card{
			Symbol:   Symbol(part),
			Position: i,
		}
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of A,B,A,B
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = string(card.Symbol)
	}

	return strings.Join(c, ",")
}
