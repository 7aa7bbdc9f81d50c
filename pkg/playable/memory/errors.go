package memory

import (
	"errors"
	"fmt"

	"memorygame-server/pkg/deck"
)

// ErrNoSymbols is returned when a game is started without any symbols
var ErrNoSymbols = errors.New("at least one symbol is required")

// ErrEmptySymbol is returned when one of the symbols is blank
var ErrEmptySymbol = errors.New("symbols cannot be blank")

// ErrMissingPosition is returned when a reveal action has no position
var ErrMissingPosition = errors.New("missing 'position' parameter")

// ErrSessionClosed is returned when an action is attempted after Close()
var ErrSessionClosed = errors.New("session is closed")

// DuplicateSymbolError is returned when a symbol appears more than once in the alphabet
type DuplicateSymbolError struct {
	Symbol deck.Symbol
}

func (d DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol: %s", d.Symbol)
}

// ValidateSymbols checks that the alphabet can build a deck
func ValidateSymbols(symbols []deck.Symbol) error {
	if len(symbols) == 0 {
		return ErrNoSymbols
	}

	seen := make(map[deck.Symbol]bool, len(symbols))
	for _, symbol := range symbols {
		if symbol == "" {
			return ErrEmptySymbol
		}

		if seen[symbol] {
			return DuplicateSymbolError{Symbol: symbol}
		}

		seen[symbol] = true
	}

	return nil
}
