package memory

import (
	"fmt"

	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable"
)

// Name returns "memory"
func (s *Session) Name() string {
	return "memory"
}

// LogChan returns a channel for sending log messages
func (s *Session) LogChan() <-chan []*playable.LogMessage {
	return s.logChan
}

// Action performs an action from the client
//
//	reveal: additionalData.position is the card to turn over
//	reset:  deals a new game, optionally with additionalData.symbols
func (s *Session) Action(message *playable.PayloadIn) (*playable.Response, bool, error) {
	s.lock.Lock()
	closed := s.closed
	s.lock.Unlock()

	if closed {
		return nil, false, ErrSessionClosed
	}

	switch message.Action {
	case "reveal":
		position, ok := message.AdditionalData.GetInt("position")
		if !ok {
			return nil, false, ErrMissingPosition
		}

		outcome := s.RevealCard(position)
		return &playable.Response{
			Key:   "reveal",
			Value: outcome.String(),
		}, outcome != OutcomeIgnored, nil
	case "reset":
		if symbols, ok := message.AdditionalData.GetStringSlice("symbols"); ok {
			if err := s.Start(deck.SymbolsFromStrings(symbols)); err != nil {
				return nil, false, err
			}
		} else {
			s.Reset()
		}

		return playable.OK(), true, nil
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}
}

// GetState returns the status of the game
func (s *Session) GetState() *playable.Response {
	return &playable.Response{
		Key:  "game",
		Data: s.Status(),
	}
}

// GetEndOfGameDetails returns how the game was won
func (s *Session) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	s.lock.Lock()
	state := s.state
	s.lock.Unlock()

	if !state.won {
		return nil, false
	}

	elapsed := FormatElapsed(state.elapsed)
	return &playable.GameOverDetails{
		Moves:          state.moves,
		ElapsedSeconds: state.elapsed,
		Elapsed:        elapsed,
		Message:        fmt.Sprintf("You won in %d moves and %s!", state.moves, elapsed),
	}, true
}
