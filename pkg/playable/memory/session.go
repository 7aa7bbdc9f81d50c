package memory

import (
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable"
)

// Session is a single player's game of memory
// All state changes are serialized through the session: reveals from the player,
// and the tick and hide timers it schedules for itself.
type Session struct {
	options Options
	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	lock    sync.Mutex
	state   State
	symbols []deck.Symbol
	timers  map[timerAction]clockwork.Timer
	closed  bool
}

// NewSession deals a new game
func NewSession(logger logrus.FieldLogger, opts Options) (*Session, error) {
	opts = opts.withDefaults()
	if err := ValidateSymbols(opts.Symbols); err != nil {
		return nil, err
	}

	s := &Session{
		options: opts,
		logger:  logger,
		logChan: make(chan []*playable.LogMessage, 256),
		timers:  make(map[timerAction]clockwork.Timer),
	}

	if err := s.Start(opts.Symbols); err != nil {
		return nil, err
	}

	return s, nil
}

// Start deals a new game with the symbols
// Whatever was in progress is discarded, including its pending timers.
func (s *Session) Start(symbols []deck.Symbol) error {
	if err := ValidateSymbols(symbols); err != nil {
		return err
	}

	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return ErrSessionClosed
	}

	s.symbols = append([]deck.Symbol(nil), symbols...)
	s.deal()
	state := s.state
	s.lock.Unlock()

	s.logger.WithFields(logrus.Fields{
		"generation": state.generation,
		"pairs":      state.deck.Pairs(),
		"hash":       state.deck.HashCode(),
	}).Debug("dealt new game")

	s.sendLogMessages(playable.NewLogMessage(s.options.Clock.Now(), nil, "New game with %d pairs", state.deck.Pairs()))
	s.notify()
	return nil
}

// Reset deals a new game with the same symbols
func (s *Session) Reset() {
	s.lock.Lock()
	symbols := s.symbols
	s.lock.Unlock()

	if err := s.Start(symbols); err != nil {
		s.logger.WithError(err).Warn("could not reset game")
	}
}

// NOTE: must be called with the lock held
func (s *Session) deal() {
	s.cancelAll()
	d := deck.Build(s.symbols, s.options.Generator)
	s.state = NewState(d, s.state.generation+1)
}

// RevealCard attempts to turn over the card at the position
// Anything that isn't allowed right now (a card already face up, a pair being
// hidden, a finished game, an unknown position) is ignored.
func (s *Session) RevealCard(position int) Outcome {
	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return OutcomeIgnored
	}

	prev := s.state
	next, outcome := Reveal(prev, position)
	if outcome == OutcomeIgnored {
		s.lock.Unlock()
		return outcome
	}

	s.state = next
	if !prev.running && next.running {
		s.schedule(timerActionTick, next.generation)
	}

	switch outcome {
	case OutcomeMismatch:
		s.schedule(timerActionHide, next.generation)
	case OutcomeWon:
		s.cancelAll()
	}
	s.lock.Unlock()

	s.logger.WithFields(logrus.Fields{
		"position": position,
		"outcome":  outcome.String(),
		"moves":    next.moves,
	}).Debug("card revealed")

	s.logOutcome(next, position, outcome)
	s.notify()
	return outcome
}

func (s *Session) logOutcome(state State, position int, outcome Outcome) {
	card := state.deck.Cards[position]
	now := s.options.Clock.Now()

	switch outcome {
	case OutcomeMatch:
		s.sendLogMessages(playable.NewLogMessage(now, []*deck.Card{card}, "Found a pair of %s", card.Symbol))
	case OutcomeWon:
		s.logger.WithFields(logrus.Fields{
			"moves":   state.moves,
			"elapsed": state.elapsed,
		}).Info("game won")

		s.sendLogMessages(
			playable.NewLogMessage(now, []*deck.Card{card}, "Found a pair of %s", card.Symbol),
			playable.NewLogMessage(now, nil, "You won in %d moves and %s!", state.moves, FormatElapsed(state.elapsed)),
		)
	}
}

// Status returns a snapshot of the game
func (s *Session) Status() Status {
	s.lock.Lock()
	defer s.lock.Unlock()

	return NewStatus(s.state)
}

// Close stops the session's timers
// A closed session ignores every further action.
func (s *Session) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.closed = true
	s.cancelAll()
}

func (s *Session) notify() {
	if s.options.OnChange != nil {
		s.options.OnChange()
	}
}

// sendLogMessages drops the messages if nobody is keeping up with the channel
func (s *Session) sendLogMessages(msg ...*playable.LogMessage) {
	select {
	case s.logChan <- msg:
	default:
		s.logger.WithField("messages", len(msg)).Trace("log channel full, dropping messages")
	}
}
