package room

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable/memory"
)

// PitBoss is responsible for keeping track of the games being played
type PitBoss struct {
	logger      logrus.FieldLogger
	options     memory.Options
	idleTimeout time.Duration

	lock    sync.RWMutex
	dealers map[string]*Dealer

	close     chan bool
	closeOnce sync.Once
}

// NewPitBoss returns a new PitBoss
// options is the template for every game created. Games without a connected client
// are ended once they've been idle for idleTimeout; zero disables this.
func NewPitBoss(logger logrus.FieldLogger, options memory.Options, idleTimeout time.Duration) *PitBoss {
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}

	return &PitBoss{
		logger:      logger,
		options:     options,
		idleTimeout: idleTimeout,
		dealers:     make(map[string]*Dealer),
		close:       make(chan bool),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	if p.idleTimeout <= 0 {
		return
	}

	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	ticker := p.options.Clock.NewTicker(p.idleTimeout)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.Chan():
			p.reap(now)
		case <-p.close:
			return
		}
	}
}

// EndShift ends every game
func (p *PitBoss) EndShift() {
	p.closeOnce.Do(func() {
		close(p.close)
	})

	p.lock.Lock()
	dealers := p.dealers
	p.dealers = make(map[string]*Dealer)
	p.lock.Unlock()

	for _, dealer := range dealers {
		dealer.EndShift()
	}
}

// CreateGame deals a new game
// If symbols is empty, the default symbols from the options are used.
func (p *PitBoss) CreateGame(symbols []deck.Symbol) (*Dealer, error) {
	id := uuid.New().String()
	dealer := NewDealer(id, p.logger, p.options.Clock)

	opts := p.options
	if len(symbols) > 0 {
		opts.Symbols = symbols
	}
	opts.OnChange = dealer.GameChanged

	game, err := memory.NewSession(p.logger.WithField("game", id), opts)
	if err != nil {
		return nil, err
	}

	dealer.SetGame(game)
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[id] = dealer
	p.lock.Unlock()

	p.logger.WithField("game", id).Info("created game")
	return dealer, nil
}

// Dealer returns the dealer for the game
func (p *PitBoss) Dealer(id string) (*Dealer, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, ok := p.dealers[id]
	return dealer, ok
}

// EndGame ends the game
// Returns false if the game was not found
func (p *PitBoss) EndGame(id string) bool {
	p.lock.Lock()
	dealer, ok := p.dealers[id]
	delete(p.dealers, id)
	p.lock.Unlock()

	if !ok {
		return false
	}

	dealer.EndShift()
	p.logger.WithField("game", id).Info("ended game")
	return true
}

// GameCount returns the number of games being hosted
func (p *PitBoss) GameCount() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.dealers)
}

// reap ends the games nobody is connected to that have been idle since before now - idleTimeout
func (p *PitBoss) reap(now time.Time) []string {
	cutoff := now.Add(-p.idleTimeout)

	p.lock.RLock()
	ids := make([]string, 0)
	for id, dealer := range p.dealers {
		lastActivity, hasClients := dealer.IdleSince()
		if !hasClients && lastActivity.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	p.lock.RUnlock()

	for _, id := range ids {
		if p.EndGame(id) {
			p.logger.WithField("game", id).Debug("reaped idle game")
		}
	}

	return ids
}
