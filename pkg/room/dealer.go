package room

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"memorygame-server/pkg/playable"
)

// Dealer hosts a single game and keeps its clients up to date
type Dealer struct {
	ID string

	game    playable.Playable
	logger  logrus.FieldLogger
	clock   clockwork.Clock
	clients map[*Client]bool
	lock    sync.RWMutex

	lastActivity time.Time

	// only touched from the run loop
	logMessages  []*playable.LogMessage
	sentGameOver bool

	execInRunLoop chan func()
	gameChanged   chan struct{}
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// SetGame must be called before StartShift
func NewDealer(id string, logger logrus.FieldLogger, clock clockwork.Clock) *Dealer {
	return &Dealer{
		ID:            id,
		logger:        logger.WithField("game", id),
		clock:         clock,
		clients:       make(map[*Client]bool),
		lastActivity:  clock.Now(),
		execInRunLoop: make(chan func(), 256),
		gameChanged:   make(chan struct{}, 1),
		close:         make(chan bool),
	}
}

// SetGame sets the game the dealer is hosting
func (d *Dealer) SetGame(game playable.Playable) {
	d.game = game
}

// GameChanged lets the dealer know the game state has changed
// It never blocks, and multiple calls before the run loop catches up result in a single update.
func (d *Dealer) GameChanged() {
	select {
	case d.gameChanged <- struct{}{}:
	default:
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case <-d.gameChanged:
			d.sendGameData()
		case messages := <-d.game.LogChan():
			d.addLogMessages(messages)
			d.broadcast(newLogsResponse(messages))
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed
// Connected clients are asked to disconnect.
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		d.game.Close()
		close(d.close)

		for _, client := range d.Clients() {
			select {
			case client.Close <- "game ended":
			default:
			}
		}
	})
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lastActivity = d.clock.Now()
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		client.Send(d.game.GetState())
		if len(d.logMessages) > 0 {
			client.Send(newLogsResponse(d.logMessages))
		}

		d.sendClientState()
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lastActivity = d.clock.Now()
	d.lock.Unlock()

	if nClients > 0 {
		d.execInRunLoop <- d.sendClientState
		return false
	}

	return true
}

// IdleSince returns the time of the last activity, and whether any clients are connected
func (d *Dealer) IdleSince() (time.Time, bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return d.lastActivity, len(d.clients) > 0
}

// State returns the current state of the game
func (d *Dealer) State() *playable.Response {
	return d.game.GetState()
}

// Perform runs an action against the game
func (d *Dealer) Perform(msg *playable.PayloadIn) (*playable.Response, error) {
	d.lock.Lock()
	d.lastActivity = d.clock.Now()
	d.lock.Unlock()

	resp, updateState, err := d.game.Action(msg)
	if err != nil {
		return nil, err
	}

	if updateState {
		d.GameChanged()
	}

	if resp != nil {
		resp.Context = msg.Context
	}

	return resp, nil
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	resp, err := d.Perform(msg)
	if err != nil {
		d.logger.WithError(err).WithField("client", c.String()).Info("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if resp != nil {
		c.Send(resp)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		if !client.Send(msg) {
			d.logger.WithField("client", client.String()).Warn("client is not keeping up, dropped message")
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	d.broadcast(d.game.GetState())

	details, isOver := d.game.GetEndOfGameDetails()
	if !isOver {
		d.sentGameOver = false
		return
	}

	if !d.sentGameOver {
		d.sentGameOver = true
		d.broadcast(&playable.Response{
			Key:  "gameOver",
			Data: details,
		})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendClientState() {
	d.broadcast(&playable.Response{
		Key:  "clientState",
		Data: clientState{Clients: len(d.Clients())},
	})
}
