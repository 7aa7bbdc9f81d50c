package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"memorygame-server/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// ID identifies the connection in logs
	ID string

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:    uuid.New().String(),
		send:  make(chan interface{}, 256),
		Close: make(chan string, 1),
		Conn:  conn,
	}
}

// Send send a message to the web client
// If the client isn't keeping up, the message is dropped and false is returned
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client and game
func (c *Client) String() string {
	gameID := ""
	if c.dealer != nil {
		gameID = c.dealer.ID
	}

	return fmt.Sprintf("%s:%s", c.ID, gameID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
