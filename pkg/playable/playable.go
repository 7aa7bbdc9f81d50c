package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"memorygame-server/pkg/deck"
)

// Playable is a game that can be hosted by a dealer
type Playable interface {
	// Action performs the action in the message
	// If playerResponse is not nil, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for all connected clients
	Action(message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetState returns the current state of the game
	// Anything in the state is safe for the client to see
	GetState() *Response

	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage

	// Close releases any timers held by the game
	Close()
}

// LogMessage is the format a game should send log messages in
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// Response is a container for a message sent to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// GameOverDetails provides details on how the game ended
type GameOverDetails struct {
	Moves          int    `json:"moves"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	Elapsed        string `json:"elapsed"`
	Message        string `json:"message"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}

		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// GetStringSlice returns a slice of strings
func (a AdditionalData) GetStringSlice(key string) ([]string, bool) {
	switch slice := a[key].(type) {
	case []string:
		return slice, true
	case []interface{}:
		strs := make([]string, len(slice))
		for i, val := range slice {
			str, ok := val.(string)
			if !ok {
				return nil, false
			}

			strs[i] = str
		}
		return strs, true
	}

	return nil, false
}

// NewLogMessage returns a new LogMessage stamped with the given time
func NewLogMessage(now time.Time, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    now,
	}
}
