package memory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/snapshot"
)

func TestNewStatus_HidesFaceDownCards(t *testing.T) {
	a := assert.New(t)
	s := newTestState("A,B,A,B")
	s, _ = Reveal(s, 0)
	s, _ = Reveal(s, 2)
	s, _ = Reveal(s, 3)

	status := NewStatus(s)
	a.Equal(4, len(status.Deck))
	a.Equal(CardMatched, status.Deck[0].State)
	a.Equal(CardHidden, status.Deck[1].State)
	a.Equal(CardMatched, status.Deck[2].State)
	a.Equal(CardRevealed, status.Deck[3].State)

	a.Equal(deck.Symbol("A"), *status.Deck[0].Symbol)
	a.Nil(status.Deck[1].Symbol)
	a.Equal(deck.Symbol("B"), *status.Deck[3].Symbol)

	a.Equal(1, status.Moves)
	a.Equal(1, status.Points)
	a.Equal(2, status.Pairs)
	a.True(status.IsRunning)
	a.False(status.IsWon)
	a.Equal("oneRevealed", status.Phase)
	a.Equal("00:00", status.Elapsed)

	var raw map[string]interface{}
	b, err := json.Marshal(status)
	a.NoError(err)
	a.NoError(json.Unmarshal(b, &raw))

	cards := raw["deck"].([]interface{})
	_, hasSymbol := cards[1].(map[string]interface{})["symbol"]
	a.False(hasSymbol, "a hidden card must not carry its symbol")
	_, hasSymbol = cards[3].(map[string]interface{})["symbol"]
	a.True(hasSymbol)

	snapshot.ValidateSnapshot(t, status)
}

func TestNewStatus_FreshGame(t *testing.T) {
	status := NewStatus(newTestState("A,B,A,B"))
	for _, card := range status.Deck {
		assert.Equal(t, CardHidden, card.State)
		assert.Nil(t, card.Symbol)
	}

	assert.Equal(t, "idle", status.Phase)
	assert.False(t, status.IsRunning)
	assert.Equal(t, uint64(1), status.Generation)
}
