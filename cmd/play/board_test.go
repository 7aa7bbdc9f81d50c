package main

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable/memory"
)

func TestGridColumns(t *testing.T) {
	assert.Equal(t, 1, gridColumns(1, 80))
	assert.Equal(t, 2, gridColumns(4, 80))
	assert.Equal(t, 4, gridColumns(12, 80))
	assert.Equal(t, 6, gridColumns(16*2+1, 80))
	assert.Equal(t, 13, gridColumns(200, 80))
	assert.Equal(t, 2, gridColumns(12, 12))
	assert.Equal(t, 4, gridColumns(12, 0))
}

func TestRenderBoard(t *testing.T) {
	a := deck.Symbol("A")
	status := memory.Status{
		Elapsed: "00:07",
		Moves:   3,
		Points:  1,
		Pairs:   2,
		Deck: []memory.CardView{
			{Position: 0, State: memory.CardMatched, Symbol: &a},
			{Position: 1, State: memory.CardHidden},
			{Position: 2, State: memory.CardMatched, Symbol: &a},
			{Position: 3, State: memory.CardHidden},
		},
	}

	buf := &bytes.Buffer{}
	renderBoard(buf, status, 2)
	assert.Equal(t, "  A     1  \n  A     3  \n\nTime: 00:07  Moves: 3  Pairs: 1/2\n", buf.String())
}

func TestParseCommand(t *testing.T) {
	cmd, pos, err := parseCommand(" 12 \n")
	assert.NoError(t, err)
	assert.Equal(t, commandReveal, cmd)
	assert.Equal(t, 12, pos)

	cmd, _, _ = parseCommand("Q")
	assert.Equal(t, commandQuit, cmd)

	cmd, _, _ = parseCommand("reset")
	assert.Equal(t, commandReset, cmd)

	cmd, _, err = parseCommand("")
	assert.NoError(t, err)
	assert.Equal(t, commandHelp, cmd)

	cmd, _, err = parseCommand("abc")
	assert.EqualError(t, err, "not a card: abc")
	assert.Equal(t, commandHelp, cmd)
}

func TestPlayer_handle(t *testing.T) {
	session, err := memory.NewSession(logrus.StandardLogger(), memory.Options{Symbols: []deck.Symbol{"A"}})
	if !assert.NoError(t, err) {
		return
	}
	defer session.Close()

	buf := &bytes.Buffer{}
	p := &player{session: session, out: buf, columns: 2}

	assert.True(t, p.handle("0"))
	assert.True(t, p.handle("0"))
	assert.Contains(t, buf.String(), "Card 0 can't be turned over right now")

	assert.True(t, p.handle("1"))
	assert.True(t, p.render(true))
	assert.Contains(t, buf.String(), "You won in 1 moves and 00:00!")

	assert.True(t, p.handle("r"))
	assert.False(t, session.Status().IsWon)
	assert.False(t, p.handle("q"))
}
