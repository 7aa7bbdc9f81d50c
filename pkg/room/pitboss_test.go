package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable"
	"memorygame-server/pkg/playable/memory"
)

func TestPitBoss_CreateGame(t *testing.T) {
	a := assert.New(t)
	p, _ := setupTestPitBoss(t)

	d, err := p.CreateGame(nil)
	a.NoError(err)
	a.NotEmpty(d.ID)
	a.Equal(2, gameStatus(d.State()).Pairs)

	d2, err := p.CreateGame([]deck.Symbol{"x", "y", "z"})
	a.NoError(err)
	a.Equal(3, gameStatus(d2.State()).Pairs)
	a.NotEqual(d.ID, d2.ID)
	a.Equal(2, p.GameCount())

	found, ok := p.Dealer(d.ID)
	a.True(ok)
	a.Equal(d, found)

	_, ok = p.Dealer("missing")
	a.False(ok)

	d3, err := p.CreateGame([]deck.Symbol{"x", "x"})
	a.Nil(d3)
	a.Equal(memory.DuplicateSymbolError{Symbol: "x"}, err)
	a.Equal(2, p.GameCount())
}

func TestPitBoss_EndGame(t *testing.T) {
	p, _ := setupTestPitBoss(t)
	d, _ := p.CreateGame(nil)

	assert.True(t, p.EndGame(d.ID))
	assert.False(t, p.EndGame(d.ID))
	assert.Equal(t, 0, p.GameCount())

	_, ok := p.Dealer(d.ID)
	assert.False(t, ok)
}

func TestPitBoss_reap(t *testing.T) {
	a := assert.New(t)
	p, fc := setupTestPitBoss(t)

	idle, _ := p.CreateGame(nil)
	watched, _ := p.CreateGame(nil)
	watched.AddClient(NewClient(nil))

	a.Empty(p.reap(fc.Now()))

	fc.Advance(2 * time.Minute)
	a.Equal([]string{idle.ID}, p.reap(fc.Now()))
	a.Equal(1, p.GameCount())

	_, ok := p.Dealer(watched.ID)
	a.True(ok)
}

func TestPitBoss_StartShift(t *testing.T) {
	p, fc := setupTestPitBoss(t)
	_, _ = p.CreateGame(nil)

	p.StartShift()
	assert.Eventually(t, func() bool {
		fc.Advance(time.Minute)
		return p.GameCount() == 0
	}, time.Second, time.Millisecond)
}

func TestPitBoss_EndGame_closesClients(t *testing.T) {
	p, _ := setupTestPitBoss(t)
	d, _ := p.CreateGame(nil)

	c := NewClient(nil)
	d.AddClient(c)
	assert.True(t, p.EndGame(d.ID))

	select {
	case reason := <-c.Close:
		assert.Equal(t, "game ended", reason)
	case <-time.After(time.Second):
		t.Fatal("client was not closed")
	}

	_, err := d.Perform(&playable.PayloadIn{Action: "reset"})
	assert.Equal(t, memory.ErrSessionClosed, err)
}
