package room

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"memorygame-server/internal/rng"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable"
	"memorygame-server/pkg/playable/memory"
)

func setupTestPitBoss(t *testing.T) (*PitBoss, *clockwork.FakeClock) {
	t.Helper()

	fc := clockwork.NewFakeClock()
	p := NewPitBoss(logrus.StandardLogger(), memory.Options{
		Symbols:   []deck.Symbol{"A", "B"},
		Clock:     fc,
		Generator: rng.NewSeeded(1),
	}, time.Minute)

	t.Cleanup(p.EndShift)
	return p, fc
}

// waitFor reads from the client until a response with the key satisfies match
func waitFor(t *testing.T, c *Client, key string, match func(*playable.Response) bool) *playable.Response {
	t.Helper()

	timeout := time.After(time.Second)
	for {
		select {
		case msg := <-c.SendChan():
			resp, ok := msg.(*playable.Response)
			if ok && resp.Key == key && (match == nil || match(resp)) {
				return resp
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", key)
			return nil
		}
	}
}

func gameStatus(resp *playable.Response) memory.Status {
	return resp.Data.(memory.Status)
}
