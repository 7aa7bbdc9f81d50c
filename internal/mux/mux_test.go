package mux

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"memorygame-server/internal/rng"
	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable/memory"
	"memorygame-server/pkg/room"
)

const unknownGame = "/game/00000000-0000-0000-0000-000000000000"

type testGameResponse struct {
	ID     string        `json:"id"`
	Status memory.Status `json:"status"`
}

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), memory.Options{
		Symbols:   []deck.Symbol{"A", "B"},
		Clock:     clockwork.NewFakeClock(),
		Generator: rng.NewSeeded(1),
	}, time.Minute)

	ts := httptest.NewServer(NewMux("v1.2.3", pitBoss))
	t.Cleanup(func() {
		ts.Close()
		pitBoss.EndShift()
	})

	return ts
}

func createTestGame(t *testing.T, ts *httptest.Server, symbols ...string) testGameResponse {
	t.Helper()

	var payload interface{}
	if len(symbols) > 0 {
		payload = symbolsPayload{Symbols: symbols}
	}

	var game testGameResponse
	assertPost(t, ts, "/game", payload, &game, 201)
	return game
}

func TestMux_gameMiddleware(t *testing.T) {
	ts := setupTestServer(t)

	var errObj errorResponse
	assertGet(t, ts, unknownGame, &errObj, 404)
	assert.Equal(t, "Not Found", errObj.Message)
	assert.Equal(t, 404, errObj.StatusCode)

	assertGet(t, ts, "/game/not-a-uuid", nil, 404)
}
