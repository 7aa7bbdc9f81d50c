package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"memorygame-server/pkg/room"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss

	// store for testing purposes
	gameRouter *gmux.Router
}

// NewMux returns a new HTTP mux
// The caller owns pitBoss and is responsible for starting and ending its shift.
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())
	}

	// requires an existing game
	{
		r := this.Router.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		r.Use(this.gameMiddleware)
		this.gameRouter = r

		r.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
		r.Methods(http.MethodDelete).Path("").Handler(this.deleteGameUUID())
		r.Methods(http.MethodPost).Path("/reveal").Handler(this.postGameUUIDReveal())
		r.Methods(http.MethodPost).Path("/reset").Handler(this.postGameUUIDReset())
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getGameUUIDWS())
	}

	return this
}

func (m *Mux) gameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer, ok := m.pitBoss.Dealer(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func dealerFromContext(r *http.Request) *room.Dealer {
	return r.Context().Value(ctxDealerKey).(*room.Dealer)
}
