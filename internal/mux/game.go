package mux

import (
	"errors"
	"net/http"

	"memorygame-server/pkg/deck"
	"memorygame-server/pkg/playable"
	"memorygame-server/pkg/playable/memory"
	"memorygame-server/pkg/room"
)

type gameResponse struct {
	ID     string      `json:"id"`
	Status interface{} `json:"status"`
}

func newGameResponse(dealer *room.Dealer) gameResponse {
	return gameResponse{
		ID:     dealer.ID,
		Status: dealer.State().Data,
	}
}

type symbolsPayload struct {
	Symbols []string `json:"symbols"`
}

// decodeSymbols reads an optional symbols payload
// A nil slice means the caller didn't ask for specific symbols.
func decodeSymbols(w http.ResponseWriter, r *http.Request) ([]deck.Symbol, bool) {
	var pp symbolsPayload
	if r.ContentLength != 0 && !decodeRequest(w, r, &pp) {
		return nil, false
	}

	if pp.Symbols == nil {
		return nil, true
	}

	if len(pp.Symbols) == 0 {
		writeJSONError(w, http.StatusBadRequest, memory.ErrNoSymbols)
		return nil, false
	}

	return deck.SymbolsFromStrings(pp.Symbols), true
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbols, ok := decodeSymbols(w, r)
		if !ok {
			return
		}

		dealer, err := m.pitBoss.CreateGame(symbols)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, newGameResponse(dealer))
	}
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newGameResponse(dealerFromContext(r)))
	}
}

func (m *Mux) deleteGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.pitBoss.EndGame(dealerFromContext(r).ID) {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type postRevealPayload struct {
	Position *int `json:"position"`
}

type revealResponse struct {
	Outcome string      `json:"outcome"`
	Status  interface{} `json:"status"`
}

func (m *Mux) postGameUUIDReveal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRevealPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Position == nil {
			writeJSONError(w, http.StatusBadRequest, memory.ErrMissingPosition)
			return
		}

		dealer := dealerFromContext(r)
		resp, err := dealer.Perform(&playable.PayloadIn{
			Action:         "reveal",
			AdditionalData: playable.AdditionalData{"position": *pp.Position},
		})
		if err != nil {
			writeActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, revealResponse{
			Outcome: resp.Value,
			Status:  dealer.State().Data,
		})
	}
}

func (m *Mux) postGameUUIDReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbols, ok := decodeSymbols(w, r)
		if !ok {
			return
		}

		msg := &playable.PayloadIn{Action: "reset"}
		if symbols != nil {
			msg.AdditionalData = playable.AdditionalData{"symbols": deck.SymbolsToStrings(symbols)}
		}

		dealer := dealerFromContext(r)
		if _, err := dealer.Perform(msg); err != nil {
			writeActionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newGameResponse(dealer))
	}
}

func writeActionError(w http.ResponseWriter, err error) {
	if errors.Is(err, memory.ErrSessionClosed) {
		writeJSONError(w, http.StatusNotFound, nil)
		return
	}

	writeJSONError(w, http.StatusBadRequest, err)
}
