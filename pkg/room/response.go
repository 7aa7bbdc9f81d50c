package room

import (
	"memorygame-server/pkg/playable"
)

type clientState struct {
	Clients int `json:"clients"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
