package status

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
)

type GetStatusQuery struct{}

type GetStatusResponse struct {
	Message       string `json:"message"`
	SessionsCount int    `json:"sessionsCount"`
	WishesCount   int    `json:"wishesCount"`
}

func HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetStatusQuery, GetStatusResponse](r.Context(), GetStatusQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetStatusQueryHandler struct {
	store *storage.Store
}

func NewGetStatusQueryHandler(store *storage.Store) *GetStatusQueryHandler {
	return &GetStatusQueryHandler{store}
}

func (h *GetStatusQueryHandler) Handle(
	ctx context.Context,
	request GetStatusQuery,
) (GetStatusResponse, error) {
	response := GetStatusResponse{Message: "DJ Wishboard is running"}

	err := h.store.View(func(state *storage.Snapshot) error {
		response.SessionsCount = len(state.Sessions)
		response.WishesCount = len(state.Wishes)
		return nil
	})

	return response, err
}
