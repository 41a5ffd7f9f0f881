package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
)

// GetSessionsQuery returns the full registry, djKey included. The listing is
// an operational surface, not a guest-facing one.
type GetSessionsQuery struct{}

func HandleGetSessions(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[GetSessionsQuery, []domain.Session](r.Context(), GetSessionsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetSessionsQueryHandler struct {
	store *storage.Store
}

func NewGetSessionsQueryHandler(store *storage.Store) *GetSessionsQueryHandler {
	return &GetSessionsQueryHandler{store}
}

func (h *GetSessionsQueryHandler) Handle(
	ctx context.Context,
	request GetSessionsQuery,
) ([]domain.Session, error) {
	sessions := []domain.Session{}

	err := h.store.View(func(state *storage.Snapshot) error {
		sessions = append(sessions, state.Sessions...)
		return nil
	})

	return sessions, err
}
