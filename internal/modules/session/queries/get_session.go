package queries

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type GetSessionQuery struct {
	SessionID string
}

func (q GetSessionQuery) Validate() error {
	if q.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	query := GetSessionQuery{SessionID: chi.URLParam(r, "id")}

	response, err := mediator.Send[GetSessionQuery, domain.Session](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetSessionQueryHandler struct {
	store *storage.Store
}

func NewGetSessionQueryHandler(store *storage.Store) *GetSessionQueryHandler {
	return &GetSessionQueryHandler{store}
}

func (h *GetSessionQueryHandler) Handle(
	ctx context.Context,
	request GetSessionQuery,
) (domain.Session, error) {
	var session domain.Session

	err := h.store.View(func(state *storage.Snapshot) error {
		found := state.SessionByID(request.SessionID)
		if found == nil {
			return core.NewCommandError(http.StatusNotFound, domain.ErrNotFound)
		}

		session = *found
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}

	return session, nil
}
