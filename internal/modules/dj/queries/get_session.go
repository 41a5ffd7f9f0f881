package queries

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/dj"
	sessiondomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
)

type GetDJSessionQuery struct {
	SessionID string
	DJKey     string
}

func (q GetDJSessionQuery) Validate() error {
	if q.SessionID == "" || q.DJKey == "" {
		return fmt.Errorf("sessionId and djKey are required")
	}

	return nil
}

func HandleGetDJSession(w http.ResponseWriter, r *http.Request) {
	query := GetDJSessionQuery{
		SessionID: r.URL.Query().Get("sessionId"),
		DJKey:     r.URL.Query().Get("djKey"),
	}

	response, err := mediator.Send[GetDJSessionQuery, sessiondomain.Session](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetDJSessionQueryHandler struct {
	store *storage.Store
}

func NewGetDJSessionQueryHandler(store *storage.Store) *GetDJSessionQueryHandler {
	return &GetDJSessionQueryHandler{store}
}

func (h *GetDJSessionQueryHandler) Handle(
	ctx context.Context,
	request GetDJSessionQuery,
) (sessiondomain.Session, error) {
	var session sessiondomain.Session

	err := h.store.View(func(state *storage.Snapshot) error {
		authorized, err := dj.AuthorizeSession(state, request.SessionID, request.DJKey)
		if err != nil {
			return err
		}

		session = authorized
		return nil
	})
	if err != nil {
		return sessiondomain.Session{}, err
	}

	return session, nil
}
