package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// SetSessionActiveCommand toggles whether a session accepts new wishes.
// Deactivated sessions stay readable and listable.
type SetSessionActiveCommand struct {
	SessionID string          `json:"-"`
	Active    json.RawMessage `json:"active,omitempty"`
}

func (c SetSessionActiveCommand) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

func HandleSetSessionActive(w http.ResponseWriter, r *http.Request) {
	// An empty body counts as an absent flag and deactivates the session.
	command, err := core.RequestBody[SetSessionActiveCommand](r)
	if err != nil && !errors.Is(err, io.EOF) {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.SessionID = chi.URLParam(r, "id")

	response, err := mediator.Send[SetSessionActiveCommand, domain.Session](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type SetSessionActiveCommandHandler struct {
	store *storage.Store
}

func NewSetSessionActiveCommandHandler(store *storage.Store) *SetSessionActiveCommandHandler {
	return &SetSessionActiveCommandHandler{store}
}

func (h *SetSessionActiveCommandHandler) Handle(
	ctx context.Context,
	request SetSessionActiveCommand,
) (domain.Session, error) {
	var updated domain.Session

	err := h.store.Update(func(state *storage.Snapshot) error {
		session := state.SessionByID(request.SessionID)
		if session == nil {
			return core.NewCommandError(http.StatusNotFound, domain.ErrNotFound)
		}

		session.Active = domain.ParseActive(request.Active)

		updated = *session
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}

	return updated, nil
}
