package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// UpdateSessionSettingsCommand merges only the provided fields. Absent fields
// keep their prior value; an explicit but unparseable boolean becomes false,
// unlike the creation path where absent defaults to true.
type UpdateSessionSettingsCommand struct {
	SessionID         string          `json:"-"`
	MaxWishesPerGuest json.RawMessage `json:"maxWishesPerGuest,omitempty"`
	RequireName       json.RawMessage `json:"requireName,omitempty"`
	AllowComment      json.RawMessage `json:"allowComment,omitempty"`
}

func (c UpdateSessionSettingsCommand) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

func HandleUpdateSessionSettings(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[UpdateSessionSettingsCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.SessionID = chi.URLParam(r, "id")

	response, err := mediator.Send[UpdateSessionSettingsCommand, domain.Session](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type UpdateSessionSettingsCommandHandler struct {
	store *storage.Store
}

func NewUpdateSessionSettingsCommandHandler(store *storage.Store) *UpdateSessionSettingsCommandHandler {
	return &UpdateSessionSettingsCommandHandler{store}
}

func (h *UpdateSessionSettingsCommandHandler) Handle(
	ctx context.Context,
	request UpdateSessionSettingsCommand,
) (domain.Session, error) {
	var updated domain.Session

	err := h.store.Update(func(state *storage.Snapshot) error {
		session := state.SessionByID(request.SessionID)
		if session == nil {
			return core.NewCommandError(http.StatusNotFound, domain.ErrNotFound)
		}

		if request.MaxWishesPerGuest != nil {
			session.Settings.MaxWishesPerGuest = domain.ParseLimit(request.MaxWishesPerGuest)
		}

		if request.RequireName != nil {
			session.Settings.RequireName = domain.ParseFlag(request.RequireName, false)
		}

		if request.AllowComment != nil {
			session.Settings.AllowComment = domain.ParseFlag(request.AllowComment, false)
		}

		updated = *session
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}

	return updated, nil
}
