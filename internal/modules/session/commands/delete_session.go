package commands

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

type DeleteSessionCommand struct {
	SessionID string
}

func (c DeleteSessionCommand) Validate() error {
	if c.SessionID == "" {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

// DeleteSessionResponse reports the removed session and how many of its
// wishes were cascaded away with it.
type DeleteSessionResponse struct {
	RemovedSession domain.Session `json:"removedSession"`
	RemovedWishes  int            `json:"removedWishes"`
}

func HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	command := DeleteSessionCommand{SessionID: chi.URLParam(r, "id")}

	response, err := mediator.Send[DeleteSessionCommand, DeleteSessionResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type DeleteSessionCommandHandler struct {
	store *storage.Store
}

func NewDeleteSessionCommandHandler(store *storage.Store) *DeleteSessionCommandHandler {
	return &DeleteSessionCommandHandler{store}
}

func (h *DeleteSessionCommandHandler) Handle(
	ctx context.Context,
	request DeleteSessionCommand,
) (DeleteSessionResponse, error) {
	var response DeleteSessionResponse

	err := h.store.Update(func(state *storage.Snapshot) error {
		removed, found := state.RemoveSession(request.SessionID)
		if !found {
			return core.NewCommandError(http.StatusNotFound, domain.ErrNotFound)
		}

		response = DeleteSessionResponse{
			RemovedSession: removed,
			RemovedWishes:  state.RemoveWishesBySession(request.SessionID),
		}
		return nil
	})
	if err != nil {
		return DeleteSessionResponse{}, err
	}

	return response, nil
}
