package commands

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/dj"
	wishdomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// SetDJWishStatusCommand is the key-gated status transition. The wish lookup
// is scoped to the authorized session, so a valid key for one session cannot
// mutate another session's wishes.
type SetDJWishStatusCommand struct {
	WishID    int64  `json:"-"`
	Status    string `json:"status"`
	SessionID string `json:"sessionId"`
	DJKey     string `json:"djKey"`
}

func (c SetDJWishStatusCommand) Validate() error {
	if !wishdomain.Status(c.Status).Valid() {
		return wishdomain.ErrInvalidStatus
	}

	if c.SessionID == "" || c.DJKey == "" {
		return fmt.Errorf("sessionId and djKey are required")
	}

	return nil
}

func HandleSetDJWishStatus(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[SetDJWishStatusCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	wishID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.WishID = wishID

	response, err := mediator.Send[SetDJWishStatusCommand, wishdomain.Wish](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type SetDJWishStatusCommandHandler struct {
	store *storage.Store
}

func NewSetDJWishStatusCommandHandler(store *storage.Store) *SetDJWishStatusCommandHandler {
	return &SetDJWishStatusCommandHandler{store}
}

func (h *SetDJWishStatusCommandHandler) Handle(
	ctx context.Context,
	request SetDJWishStatusCommand,
) (wishdomain.Wish, error) {
	var updated wishdomain.Wish

	err := h.store.Update(func(state *storage.Snapshot) error {
		session, err := dj.AuthorizeSession(state, request.SessionID, request.DJKey)
		if err != nil {
			return err
		}

		wish := state.WishBySessionAndID(session.ID, request.WishID)
		if wish == nil {
			return core.NewCommandError(http.StatusNotFound, wishdomain.ErrNotFound)
		}

		wish.Status = wishdomain.Status(request.Status)

		updated = *wish
		return nil
	})
	if err != nil {
		return wishdomain.Wish{}, err
	}

	return updated, nil
}
