package commands

import (
	"context"
	"net/http"
	"strconv"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// SetWishStatusCommand is the ungated admin-panel status transition.
// The DJ-key-gated variant lives in the dj module.
type SetWishStatusCommand struct {
	WishID int64  `json:"-"`
	Status string `json:"status"`
}

func (c SetWishStatusCommand) Validate() error {
	if !domain.Status(c.Status).Valid() {
		return domain.ErrInvalidStatus
	}

	return nil
}

func HandleSetWishStatus(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[SetWishStatusCommand](r)
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

	response, err := mediator.Send[SetWishStatusCommand, domain.Wish](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type SetWishStatusCommandHandler struct {
	store *storage.Store
}

func NewSetWishStatusCommandHandler(store *storage.Store) *SetWishStatusCommandHandler {
	return &SetWishStatusCommandHandler{store}
}

func (h *SetWishStatusCommandHandler) Handle(
	ctx context.Context,
	request SetWishStatusCommand,
) (domain.Wish, error) {
	var updated domain.Wish

	err := h.store.Update(func(state *storage.Snapshot) error {
		wish := state.WishByID(request.WishID)
		if wish == nil {
			return core.NewCommandError(http.StatusNotFound, domain.ErrNotFound)
		}

		wish.Status = domain.Status(request.Status)

		updated = *wish
		return nil
	})
	if err != nil {
		return domain.Wish{}, err
	}

	return updated, nil
}
