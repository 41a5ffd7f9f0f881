package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
)

// GetWishesQuery lists every wish, or only one session's when SessionID is set.
type GetWishesQuery struct {
	SessionID string
}

func HandleGetWishes(w http.ResponseWriter, r *http.Request) {
	query := GetWishesQuery{SessionID: r.URL.Query().Get("sessionId")}

	response, err := mediator.Send[GetWishesQuery, []domain.Wish](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetWishesQueryHandler struct {
	store *storage.Store
}

func NewGetWishesQueryHandler(store *storage.Store) *GetWishesQueryHandler {
	return &GetWishesQueryHandler{store}
}

func (h *GetWishesQueryHandler) Handle(
	ctx context.Context,
	request GetWishesQuery,
) ([]domain.Wish, error) {
	wishes := []domain.Wish{}

	err := h.store.View(func(state *storage.Snapshot) error {
		if request.SessionID != "" {
			wishes = append(wishes, state.WishesBySession(request.SessionID)...)
			return nil
		}

		wishes = append(wishes, state.Wishes...)
		return nil
	})

	return wishes, err
}
