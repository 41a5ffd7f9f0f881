package queries

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/dj"
	wishdomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
)

type GetDJWishesQuery struct {
	SessionID string
	DJKey     string
}

func (q GetDJWishesQuery) Validate() error {
	if q.SessionID == "" || q.DJKey == "" {
		return fmt.Errorf("sessionId and djKey are required")
	}

	return nil
}

func HandleGetDJWishes(w http.ResponseWriter, r *http.Request) {
	query := GetDJWishesQuery{
		SessionID: r.URL.Query().Get("sessionId"),
		DJKey:     r.URL.Query().Get("djKey"),
	}

	response, err := mediator.Send[GetDJWishesQuery, []wishdomain.Wish](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetDJWishesQueryHandler struct {
	store *storage.Store
}

func NewGetDJWishesQueryHandler(store *storage.Store) *GetDJWishesQueryHandler {
	return &GetDJWishesQueryHandler{store}
}

func (h *GetDJWishesQueryHandler) Handle(
	ctx context.Context,
	request GetDJWishesQuery,
) ([]wishdomain.Wish, error) {
	wishes := []wishdomain.Wish{}

	err := h.store.View(func(state *storage.Snapshot) error {
		session, err := dj.AuthorizeSession(state, request.SessionID, request.DJKey)
		if err != nil {
			return err
		}

		wishes = append(wishes, state.WishesBySession(session.ID)...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return wishes, nil
}
