package commands

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
)

type SubmitWishCommand struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Comment   string `json:"comment"`
	SessionID string `json:"sessionId"`
	DeviceID  string `json:"deviceId"`
}

func (c SubmitWishCommand) Validate() error {
	if strings.TrimSpace(c.Title) == "" ||
		strings.TrimSpace(c.Artist) == "" ||
		c.SessionID == "" {
		return domain.ErrMissingFields
	}

	return nil
}

func HandleSubmitWish(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[SubmitWishCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[SubmitWishCommand, domain.Wish](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type SubmitWishCommandHandler struct {
	store *storage.Store
}

func NewSubmitWishCommandHandler(store *storage.Store) *SubmitWishCommandHandler {
	return &SubmitWishCommandHandler{store}
}

// Handle runs the whole submission pipeline inside one store update so the
// quota count and the append are atomic with respect to concurrent
// submissions for the same session.
func (h *SubmitWishCommandHandler) Handle(
	ctx context.Context,
	request SubmitWishCommand,
) (domain.Wish, error) {
	trimmedName := strings.TrimSpace(request.Name)

	var wish domain.Wish
	err := h.store.Update(func(state *storage.Snapshot) error {
		session := state.SessionByID(request.SessionID)
		if session == nil || !session.Active {
			return core.NewCommandError(http.StatusBadRequest, domain.ErrInvalidSession)
		}

		settings := session.Settings

		if settings.RequireName && trimmedName == "" {
			return core.NewCommandError(http.StatusBadRequest, domain.ErrNameRequired)
		}

		if settings.MaxWishesPerGuest > 0 {
			existing := 0
			if request.DeviceID != "" {
				existing = state.CountWishesByDevice(session.ID, request.DeviceID)
			} else {
				existing = state.CountWishesByGuestName(session.ID, trimmedName)
			}

			if existing >= settings.MaxWishesPerGuest {
				return core.NewCommandError(
					http.StatusBadRequest,
					domain.QuotaExceededError{Limit: settings.MaxWishesPerGuest},
				)
			}
		}

		name := trimmedName
		if name == "" {
			name = domain.GuestFallbackName
		}

		var deviceID *string
		if request.DeviceID != "" {
			deviceID = &request.DeviceID
		}

		now := time.Now().UTC()
		wish = domain.Wish{
			ID:          state.NextWishID(now),
			SessionID:   session.ID,
			SessionName: session.Name,
			Name:        name,
			Title:       strings.TrimSpace(request.Title),
			Artist:      strings.TrimSpace(request.Artist),
			Comment:     strings.TrimSpace(request.Comment),
			DeviceID:    deviceID,
			Status:      domain.StatusOpen,
			CreatedAt:   now,
		}

		state.Wishes = append(state.Wishes, wish)
		return nil
	})
	if err != nil {
		return domain.Wish{}, err
	}

	return wish, nil
}
