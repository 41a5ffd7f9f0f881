package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
)

// CreateSessionCommand carries the raw settings input. The boolean fields stay
// unparsed until the handler applies the creation truth table (absent -> true).
type CreateSessionCommand struct {
	Name              string          `json:"name"`
	MaxWishesPerGuest json.RawMessage `json:"maxWishesPerGuest,omitempty"`
	RequireName       json.RawMessage `json:"requireName,omitempty"`
	AllowComment      json.RawMessage `json:"allowComment,omitempty"`
}

func (c CreateSessionCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("invalid Name - '%s'", c.Name)
	}

	return nil
}

func HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreateSessionCommand, domain.Session](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	location := path.Join(r.Host, "api", "sessions", response.ID)
	core.WriteCreated(w, r, location, response)
}

type CreateSessionCommandHandler struct {
	store *storage.Store
}

func NewCreateSessionCommandHandler(store *storage.Store) *CreateSessionCommandHandler {
	return &CreateSessionCommandHandler{store}
}

func (h *CreateSessionCommandHandler) Handle(
	ctx context.Context,
	request CreateSessionCommand,
) (domain.Session, error) {
	session := domain.Session{
		ID:        domain.NewSessionID(),
		Name:      strings.TrimSpace(request.Name),
		Active:    true,
		CreatedAt: time.Now().UTC(),
		Settings: domain.Settings{
			MaxWishesPerGuest: domain.ParseLimit(request.MaxWishesPerGuest),
			RequireName:       domain.ParseFlag(request.RequireName, true),
			AllowComment:      domain.ParseFlag(request.AllowComment, true),
		},
		DJKey: domain.NewDJKey(),
	}

	err := h.store.Update(func(state *storage.Snapshot) error {
		state.Sessions = append(state.Sessions, session)
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}

	return session, nil
}
