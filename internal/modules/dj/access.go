package dj

import (
	"errors"
	"net/http"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	sessiondomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"
)

var ErrInvalidKey = errors.New("no access to this session (invalid DJ key)")

// AuthorizeSession gates the DJ tier: the session must exist (404 when it
// does not, even with a key supplied) and the key must match the stored
// djKey exactly (403 otherwise). An unset stored key never matches.
func AuthorizeSession(state *storage.Snapshot, sessionID, djKey string) (sessiondomain.Session, error) {
	session := state.SessionByID(sessionID)
	if session == nil {
		return sessiondomain.Session{}, core.NewCommandError(http.StatusNotFound, sessiondomain.ErrNotFound)
	}

	if session.DJKey == "" || session.DJKey != djKey {
		return sessiondomain.Session{}, core.NewCommandError(http.StatusForbidden, ErrInvalidKey)
	}

	return *session, nil
}
