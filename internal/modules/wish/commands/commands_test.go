package commands

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	sessiondomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
}

func seedSession(t *testing.T, store *storage.Store, session sessiondomain.Session) sessiondomain.Session {
	t.Helper()

	if session.ID == "" {
		session.ID = sessiondomain.NewSessionID()
	}
	if session.DJKey == "" {
		session.DJKey = sessiondomain.NewDJKey()
	}

	err := store.Update(func(state *storage.Snapshot) error {
		state.Sessions = append(state.Sessions, session)
		return nil
	})
	require.NoError(t, err)

	return session
}

func Test_SubmitWishCommand_Requires_Title_Artist_And_Session(t *testing.T) {
	valid := SubmitWishCommand{Title: "Song", Artist: "Artist", SessionID: "ABC123"}
	require.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = " "
	require.ErrorIs(t, missingTitle.Validate(), domain.ErrMissingFields)

	missingArtist := valid
	missingArtist.Artist = ""
	require.ErrorIs(t, missingArtist.Validate(), domain.ErrMissingFields)

	missingSession := valid
	missingSession.SessionID = ""
	require.ErrorIs(t, missingSession.Validate(), domain.ErrMissingFields)
}

func Test_SubmitWish_Defaults_Name_To_Gast(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	session := seedSession(t, store, sessiondomain.Session{Name: "Party", Active: true})

	// Act
	wish, err := NewSubmitWishCommandHandler(store).Handle(context.Background(), SubmitWishCommand{
		Title:     "  Song A  ",
		Artist:    " Artist A ",
		Comment:   " nice one ",
		SessionID: session.ID,
	})

	// Assert
	require.NoError(t, err)
	require.Equal(t, domain.GuestFallbackName, wish.Name)
	require.Equal(t, "Song A", wish.Title)
	require.Equal(t, "Artist A", wish.Artist)
	require.Equal(t, "nice one", wish.Comment)
	require.Equal(t, domain.StatusOpen, wish.Status)
	require.Equal(t, session.Name, wish.SessionName)
	require.Nil(t, wish.DeviceID)
}

func Test_SubmitWish_Rejects_Inactive_Session(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	session := seedSession(t, store, sessiondomain.Session{Name: "Over", Active: false})

	// Act
	_, err := NewSubmitWishCommandHandler(store).Handle(context.Background(), SubmitWishCommand{
		Title:     "Song",
		Artist:    "Artist",
		SessionID: session.ID,
	})

	// Assert
	var commandErr core.CommandError
	require.ErrorAs(t, err, &commandErr)
	require.Equal(t, http.StatusBadRequest, commandErr.StatusCode)
	require.ErrorIs(t, err, domain.ErrInvalidSession)
}

func Test_SubmitWish_Rejects_Unknown_Session(t *testing.T) {
	// Arrange
	store := newTestStore(t)

	// Act
	_, err := NewSubmitWishCommandHandler(store).Handle(context.Background(), SubmitWishCommand{
		Title:     "Song",
		Artist:    "Artist",
		SessionID: "MISSING",
	})

	// Assert
	require.ErrorIs(t, err, domain.ErrInvalidSession)
}

func Test_SubmitWish_Enforces_Name_Requirement(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	session := seedSession(t, store, sessiondomain.Session{
		Name:     "Strict",
		Active:   true,
		Settings: sessiondomain.Settings{RequireName: true},
	})

	// Act
	_, err := NewSubmitWishCommandHandler(store).Handle(context.Background(), SubmitWishCommand{
		Name:      "   ",
		Title:     "Song",
		Artist:    "Artist",
		SessionID: session.ID,
	})

	// Assert
	require.ErrorIs(t, err, domain.ErrNameRequired)
}

func Test_SubmitWish_Quota_By_Device(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	session := seedSession(t, store, sessiondomain.Session{
		Name:     "Limited",
		Active:   true,
		Settings: sessiondomain.Settings{MaxWishesPerGuest: 1},
	})

	handler := NewSubmitWishCommandHandler(store)
	command := SubmitWishCommand{
		Title:     "Song A",
		Artist:    "Artist A",
		SessionID: session.ID,
		DeviceID:  "dev1",
	}

	// Act
	first, err := handler.Handle(context.Background(), command)
	require.NoError(t, err)
	require.NotNil(t, first.DeviceID)
	require.Equal(t, "dev1", *first.DeviceID)

	_, err = handler.Handle(context.Background(), command)

	// Assert
	var quotaErr domain.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	require.Equal(t, 1, quotaErr.Limit)
	require.Contains(t, err.Error(), "1")

	// A different device is still allowed.
	command.DeviceID = "dev2"
	_, err = handler.Handle(context.Background(), command)
	require.NoError(t, err)
}

func Test_SubmitWish_Quota_By_Name_Is_Case_And_Trim_Insensitive(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	session := seedSession(t, store, sessiondomain.Session{
		Name:     "Limited",
		Active:   true,
		Settings: sessiondomain.Settings{MaxWishesPerGuest: 2},
	})

	handler := NewSubmitWishCommandHandler(store)
	submit := func(name string) error {
		_, err := handler.Handle(context.Background(), SubmitWishCommand{
			Name:      name,
			Title:     "Song",
			Artist:    "Artist",
			SessionID: session.ID,
		})
		return err
	}

	// Act
	require.NoError(t, submit("Alice"))
	require.NoError(t, submit(" alice "))
	err := submit("ALICE")

	// Assert
	var quotaErr domain.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	require.Equal(t, 2, quotaErr.Limit)

	require.NoError(t, submit("Bob"))
}

func Test_SubmitWish_Assigns_Increasing_IDs(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	session := seedSession(t, store, sessiondomain.Session{Name: "Party", Active: true})
	handler := NewSubmitWishCommandHandler(store)

	command := SubmitWishCommand{Title: "Song", Artist: "Artist", SessionID: session.ID}

	// Act
	first, err := handler.Handle(context.Background(), command)
	require.NoError(t, err)

	second, err := handler.Handle(context.Background(), command)
	require.NoError(t, err)

	// Assert
	require.Greater(t, second.ID, first.ID)
}

func Test_SetWishStatusCommand_Rejects_Unknown_Status(t *testing.T) {
	require.ErrorIs(t, SetWishStatusCommand{Status: "paused"}.Validate(), domain.ErrInvalidStatus)
	require.ErrorIs(t, SetWishStatusCommand{Status: ""}.Validate(), domain.ErrInvalidStatus)
	require.NoError(t, SetWishStatusCommand{Status: "open"}.Validate())
	require.NoError(t, SetWishStatusCommand{Status: "done"}.Validate())
	require.NoError(t, SetWishStatusCommand{Status: "rejected"}.Validate())
}

func Test_SetWishStatus_Updates_Existing_Wish(t *testing.T) {
	// Arrange
	store := newTestStore(t)
	session := seedSession(t, store, sessiondomain.Session{Name: "Party", Active: true})

	wish, err := NewSubmitWishCommandHandler(store).Handle(context.Background(), SubmitWishCommand{
		Title:     "Song",
		Artist:    "Artist",
		SessionID: session.ID,
	})
	require.NoError(t, err)

	// Act
	updated, err := NewSetWishStatusCommandHandler(store).Handle(context.Background(), SetWishStatusCommand{
		WishID: wish.ID,
		Status: "done",
	})

	// Assert
	require.NoError(t, err)
	require.Equal(t, domain.StatusDone, updated.Status)
}

func Test_SetWishStatus_Unknown_Wish_Is_NotFound(t *testing.T) {
	// Arrange
	store := newTestStore(t)

	// Act
	_, err := NewSetWishStatusCommandHandler(store).Handle(context.Background(), SetWishStatusCommand{
		WishID: 42,
		Status: "done",
	})

	// Assert
	var commandErr core.CommandError
	require.ErrorAs(t, err, &commandErr)
	require.Equal(t, http.StatusNotFound, commandErr.StatusCode)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
