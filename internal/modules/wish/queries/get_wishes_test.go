package queries

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedWishes(t *testing.T, wishes ...domain.Wish) *storage.Store {
	t.Helper()

	store := storage.NewStore(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
	err := store.Update(func(state *storage.Snapshot) error {
		state.Wishes = append(state.Wishes, wishes...)
		return nil
	})
	require.NoError(t, err)

	return store
}

func Test_GetWishes_Returns_All_Without_Filter(t *testing.T) {
	// Arrange
	store := seedWishes(t,
		domain.Wish{ID: 1, SessionID: "A"},
		domain.Wish{ID: 2, SessionID: "B"},
	)

	// Act
	wishes, err := NewGetWishesQueryHandler(store).Handle(context.Background(), GetWishesQuery{})

	// Assert
	require.NoError(t, err)
	require.Len(t, wishes, 2)
}

func Test_GetWishes_Filters_By_Session(t *testing.T) {
	// Arrange
	store := seedWishes(t,
		domain.Wish{ID: 1, SessionID: "A"},
		domain.Wish{ID: 2, SessionID: "B"},
		domain.Wish{ID: 3, SessionID: "A"},
	)

	// Act
	wishes, err := NewGetWishesQueryHandler(store).Handle(context.Background(), GetWishesQuery{SessionID: "A"})

	// Assert
	require.NoError(t, err)
	require.Len(t, wishes, 2)
	for _, w := range wishes {
		require.Equal(t, "A", w.SessionID)
	}
}

func Test_GetWishes_Unknown_Session_Returns_Empty_List(t *testing.T) {
	// Arrange
	store := seedWishes(t, domain.Wish{ID: 1, SessionID: "A"})

	// Act
	wishes, err := NewGetWishesQueryHandler(store).Handle(context.Background(), GetWishesQuery{SessionID: "NOPE"})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, wishes)
	require.Empty(t, wishes)
}
