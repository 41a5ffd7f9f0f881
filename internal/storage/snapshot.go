package storage

import (
	"time"

	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	sessiondomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	wishdomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
)

// Snapshot is the entire application state: the session registry and the wish
// ledger. The two collections are always locked, mutated and persisted as a
// unit.
type Snapshot struct {
	Sessions []sessiondomain.Session `json:"sessions"`
	Wishes   []wishdomain.Wish       `json:"wishes"`
}

// SessionByID returns a pointer into the registry so callers holding the
// store lock can mutate the session in place. Nil when the id is unknown.
func (s *Snapshot) SessionByID(id string) *sessiondomain.Session {
	for i := range s.Sessions {
		if s.Sessions[i].ID == id {
			return &s.Sessions[i]
		}
	}
	return nil
}

// RemoveSession deletes the session with the given id, returning the removed
// entry. Wishes are not touched; see RemoveWishesBySession for the cascade.
func (s *Snapshot) RemoveSession(id string) (sessiondomain.Session, bool) {
	for i := range s.Sessions {
		if s.Sessions[i].ID == id {
			removed := s.Sessions[i]
			s.Sessions = append(s.Sessions[:i], s.Sessions[i+1:]...)
			return removed, true
		}
	}
	return sessiondomain.Session{}, false
}

// RemoveWishesBySession drops every wish belonging to the session and
// returns how many were removed.
func (s *Snapshot) RemoveWishesBySession(sessionID string) int {
	before := len(s.Wishes)
	s.Wishes = core.Filter(s.Wishes, func(w wishdomain.Wish) bool {
		return w.SessionID != sessionID
	})
	return before - len(s.Wishes)
}

func (s *Snapshot) WishByID(id int64) *wishdomain.Wish {
	for i := range s.Wishes {
		if s.Wishes[i].ID == id {
			return &s.Wishes[i]
		}
	}
	return nil
}

// WishBySessionAndID scopes the lookup to one session, so a DJ key cannot be
// used to reach a wish submitted to a different session.
func (s *Snapshot) WishBySessionAndID(sessionID string, id int64) *wishdomain.Wish {
	for i := range s.Wishes {
		if s.Wishes[i].ID == id && s.Wishes[i].SessionID == sessionID {
			return &s.Wishes[i]
		}
	}
	return nil
}

// WishesBySession returns a fresh slice of the session's wishes.
func (s *Snapshot) WishesBySession(sessionID string) []wishdomain.Wish {
	return core.Filter(s.Wishes, func(w wishdomain.Wish) bool {
		return w.SessionID == sessionID
	})
}

func (s *Snapshot) CountWishesByDevice(sessionID, deviceID string) int {
	count := 0
	for _, w := range s.Wishes {
		if w.SessionID == sessionID && w.DeviceID != nil && *w.DeviceID == deviceID {
			count++
		}
	}
	return count
}

func (s *Snapshot) CountWishesByGuestName(sessionID, name string) int {
	normalized := wishdomain.NormalizeGuestName(name)

	count := 0
	for _, w := range s.Wishes {
		if w.SessionID == sessionID && wishdomain.NormalizeGuestName(w.Name) == normalized {
			count++
		}
	}
	return count
}

// NextWishID derives a wish id from the submission time. Wishes are appended
// in creation order, so the newest id is the last entry; when the clock has
// not moved past it the id is bumped to keep the sequence unique and
// non-decreasing.
func (s *Snapshot) NextWishID(now time.Time) int64 {
	id := now.UnixMilli()
	if n := len(s.Wishes); n > 0 {
		if last := s.Wishes[n-1].ID; id <= last {
			id = last + 1
		}
	}
	return id
}
