package storage

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	sessiondomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	wishdomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store owns the snapshot and mirrors it to a single flat JSON file. One
// mutex guards both collections so read-modify-write sequences (quota
// count-then-append, cascade delete) stay atomic under concurrent requests.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
	state  Snapshot
}

func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
		state: Snapshot{
			Sessions: []sessiondomain.Session{},
			Wishes:   []wishdomain.Wish{},
		},
	}
}

// sessionRecord is the persisted form of a session. Active and DJKey are kept
// loose so snapshots written before those fields existed can be migrated on
// load.
type sessionRecord struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Active    *bool                  `json:"active"`
	CreatedAt time.Time              `json:"createdAt"`
	Settings  sessiondomain.Settings `json:"settings"`
	DJKey     string                 `json:"djKey"`
}

type snapshotFile struct {
	Sessions []sessionRecord   `json:"sessions"`
	Wishes   []wishdomain.Wish `json:"wishes"`
}

// Load reads the snapshot from disk. A missing, empty or unreadable file is
// never an error: the store starts empty and logs why. Legacy sessions
// missing the active flag or a DJ key get defaults backfilled, and the
// corrected snapshot is persisted before Load returns.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no existing data file, starting empty", zap.String("path", s.path))
		} else {
			s.logger.Error(
				"failed to read data file, starting empty",
				zap.Error(errors.Wrap(err, "read data file")),
			)
		}
		return
	}

	if len(raw) == 0 {
		s.logger.Info("empty data file, starting empty", zap.String("path", s.path))
		return
	}

	var file snapshotFile
	if err := json.Unmarshal(raw, &file); err != nil {
		s.logger.Error(
			"failed to parse data file, starting empty",
			zap.Error(errors.Wrap(err, "parse data file")),
		)
		return
	}

	backfilled := false
	sessions := make([]sessiondomain.Session, 0, len(file.Sessions))
	for _, record := range file.Sessions {
		active := true
		if record.Active != nil {
			active = *record.Active
		} else {
			backfilled = true
		}

		djKey := record.DJKey
		if djKey == "" {
			djKey = sessiondomain.NewDJKey()
			backfilled = true
		}

		sessions = append(sessions, sessiondomain.Session{
			ID:        record.ID,
			Name:      record.Name,
			Active:    active,
			CreatedAt: record.CreatedAt,
			Settings:  record.Settings,
			DJKey:     djKey,
		})
	}

	wishes := file.Wishes
	if wishes == nil {
		wishes = []wishdomain.Wish{}
	}

	s.state = Snapshot{Sessions: sessions, Wishes: wishes}

	if backfilled {
		s.save()
	}

	s.logger.Info(
		"data loaded",
		zap.Int("sessions", len(s.state.Sessions)),
		zap.Int("wishes", len(s.state.Wishes)),
	)
}

// Update runs fn against the state under the lock and, when fn succeeds,
// flushes the full snapshot to disk before returning. A failed flush is
// logged and swallowed: the in-memory state stays authoritative and the
// operation still reports success.
func (s *Store) Update(fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.state); err != nil {
		return err
	}

	s.save()
	return nil
}

// View runs fn against the state under the lock. fn must copy out anything
// it wants to keep.
func (s *Store) View(fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&s.state)
}

// save writes the pretty-printed snapshot, staging to a temp file first so a
// failed write never truncates the previous snapshot. Callers hold s.mu.
func (s *Store) save() {
	payload, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		s.logger.Error("failed to serialize snapshot", zap.Error(err))
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		s.logger.Error(
			"failed to write data file",
			zap.Error(errors.Wrap(err, "write data file")),
		)
		return
	}

	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error(
			"failed to replace data file",
			zap.Error(errors.Wrap(err, "replace data file")),
		)
	}
}
