package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// GuestFallbackName is stored when a guest leaves the name blank and the
// session does not require one.
const GuestFallbackName = "Gast"

var (
	ErrMissingFields  = errors.New("title, artist and session are required")
	ErrInvalidSession = errors.New("session is invalid or not active")
	ErrNameRequired   = errors.New("a name is required in this session")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNotFound       = errors.New("wish not found")
)

// QuotaExceededError reports that a guest hit the per-session wish limit.
type QuotaExceededError struct {
	Limit int
}

func (e QuotaExceededError) Error() string {
	return fmt.Sprintf("the maximum of %d wishes for this session has been reached", e.Limit)
}

type Status string

const (
	StatusOpen     Status = "open"
	StatusDone     Status = "done"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusDone, StatusRejected:
		return true
	}
	return false
}

// Wish is a single song request. SessionName is denormalized at submission
// time and not updated afterwards. DeviceID is an opaque client-supplied
// identifier used only for quota tracking; nil when the client sent none.
type Wish struct {
	ID          int64     `json:"id"`
	SessionID   string    `json:"sessionId"`
	SessionName string    `json:"sessionName"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Comment     string    `json:"comment"`
	DeviceID    *string   `json:"deviceId"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NormalizeGuestName is the identity used for quota counting when no device
// id is supplied: case-insensitive, surrounding whitespace ignored.
func NormalizeGuestName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
