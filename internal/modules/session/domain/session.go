package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Settings control how guests can submit wishes to a session.
type Settings struct {
	// 0 means unlimited.
	MaxWishesPerGuest int  `json:"maxWishesPerGuest"`
	RequireName       bool `json:"requireName"`
	AllowComment      bool `json:"allowComment"`
}

// Session is a single wishboard event. The ID is the short code guests use,
// the DJKey is the bearer secret gating the DJ tier of the API.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	Settings  Settings  `json:"settings"`
	DJKey     string    `json:"djKey"`
}
