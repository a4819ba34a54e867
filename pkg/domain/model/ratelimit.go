package model

import "time"

// RateLimit is a point-in-time view of the remote rate-limit budget as last
// observed from the API. Remaining goes stale the moment it is read; it is
// advisory only.
type RateLimit struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}
