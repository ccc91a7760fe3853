package domain

import "time"

// Session represents the locally persisted proof of authentication for the
// AskYourFeed user: the bearer token plus the profile fields needed by the
// client, and the server-assigned expiry.
type Session struct {
	Token        string    `json:"session_token"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	XUsername    string    `json:"x_username"`
	XDisplayName string    `json:"x_display_name"`
	ExpiresAt    time.Time `json:"session_expires_at"`
}

// IsExpired reports whether the session has passed its expiry at the given
// instant. A session expiring exactly now counts as expired.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsComplete reports whether the session carries everything needed to act as
// an authenticated client. A session without a token or without an expiry is
// unusable and must be treated as absent by stores.
func (s *Session) IsComplete() bool {
	return s.Token != "" && s.UserID != "" && !s.ExpiresAt.IsZero()
}
