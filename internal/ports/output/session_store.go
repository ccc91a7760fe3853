package output

import "github.com/sopeal/AskYourFeed/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for the locally persisted auth session.
// The store is the one piece of process-wide mutable state; implementations
// must be safe for concurrent readers and writers, and a reader must never
// observe a half-updated session.
type SessionStore interface {
	// Load returns the current session, or nil if no session is stored, if
	// the stored data is malformed, or if the session has expired. Expiry is
	// checked on every read; expired or malformed data is actively purged so
	// stale sessions cannot silently resurrect. An error is returned only on
	// a storage access failure.
	Load() (*domain.Session, error)

	// Save persists the session atomically, all fields as one unit. A session
	// that is incomplete or already expired is rejected with
	// domain.ErrInvalidSession rather than stored.
	Save(session *domain.Session) error

	// Clear removes all session data unconditionally. Clearing an empty
	// store is not an error.
	Clear() error
}
