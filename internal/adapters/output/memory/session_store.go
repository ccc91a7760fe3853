package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/output"

	"github.com/google/uuid"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter holding the session in process
// memory. Used for tests and the ephemeral (no persistence) mode. The single
// session slot is swapped under a mutex, so readers never observe a
// half-updated session.
type MemorySessionStore struct {
	mu      sync.RWMutex
	session *domain.Session
	now     func() time.Time
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		now: time.Now,
	}
}

// Load returns the stored session, or nil if none is stored or it has
// expired. Expired sessions are dropped (lazy cleanup) so a later Load stays
// absent without any intervening write.
func (m *MemorySessionStore) Load() (*domain.Session, error) {
	m.mu.RLock()
	session := m.session
	m.mu.RUnlock()

	if session == nil {
		return nil, nil
	}

	if !session.IsComplete() || session.IsExpired(m.now()) {
		m.mu.Lock()
		// Re-check under the write lock; another writer may have replaced it.
		if m.session == session {
			m.session = nil
		}
		m.mu.Unlock()
		return nil, nil
	}

	copied := *session
	return &copied, nil
}

// Save stores the session, replacing any previous one in a single swap.
func (m *MemorySessionStore) Save(session *domain.Session) error {
	if session == nil || !session.IsComplete() || session.IsExpired(m.now()) {
		return domain.ErrInvalidSession
	}
	if _, err := uuid.Parse(session.UserID); err != nil {
		return fmt.Errorf("%w: bad user id: %v", domain.ErrInvalidSession, err)
	}

	copied := *session
	m.mu.Lock()
	m.session = &copied
	m.mu.Unlock()
	return nil
}

// Clear removes the session unconditionally.
func (m *MemorySessionStore) Clear() error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
	return nil
}
