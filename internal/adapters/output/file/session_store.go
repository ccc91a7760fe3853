package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure FileSessionStore implements SessionStore interface
var _ output.SessionStore = (*FileSessionStore)(nil)

// FileSessionStore struct - Output adapter persisting the session as a single
// JSON document on disk. The whole session is written as one unit via a
// temp-file rename, so a concurrent reader sees either the old session or the
// new one, never a partial write. Expired or malformed data is purged on read.
type FileSessionStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewFileSessionStore creates a session store backed by the given file path.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{
		path: path,
		now:  time.Now,
	}
}

// Load returns the current session, or nil when the file is missing, the
// payload is malformed, or the session has expired. Malformed and expired
// data is removed so it cannot resurrect on a later read.
func (f *FileSessionStore) Load() (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		logrus.Warnf("Malformed session file, purging: %v", err)
		return nil, f.removeLocked()
	}

	if !session.IsComplete() {
		logrus.Warn("Incomplete session file, purging")
		return nil, f.removeLocked()
	}

	if session.IsExpired(f.now()) {
		logrus.Info("Stored session has expired, purging")
		return nil, f.removeLocked()
	}

	return &session, nil
}

// Save persists the session atomically. Incomplete or already expired
// sessions are rejected so Load's validity guarantee holds by construction.
func (f *FileSessionStore) Save(session *domain.Session) error {
	if session == nil || !session.IsComplete() || session.IsExpired(f.now()) {
		return domain.ErrInvalidSession
	}
	if _, err := uuid.Parse(session.UserID); err != nil {
		return fmt.Errorf("%w: bad user id: %v", domain.ErrInvalidSession, err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set session file mode: %w", err)
	}

	// Rename is the atomic commit point.
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to commit session file: %w", err)
	}

	return nil
}

// Clear removes all session data unconditionally.
func (f *FileSessionStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removeLocked()
}

func (f *FileSessionStore) removeLocked() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
