package file

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

func testSession(expiresAt time.Time) *domain.Session {
	return &domain.Session{
		Token:        "tok_123",
		UserID:       "0b6f3a7e-1f2d-4c64-9a4e-6a1c2b3d4e5f",
		Email:        "me@example.com",
		XUsername:    "my_handle",
		XDisplayName: "My Handle",
		ExpiresAt:    expiresAt,
	}
}

func newTestStore(t *testing.T) *FileSessionStore {
	t.Helper()
	return NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	session := testSession(time.Now().Add(time.Hour))

	if err := store.Save(session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() returned nil for a freshly saved session")
	}
	if loaded.Token != session.Token || loaded.Email != session.Email || loaded.XUsername != session.XUsername {
		t.Errorf("loaded session %+v does not match saved %+v", loaded, session)
	}
}

func TestLoadReturnsNilWhenNothingStored(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != nil {
		t.Errorf("Load() = %+v, want nil", loaded)
	}
}

func TestLoadPurgesExpiredSession(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(testSession(time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Advance the store's clock past the expiry without any further write.
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected expired session to be absent, got %+v", loaded)
	}

	// The file must be gone so the session cannot resurrect.
	if _, err := os.Stat(store.path); !os.IsNotExist(err) {
		t.Error("expected expired session file to be purged")
	}

	// A second Load with a rewound clock must still be absent.
	store.now = time.Now
	loaded, err = store.Load()
	if err != nil || loaded != nil {
		t.Errorf("Load() after purge = (%+v, %v), want (nil, nil)", loaded, err)
	}
}

func TestLoadPurgesMalformedPayload(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to plant malformed file: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, malformed data must read as absent", err)
	}
	if loaded != nil {
		t.Errorf("Load() = %+v, want nil", loaded)
	}
	if _, err := os.Stat(store.path); !os.IsNotExist(err) {
		t.Error("expected malformed session file to be purged")
	}
}

func TestLoadPurgesIncompletePayload(t *testing.T) {
	store := newTestStore(t)

	// Valid JSON but missing the token: must be treated as absent.
	partial := map[string]interface{}{
		"user_id":            "0b6f3a7e-1f2d-4c64-9a4e-6a1c2b3d4e5f",
		"email":              "me@example.com",
		"session_expires_at": time.Now().Add(time.Hour).Format(time.RFC3339),
	}
	data, _ := json.Marshal(partial)
	if err := os.WriteFile(store.path, data, 0o600); err != nil {
		t.Fatalf("failed to plant partial file: %v", err)
	}

	loaded, err := store.Load()
	if err != nil || loaded != nil {
		t.Errorf("Load() = (%+v, %v), want (nil, nil)", loaded, err)
	}
}

func TestSaveRejectsInvalidSessions(t *testing.T) {
	store := newTestStore(t)

	expired := testSession(time.Now().Add(-time.Minute))
	if err := store.Save(expired); !errors.Is(err, domain.ErrInvalidSession) {
		t.Errorf("Save(expired) error = %v, want ErrInvalidSession", err)
	}

	badUser := testSession(time.Now().Add(time.Hour))
	badUser.UserID = "not-a-uuid"
	if err := store.Save(badUser); !errors.Is(err, domain.ErrInvalidSession) {
		t.Errorf("Save(bad user id) error = %v, want ErrInvalidSession", err)
	}

	if err := store.Save(nil); !errors.Is(err, domain.ErrInvalidSession) {
		t.Errorf("Save(nil) error = %v, want ErrInvalidSession", err)
	}
}

func TestClearRemovesSession(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(testSession(time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	loaded, err := store.Load()
	if err != nil || loaded != nil {
		t.Errorf("Load() after Clear = (%+v, %v), want (nil, nil)", loaded, err)
	}

	// Clearing an empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}
}

func TestSaveReplacesAtomically(t *testing.T) {
	store := newTestStore(t)
	first := testSession(time.Now().Add(time.Hour))
	if err := store.Save(first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := testSession(time.Now().Add(2 * time.Hour))
	second.Email = "new@example.com"
	if err := store.Save(second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil || loaded == nil {
		t.Fatalf("Load() = (%+v, %v)", loaded, err)
	}
	if loaded.Email != "new@example.com" {
		t.Errorf("email = %q, want the replacing session", loaded.Email)
	}

	// No temp files may be left behind in the session directory.
	entries, err := os.ReadDir(filepath.Dir(store.path))
	if err != nil {
		t.Fatalf("failed to read session dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("session dir has %d entries, want only the session file", len(entries))
	}
}
