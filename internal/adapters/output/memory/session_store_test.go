package memory

import (
	"errors"
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

func TestSaveAndLoad(t *testing.T) {
	store := NewMemorySessionStore()
	session := testSession(time.Now().Add(time.Hour))

	if err := store.Save(session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded == nil || loaded.Token != session.Token {
		t.Errorf("Load() = %+v, want the saved session", loaded)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	store := NewMemorySessionStore()

	loaded, err := store.Load()
	if err != nil || loaded != nil {
		t.Errorf("Load() = (%+v, %v), want (nil, nil)", loaded, err)
	}
}

func TestLoadDropsExpiredSession(t *testing.T) {
	store := NewMemorySessionStore()
	if err := store.Save(testSession(time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	loaded, err := store.Load()
	if err != nil || loaded != nil {
		t.Fatalf("Load() = (%+v, %v), want (nil, nil)", loaded, err)
	}

	// The slot must be cleared, not just filtered on read.
	store.now = time.Now
	loaded, err = store.Load()
	if err != nil || loaded != nil {
		t.Errorf("Load() after lazy cleanup = (%+v, %v), want (nil, nil)", loaded, err)
	}
}

func TestSaveRejectsInvalidSessions(t *testing.T) {
	store := NewMemorySessionStore()

	if err := store.Save(nil); !errors.Is(err, domain.ErrInvalidSession) {
		t.Errorf("Save(nil) error = %v, want ErrInvalidSession", err)
	}

	expired := testSession(time.Now().Add(-time.Minute))
	if err := store.Save(expired); !errors.Is(err, domain.ErrInvalidSession) {
		t.Errorf("Save(expired) error = %v, want ErrInvalidSession", err)
	}

	badUser := testSession(time.Now().Add(time.Hour))
	badUser.UserID = "42"
	if err := store.Save(badUser); !errors.Is(err, domain.ErrInvalidSession) {
		t.Errorf("Save(bad user id) error = %v, want ErrInvalidSession", err)
	}

	noToken := testSession(time.Now().Add(time.Hour))
	noToken.Token = ""
	if err := store.Save(noToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Errorf("Save(no token) error = %v, want ErrInvalidSession", err)
	}
}

func TestClear(t *testing.T) {
	store := NewMemorySessionStore()
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
}

func TestLoadReturnsACopy(t *testing.T) {
	store := NewMemorySessionStore()
	if err := store.Save(testSession(time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	first, _ := store.Load()
	first.Email = "mutated@example.com"

	second, _ := store.Load()
	if second.Email != "me@example.com" {
		t.Error("mutating a loaded session must not affect the stored one")
	}
}
