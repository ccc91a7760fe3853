package output

import "github.com/sopeal/AskYourFeed/internal/domain"

// DetailCache interface - Output port
// Local cache for lazily fetched QA details, keyed by ID with a bounded
// freshness window. Entries older than the configured horizon are treated as
// misses so a re-fetch is allowed.
type DetailCache interface {
	// Get returns the cached detail and true on a fresh hit. Stale or absent
	// entries return (nil, false, nil); stale entries are purged on read.
	Get(id string) (*domain.QADetail, bool, error)

	// Put stores or replaces the detail and stamps it as freshly fetched.
	Put(detail *domain.QADetail) error

	// Delete removes one entry. Deleting an absent entry is not an error.
	Delete(id string) error

	// Purge removes every entry.
	Purge() error
}
