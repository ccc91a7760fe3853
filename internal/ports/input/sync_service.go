package input

import (
	"context"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// SyncService interface - Input port (use case)
// Recurring poll of the feed-ingestion status with a silent-failure policy:
// a failed poll degrades the indicator but never surfaces as a blocking
// error. Stop must cancel the recurring task so no timer leaks past the
// owning view's teardown.
type SyncService interface {
	Start()
	Stop()
	// PollOnce fetches the status immediately, outside the recurring schedule.
	PollOnce(ctx context.Context) (*domain.IngestStatus, error)
	// Status returns the last known status and whether the indicator is
	// degraded (the most recent poll failed).
	Status() (*domain.IngestStatus, bool)
}
