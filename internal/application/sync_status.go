package application

import (
	"context"
	"sync"
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/input"
	"github.com/sopeal/AskYourFeed/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure SyncStatusService implements the input port
var _ input.SyncService = (*SyncStatusService)(nil)

// SyncStatusService struct - Application service polling the feed-ingestion
// status on a fixed interval. Poll failures are swallowed: the last good
// status is kept and the indicator is merely marked degraded. Stop cancels
// the recurring task so no timer outlives the owning view.
type SyncStatusService struct {
	api      output.FeedQAAPI
	interval time.Duration

	mu       sync.Mutex
	status   *domain.IngestStatus
	degraded bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSyncStatusService func - Creates new sync status service
func NewSyncStatusService(api output.FeedQAAPI, interval time.Duration) *SyncStatusService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &SyncStatusService{
		api:      api,
		interval: interval,
	}
}

// Start func - Begins recurring polling. Starting an already running service
// is a no-op.
func (s *SyncStatusService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	logrus.Debugf("Sync status polling started, interval: %v", s.interval)
}

// Stop func - Cancels the recurring poll and waits for it to finish.
// Stopping a stopped service is a no-op.
func (s *SyncStatusService) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logrus.Debug("Sync status polling stopped")
}

// PollOnce func - Use case: Fetch the status immediately.
func (s *SyncStatusService) PollOnce(ctx context.Context) (*domain.IngestStatus, error) {
	status, err := s.api.IngestStatus(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.degraded = true
		return nil, domain.Classify(err)
	}
	s.status = status
	s.degraded = false
	return status, nil
}

// Status func - Last known status plus whether the indicator is degraded.
func (s *SyncStatusService) Status() (*domain.IngestStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.degraded
}

func (s *SyncStatusService) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

// poll runs one background fetch. Failures degrade the indicator and are
// otherwise silent; a background status check must never block the UI.
func (s *SyncStatusService) poll(ctx context.Context) {
	if _, err := s.PollOnce(ctx); err != nil && ctx.Err() == nil {
		logrus.Debugf("Sync status poll failed: %v", err)
	}
}
