package input

import (
	"context"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// QAService interface - Input port (use case)
// One question submission at a time. Submit validates locally before any
// network call and rejects with domain.ErrBusy while a request is in flight.
type QAService interface {
	Submit(ctx context.Context, cmd domain.CreateQACommand) (*domain.QADetail, error)
	Status() domain.RequestStatus
	// LastResult returns the most recent successful answer. It survives
	// subsequent failed submissions.
	LastResult() *domain.QADetail
	LastError() error
}
