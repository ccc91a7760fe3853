package output

import (
	"context"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// FeedQAAPI interface - Output port
// Defines what the application needs from the AskYourFeed backend. Every
// non-2xx response surfaces as a *domain.APIError; failures with no response
// at all carry the NETWORK_ERROR code and HTTP status 0. Implementations do
// not retry; retry policy belongs to the caller.
type FeedQAAPI interface {
	// Register creates an account. POST /api/v1/auth/register
	Register(ctx context.Context, cmd domain.RegisterCommand) (*domain.RegisterResult, error)

	// Login authenticates and returns a complete session. POST /api/v1/auth/login
	Login(ctx context.Context, cmd domain.LoginCommand) (*domain.Session, error)

	// CreateQA submits a question. POST /api/v1/qa
	CreateQA(ctx context.Context, cmd domain.CreateQACommand) (*domain.QADetail, error)

	// ListQA fetches one history page. An empty cursor requests the first
	// page; otherwise the cursor is passed back verbatim. GET /api/v1/qa
	ListQA(ctx context.Context, limit int, cursor string) (*domain.HistoryPage, error)

	// GetQA fetches the full detail for one interaction. GET /api/v1/qa/{id}
	GetQA(ctx context.Context, id string) (*domain.QADetail, error)

	// DeleteQA deletes one interaction. DELETE /api/v1/qa/{id}
	DeleteQA(ctx context.Context, id string) error

	// DeleteAllQA deletes the whole history and returns the deleted count.
	// DELETE /api/v1/qa
	DeleteAllQA(ctx context.Context) (int64, error)

	// IngestStatus reports the current feed sync state. GET /api/v1/ingest/status
	IngestStatus(ctx context.Context) (*domain.IngestStatus, error)
}
