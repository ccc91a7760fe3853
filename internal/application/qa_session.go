package application

import (
	"context"
	"strings"
	"sync"

	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/input"
	"github.com/sopeal/AskYourFeed/internal/ports/output"
	"github.com/sopeal/AskYourFeed/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure QASession implements the input port
var _ input.QAService = (*QASession)(nil)

// QASession struct - Application service orchestrating one question
// submission at a time. Exactly one request slot exists: submitting while a
// request is in flight is rejected with domain.ErrBusy, never queued. The
// last successful answer survives later failed submissions.
type QASession struct {
	api      output.FeedQAAPI
	validate validator.Validator

	mu         sync.Mutex
	status     domain.RequestStatus
	lastResult *domain.QADetail
	lastErr    error
}

// NewQASession func - Creates new QA session service
func NewQASession(api output.FeedQAAPI, validate validator.Validator) *QASession {
	return &QASession{
		api:      api,
		validate: validate,
		status:   domain.RequestIdle,
	}
}

// Submit func - Use case: Ask a question about the feed.
// The question is trimmed and validated locally (non-empty, at most 2000
// characters, date window ordered) before any network call.
func (s *QASession) Submit(ctx context.Context, cmd domain.CreateQACommand) (*domain.QADetail, error) {
	cmd.Question = strings.TrimSpace(cmd.Question)

	if err := s.validate.ValidateStruct(cmd); err != nil {
		return nil, asValidationError(err)
	}
	if cmd.DateFrom != nil && cmd.DateTo != nil && cmd.DateFrom.After(*cmd.DateTo) {
		return nil, &domain.ValidationError{
			Field:   "date_from",
			Message: "must be before or equal to the end date",
		}
	}

	s.mu.Lock()
	if s.status == domain.RequestInFlight {
		s.mu.Unlock()
		return nil, domain.ErrBusy
	}
	s.status = domain.RequestInFlight
	s.mu.Unlock()

	result, err := s.api.CreateQA(ctx, cmd)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		classified := domain.Classify(err)
		logrus.Errorf("Question submission failed: %v", classified)
		s.status = domain.RequestFailed
		// lastResult is deliberately left alone: a failed retry must not
		// blank out the last good answer.
		s.lastErr = classified
		return nil, classified
	}

	s.status = domain.RequestSucceeded
	s.lastResult = result
	s.lastErr = nil
	logrus.Infof("Question answered with %d sources", len(result.Sources))
	return result, nil
}

// Status func - Current lifecycle position of the single request slot.
func (s *QASession) Status() domain.RequestStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// LastResult func - Most recent successful answer, nil before the first one.
func (s *QASession) LastResult() *domain.QADetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

// LastError func - Classified error of the most recent failed submission.
func (s *QASession) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
