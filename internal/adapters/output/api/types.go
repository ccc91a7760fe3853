package api

import (
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// Wire request/response structures matching the backend DTOs.

type registerRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	XUsername            string `json:"x_username"`
}

type registerResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	XUsername    string `json:"x_username"`
	XDisplayName string `json:"x_display_name"`
	CreatedAt    string `json:"created_at"`
	SessionToken string `json:"session_token"`
}

func (r *registerResponse) toResult() *domain.RegisterResult {
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)

	return &domain.RegisterResult{
		UserID:       r.UserID,
		Email:        r.Email,
		XUsername:    r.XUsername,
		XDisplayName: r.XDisplayName,
		CreatedAt:    createdAt,
		SessionToken: r.SessionToken,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
	XUsername        string `json:"x_username"`
	XDisplayName     string `json:"x_display_name"`
	SessionToken     string `json:"session_token"`
	SessionExpiresAt string `json:"session_expires_at"`
}

func (r *loginResponse) toSession() *domain.Session {
	expiresAt, _ := time.Parse(time.RFC3339, r.SessionExpiresAt)

	return &domain.Session{
		Token:        r.SessionToken,
		UserID:       r.UserID,
		Email:        r.Email,
		XUsername:    r.XUsername,
		XDisplayName: r.XDisplayName,
		ExpiresAt:    expiresAt,
	}
}

type createQARequest struct {
	Question string `json:"question"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
}

type qaSourceResponse struct {
	XPostID           int64  `json:"x_post_id"`
	AuthorHandle      string `json:"author_handle"`
	AuthorDisplayName string `json:"author_display_name"`
	PublishedAt       string `json:"published_at"`
	URL               string `json:"url"`
	TextPreview       string `json:"text_preview,omitempty"`
	Text              string `json:"text,omitempty"`
}

func (r *qaSourceResponse) toSource() domain.QASource {
	publishedAt, _ := time.Parse(time.RFC3339, r.PublishedAt)

	return domain.QASource{
		XPostID:           r.XPostID,
		AuthorHandle:      r.AuthorHandle,
		AuthorDisplayName: r.AuthorDisplayName,
		PublishedAt:       publishedAt,
		URL:               r.URL,
		TextPreview:       r.TextPreview,
		Text:              r.Text,
	}
}

type qaDetailResponse struct {
	ID        string             `json:"id"`
	Question  string             `json:"question"`
	Answer    string             `json:"answer"`
	DateFrom  string             `json:"date_from"`
	DateTo    string             `json:"date_to"`
	CreatedAt string             `json:"created_at"`
	Sources   []qaSourceResponse `json:"sources"`
}

func (r *qaDetailResponse) toDetail() *domain.QADetail {
	dateFrom, _ := time.Parse(time.RFC3339, r.DateFrom)
	dateTo, _ := time.Parse(time.RFC3339, r.DateTo)
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)

	sources := make([]domain.QASource, len(r.Sources))
	for i := range r.Sources {
		sources[i] = r.Sources[i].toSource()
	}

	return &domain.QADetail{
		ID:        r.ID,
		Question:  r.Question,
		Answer:    r.Answer,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		CreatedAt: createdAt,
		Sources:   sources,
	}
}

type qaListItemResponse struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	AnswerPreview string `json:"answer_preview"`
	DateFrom      string `json:"date_from"`
	DateTo        string `json:"date_to"`
	CreatedAt     string `json:"created_at"`
	SourcesCount  int    `json:"sources_count"`
}

func (r *qaListItemResponse) toListItem() domain.QAListItem {
	dateFrom, _ := time.Parse(time.RFC3339, r.DateFrom)
	dateTo, _ := time.Parse(time.RFC3339, r.DateTo)
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)

	return domain.QAListItem{
		ID:            r.ID,
		Question:      r.Question,
		AnswerPreview: r.AnswerPreview,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		CreatedAt:     createdAt,
		SourcesCount:  r.SourcesCount,
	}
}

type qaListResponse struct {
	Items      []qaListItemResponse `json:"items"`
	NextCursor string               `json:"next_cursor,omitempty"`
	HasMore    bool                 `json:"has_more"`
}

func (r *qaListResponse) toPage() *domain.HistoryPage {
	items := make([]domain.QAListItem, len(r.Items))
	for i := range r.Items {
		items[i] = r.Items[i].toListItem()
	}

	return &domain.HistoryPage{
		Items:      items,
		NextCursor: r.NextCursor,
		HasMore:    r.HasMore,
	}
}

type deleteResponse struct {
	Message string `json:"message"`
}

type deleteAllResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

type ingestRunResponse struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	StartedAt     string  `json:"started_at"`
	CompletedAt   *string `json:"completed_at,omitempty"`
	FetchedCount  int     `json:"fetched_count"`
	Retried       int     `json:"retried,omitempty"`
	RateLimitHits int     `json:"rate_limit_hits,omitempty"`
	Error         string  `json:"error,omitempty"`
}

func (r *ingestRunResponse) toRun() domain.IngestRun {
	startedAt, _ := time.Parse(time.RFC3339, r.StartedAt)

	run := domain.IngestRun{
		ID:            r.ID,
		Status:        r.Status,
		StartedAt:     startedAt,
		FetchedCount:  r.FetchedCount,
		Retried:       r.Retried,
		RateLimitHits: r.RateLimitHits,
		Error:         r.Error,
	}
	if r.CompletedAt != nil {
		if completedAt, err := time.Parse(time.RFC3339, *r.CompletedAt); err == nil {
			run.CompletedAt = &completedAt
		}
	}
	return run
}

type ingestStatusResponse struct {
	LastSyncAt *string            `json:"last_sync_at,omitempty"`
	CurrentRun *ingestRunResponse `json:"current_run,omitempty"`
	RecentRuns []ingestRunResponse `json:"recent_runs"`
}

func (r *ingestStatusResponse) toStatus() *domain.IngestStatus {
	status := &domain.IngestStatus{}

	if r.LastSyncAt != nil {
		if lastSync, err := time.Parse(time.RFC3339, *r.LastSyncAt); err == nil {
			status.LastSyncAt = &lastSync
		}
	}
	if r.CurrentRun != nil {
		run := r.CurrentRun.toRun()
		status.CurrentRun = &run
	}
	status.RecentRuns = make([]domain.IngestRun, len(r.RecentRuns))
	for i := range r.RecentRuns {
		status.RecentRuns[i] = r.RecentRuns[i].toRun()
	}

	return status
}
