package domain

import "time"

// QASource is a single feed post cited in an answer. Immutable once fetched.
type QASource struct {
	XPostID           int64
	AuthorHandle      string
	AuthorDisplayName string
	PublishedAt       time.Time
	URL               string
	TextPreview       string
	Text              string
}

// QAListItem is one question/answer interaction as it appears in the
// paginated history list. Created server-side; the client never mutates
// fields, only deletes by ID.
type QAListItem struct {
	ID            string
	Question      string
	AnswerPreview string
	DateFrom      time.Time
	DateTo        time.Time
	CreatedAt     time.Time
	SourcesCount  int
}

// QADetail is the full expansion of a list item, fetched lazily one ID at a
// time.
type QADetail struct {
	ID        string
	Question  string
	Answer    string
	DateFrom  time.Time
	DateTo    time.Time
	CreatedAt time.Time
	Sources   []QASource
}

// HistoryPage is one page of the Q&A history. NextCursor is opaque to the
// client and must be passed back verbatim to fetch the next page.
type HistoryPage struct {
	Items      []QAListItem
	NextCursor string
	HasMore    bool
}

// IngestRun describes a single feed-ingestion run reported by the backend.
type IngestRun struct {
	ID            string
	Status        string
	StartedAt     time.Time
	CompletedAt   *time.Time
	FetchedCount  int
	Retried       int
	RateLimitHits int
	Error         string
}

// IngestStatus is the polled sync indicator payload.
type IngestStatus struct {
	LastSyncAt *time.Time
	CurrentRun *IngestRun
	RecentRuns []IngestRun
}
