package input

import (
	"context"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// PagerState is the history pager's position in its fetch lifecycle.
type PagerState int

const (
	PagerEmpty PagerState = iota
	PagerLoading
	PagerLoaded
	PagerLoadingMore
	PagerError
)

func (s PagerState) String() string {
	switch s {
	case PagerEmpty:
		return "empty"
	case PagerLoading:
		return "loading"
	case PagerLoaded:
		return "loaded"
	case PagerLoadingMore:
		return "loading_more"
	case PagerError:
		return "error"
	default:
		return "unknown"
	}
}

// HistoryService interface - Input port (use case)
// Cursor-based pagination over the Q&A history plus lazy detail loading and
// deletion. Successful deletes invalidate every cached page instead of
// patching locally, so the next read starts from a fresh first page.
type HistoryService interface {
	FetchFirstPage(ctx context.Context) error
	// FetchNextPage is a no-op unless the pager is Loaded with more pages
	// available; a duplicate trigger while a fetch is pending is absorbed
	// rather than duplicated.
	FetchNextPage(ctx context.Context) error
	// Items is the concatenation of all fetched pages in fetch order.
	// Duplicate IDs across pages are possible when server state shifts
	// between fetches; they are intentionally not de-duplicated here.
	Items() []domain.QAListItem
	HasMore() bool
	State() PagerState
	Err() error
	Detail(ctx context.Context, id string) (*domain.QADetail, error)
	DeleteItem(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
