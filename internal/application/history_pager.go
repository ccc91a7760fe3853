package application

import (
	"context"
	"sync"

	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/input"
	"github.com/sopeal/AskYourFeed/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure HistoryPager implements the input port
var _ input.HistoryService = (*HistoryPager)(nil)

// HistoryPager struct - Application service paging through the Q&A history.
// Pages are append-only within one pagination session. Deletes never patch
// the local list; they invalidate every cached page so the next read starts
// from a fresh first page, avoiding cursor drift against the server order.
// A generation counter drops responses that resolve after an invalidation.
type HistoryPager struct {
	api   output.FeedQAAPI
	cache output.DetailCache
	limit int

	mu         sync.Mutex
	state      input.PagerState
	pages      []*domain.HistoryPage
	generation uint64
	lastErr    error
}

// NewHistoryPager func - Creates new history pager
func NewHistoryPager(api output.FeedQAAPI, cache output.DetailCache, limit int) *HistoryPager {
	if limit <= 0 {
		limit = 20
	}
	return &HistoryPager{
		api:   api,
		cache: cache,
		limit: limit,
		state: input.PagerEmpty,
	}
}

// FetchFirstPage func - Use case: Load the first history page.
// A duplicate trigger while the first page is loading is absorbed.
func (p *HistoryPager) FetchFirstPage(ctx context.Context) error {
	p.mu.Lock()
	if p.state == input.PagerLoading || p.state == input.PagerLoadingMore {
		p.mu.Unlock()
		return nil
	}
	gen := p.generation
	p.state = input.PagerLoading
	p.mu.Unlock()

	page, err := p.api.ListQA(ctx, p.limit, "")

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		// The pager was invalidated while this fetch was in flight; the
		// response belongs to a superseded pagination session.
		logrus.Debug("Dropping stale first-page response")
		return nil
	}
	if err != nil {
		p.state = input.PagerError
		p.lastErr = domain.Classify(err)
		return p.lastErr
	}

	p.pages = []*domain.HistoryPage{page}
	p.state = input.PagerLoaded
	p.lastErr = nil
	return nil
}

// FetchNextPage func - Use case: Load the next history page.
// Valid only when Loaded with more pages available. A second call while a
// fetch is pending is a no-op, not a duplicate request; overlapping scroll
// triggers must produce exactly one network call.
func (p *HistoryPager) FetchNextPage(ctx context.Context) error {
	p.mu.Lock()
	if p.state != input.PagerLoaded || !p.hasMoreLocked() {
		p.mu.Unlock()
		return nil
	}
	cursor := p.pages[len(p.pages)-1].NextCursor
	gen := p.generation
	p.state = input.PagerLoadingMore
	p.mu.Unlock()

	page, err := p.api.ListQA(ctx, p.limit, cursor)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		logrus.Debug("Dropping stale next-page response")
		return nil
	}
	if err != nil {
		p.state = input.PagerError
		p.lastErr = domain.Classify(err)
		return p.lastErr
	}

	p.pages = append(p.pages, page)
	p.state = input.PagerLoaded
	p.lastErr = nil
	return nil
}

// Items func - Concatenation of all fetched pages in fetch order.
// Duplicate IDs across pages are possible when server state shifts between
// fetches; this component does not de-duplicate them.
func (p *HistoryPager) Items() []domain.QAListItem {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]domain.QAListItem, 0)
	for _, page := range p.pages {
		items = append(items, page.Items...)
	}
	return items
}

// HasMore func - Whether another page can be fetched.
func (p *HistoryPager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMoreLocked()
}

func (p *HistoryPager) hasMoreLocked() bool {
	if len(p.pages) == 0 {
		return false
	}
	return p.pages[len(p.pages)-1].HasMore
}

// State func - Current pager state.
func (p *HistoryPager) State() input.PagerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err func - Classified error of the most recent failed fetch. Not cleared
// automatically; the next successful fetch clears it.
func (p *HistoryPager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Detail func - Use case: Lazily load the full detail for one interaction,
// served from the local cache while fresh.
func (p *HistoryPager) Detail(ctx context.Context, id string) (*domain.QADetail, error) {
	if p.cache != nil {
		if detail, hit, err := p.cache.Get(id); err == nil && hit {
			return detail, nil
		} else if err != nil {
			logrus.Warnf("QA cache read failed for %s: %v", id, err)
		}
	}

	detail, err := p.api.GetQA(ctx, id)
	if err != nil {
		return nil, domain.Classify(err)
	}

	if p.cache != nil {
		if err := p.cache.Put(detail); err != nil {
			logrus.Warnf("QA cache write failed for %s: %v", id, err)
		}
	}
	return detail, nil
}

// DeleteItem func - Use case: Delete one interaction. On success every
// cached page is invalidated; the list is not patched locally.
func (p *HistoryPager) DeleteItem(ctx context.Context, id string) error {
	if err := p.api.DeleteQA(ctx, id); err != nil {
		return domain.Classify(err)
	}

	if p.cache != nil {
		if err := p.cache.Delete(id); err != nil {
			logrus.Warnf("QA cache delete failed for %s: %v", id, err)
		}
	}

	p.mu.Lock()
	p.invalidateLocked()
	p.mu.Unlock()
	return nil
}

// DeleteAll func - Use case: Delete the whole history and reset to Empty.
func (p *HistoryPager) DeleteAll(ctx context.Context) (int64, error) {
	count, err := p.api.DeleteAllQA(ctx)
	if err != nil {
		return 0, domain.Classify(err)
	}

	if p.cache != nil {
		if err := p.cache.Purge(); err != nil {
			logrus.Warnf("QA cache purge failed: %v", err)
		}
	}

	p.mu.Lock()
	p.invalidateLocked()
	p.mu.Unlock()
	logrus.Infof("Deleted %d history entries", count)
	return count, nil
}

// invalidateLocked resets the pagination session. Any in-flight fetch from
// the previous generation resolves into a silent no-op.
func (p *HistoryPager) invalidateLocked() {
	p.generation++
	p.pages = nil
	p.state = input.PagerEmpty
	p.lastErr = nil
}
