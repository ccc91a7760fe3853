package application

import (
	"context"
	"sync"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// mockFeedQAAPI implements output.FeedQAAPI with overridable behavior and
// call counters for assertions.
type mockFeedQAAPI struct {
	mu sync.Mutex

	RegisterFunc     func(ctx context.Context, cmd domain.RegisterCommand) (*domain.RegisterResult, error)
	LoginFunc        func(ctx context.Context, cmd domain.LoginCommand) (*domain.Session, error)
	CreateQAFunc     func(ctx context.Context, cmd domain.CreateQACommand) (*domain.QADetail, error)
	ListQAFunc       func(ctx context.Context, limit int, cursor string) (*domain.HistoryPage, error)
	GetQAFunc        func(ctx context.Context, id string) (*domain.QADetail, error)
	DeleteQAFunc     func(ctx context.Context, id string) error
	DeleteAllQAFunc  func(ctx context.Context) (int64, error)
	IngestStatusFunc func(ctx context.Context) (*domain.IngestStatus, error)

	registerCalls int
	loginCalls    int
	createCalls   int
	listCalls     int
	getCalls      int
	listCursors   []string
}

func (m *mockFeedQAAPI) Register(ctx context.Context, cmd domain.RegisterCommand) (*domain.RegisterResult, error) {
	m.mu.Lock()
	m.registerCalls++
	m.mu.Unlock()
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, cmd)
	}
	return &domain.RegisterResult{Email: cmd.Email, XUsername: cmd.XUsername}, nil
}

func (m *mockFeedQAAPI) Login(ctx context.Context, cmd domain.LoginCommand) (*domain.Session, error) {
	m.mu.Lock()
	m.loginCalls++
	m.mu.Unlock()
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, cmd)
	}
	return nil, nil
}

func (m *mockFeedQAAPI) CreateQA(ctx context.Context, cmd domain.CreateQACommand) (*domain.QADetail, error) {
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()
	if m.CreateQAFunc != nil {
		return m.CreateQAFunc(ctx, cmd)
	}
	return &domain.QADetail{ID: "qa-1", Question: cmd.Question, Answer: "an answer"}, nil
}

func (m *mockFeedQAAPI) ListQA(ctx context.Context, limit int, cursor string) (*domain.HistoryPage, error) {
	m.mu.Lock()
	m.listCalls++
	m.listCursors = append(m.listCursors, cursor)
	m.mu.Unlock()
	if m.ListQAFunc != nil {
		return m.ListQAFunc(ctx, limit, cursor)
	}
	return &domain.HistoryPage{}, nil
}

func (m *mockFeedQAAPI) GetQA(ctx context.Context, id string) (*domain.QADetail, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()
	if m.GetQAFunc != nil {
		return m.GetQAFunc(ctx, id)
	}
	return &domain.QADetail{ID: id}, nil
}

func (m *mockFeedQAAPI) DeleteQA(ctx context.Context, id string) error {
	if m.DeleteQAFunc != nil {
		return m.DeleteQAFunc(ctx, id)
	}
	return nil
}

func (m *mockFeedQAAPI) DeleteAllQA(ctx context.Context) (int64, error) {
	if m.DeleteAllQAFunc != nil {
		return m.DeleteAllQAFunc(ctx)
	}
	return 0, nil
}

func (m *mockFeedQAAPI) IngestStatus(ctx context.Context) (*domain.IngestStatus, error) {
	if m.IngestStatusFunc != nil {
		return m.IngestStatusFunc(ctx)
	}
	return &domain.IngestStatus{}, nil
}

func (m *mockFeedQAAPI) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

// mockDetailCache implements output.DetailCache in memory.
type mockDetailCache struct {
	mu      sync.Mutex
	details map[string]*domain.QADetail

	getCalls   int
	putCalls   int
	purgeCalls int
}

func newMockDetailCache() *mockDetailCache {
	return &mockDetailCache{details: make(map[string]*domain.QADetail)}
}

func (m *mockDetailCache) Get(id string) (*domain.QADetail, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	detail, ok := m.details[id]
	return detail, ok, nil
}

func (m *mockDetailCache) Put(detail *domain.QADetail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++
	m.details[detail.ID] = detail
	return nil
}

func (m *mockDetailCache) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.details, id)
	return nil
}

func (m *mockDetailCache) Purge() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeCalls++
	m.details = make(map[string]*domain.QADetail)
	return nil
}
