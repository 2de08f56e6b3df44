package account

import (
	"context"
	"sync"

	"github.com/ranchers-app/storefront/internal/backend"
	"github.com/ranchers-app/storefront/internal/cache"
	"github.com/ranchers-app/storefront/internal/domain"
)

// MockDataAPI implements backend.DataAPI for testing.
type MockDataAPI struct {
	Identity    *domain.Identity
	IdentityErr error
	Profile     *domain.Profile
	ProfileErr  error
	Session     *domain.Session
	SignInErr   error
	UpdateErr   error
	Orders      []domain.Order
	ListErr     error
	FeedbackErr error
	QueryErr    error

	ProfileCalls     int
	SignInCalls      int
	SignInEmail      string
	SignInPassword   string
	UpdateCalls      int
	UpdatedPassword  string
	InsertedFeedback *domain.Feedback
	InsertedQuery    *domain.ContactQuery
}

var _ backend.DataAPI = (*MockDataAPI)(nil)

func (m *MockDataAPI) SignIn(_ context.Context, email, password string) (*domain.Session, error) {
	m.SignInCalls++
	m.SignInEmail = email
	m.SignInPassword = password
	if m.SignInErr != nil {
		return nil, m.SignInErr
	}
	return m.Session, nil
}

func (m *MockDataAPI) SignOut(context.Context, string) error {
	return nil
}

func (m *MockDataAPI) CurrentIdentity(context.Context, string) (*domain.Identity, error) {
	if m.IdentityErr != nil {
		return nil, m.IdentityErr
	}
	return m.Identity, nil
}

func (m *MockDataAPI) UpdatePassword(_ context.Context, _ string, newPassword string) error {
	m.UpdateCalls++
	m.UpdatedPassword = newPassword
	return m.UpdateErr
}

func (m *MockDataAPI) GetProfile(context.Context, string, string) (*domain.Profile, error) {
	m.ProfileCalls++
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	return m.Profile, nil
}

func (m *MockDataAPI) InsertOrder(context.Context, string, *domain.Order) error {
	return nil
}

func (m *MockDataAPI) ListOrdersByUser(context.Context, string, string) ([]domain.Order, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Orders, nil
}

func (m *MockDataAPI) InsertFeedback(_ context.Context, _ string, fb *domain.Feedback) error {
	if m.FeedbackErr != nil {
		return m.FeedbackErr
	}
	m.InsertedFeedback = fb
	return nil
}

func (m *MockDataAPI) InsertQuery(_ context.Context, _ string, q *domain.ContactQuery) error {
	if m.QueryErr != nil {
		return m.QueryErr
	}
	m.InsertedQuery = q
	return nil
}

// mockCache implements cache.ProfileCache backed by a map.
type mockCache struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	getErr   error
	SetCalls int
}

func newMockCache() *mockCache {
	return &mockCache{profiles: make(map[string]*domain.Profile)}
}

func (m *mockCache) Get(_ context.Context, id string) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, cache.ErrCacheMiss
}

func (m *mockCache) Set(_ context.Context, id string, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	m.profiles[id] = p
	return nil
}

func (m *mockCache) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, id)
	return nil
}
