package checkout

import (
	"context"

	"github.com/ranchers-app/storefront/internal/backend"
	"github.com/ranchers-app/storefront/internal/domain"
)

// MockDataAPI implements backend.DataAPI for testing. Call counters let
// tests assert which remote calls were (not) made.
type MockDataAPI struct {
	Identity    *domain.Identity
	IdentityErr error
	Profile     *domain.Profile
	ProfileErr  error
	InsertErr   error

	IdentityCalls int
	ProfileCalls  int
	InsertCalls   int
	InsertedOrder *domain.Order // Captures the order passed to InsertOrder

	// When set, InsertOrder signals InsertEntered and then blocks until
	// InsertRelease is closed, letting tests hold a submission in flight.
	InsertEntered chan struct{}
	InsertRelease chan struct{}
}

var _ backend.DataAPI = (*MockDataAPI)(nil)

func (m *MockDataAPI) SignIn(context.Context, string, string) (*domain.Session, error) {
	return nil, nil
}

func (m *MockDataAPI) SignOut(context.Context, string) error {
	return nil
}

func (m *MockDataAPI) CurrentIdentity(context.Context, string) (*domain.Identity, error) {
	m.IdentityCalls++
	if m.IdentityErr != nil {
		return nil, m.IdentityErr
	}
	return m.Identity, nil
}

func (m *MockDataAPI) UpdatePassword(context.Context, string, string) error {
	return nil
}

func (m *MockDataAPI) GetProfile(context.Context, string, string) (*domain.Profile, error) {
	m.ProfileCalls++
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	return m.Profile, nil
}

func (m *MockDataAPI) InsertOrder(_ context.Context, _ string, order *domain.Order) error {
	m.InsertCalls++
	if m.InsertEntered != nil {
		m.InsertEntered <- struct{}{}
		<-m.InsertRelease
	}
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.InsertedOrder = order
	return nil
}

func (m *MockDataAPI) ListOrdersByUser(context.Context, string, string) ([]domain.Order, error) {
	return nil, nil
}

func (m *MockDataAPI) InsertFeedback(context.Context, string, *domain.Feedback) error {
	return nil
}

func (m *MockDataAPI) InsertQuery(context.Context, string, *domain.ContactQuery) error {
	return nil
}
