package mocks

import (
	"context"
	"sync"

	"github.com/pablobispo13/api-portifolio/domain"
)

// MockActivityLogRepository implements domain.ActivityLogRepository for
// testing. When no AppendFunc is set it records entries in memory so tests
// can assert on what the service logged.
type MockActivityLogRepository struct {
	AppendFunc         func(ctx context.Context, entry *domain.LogEntry) error
	ListByIdentityFunc func(ctx context.Context, identityID string, limit int) ([]domain.LogEntry, error)

	mu      sync.Mutex
	Entries []domain.LogEntry
}

// NewMockActivityLogRepository creates a new MockActivityLogRepository with default behaviors
func NewMockActivityLogRepository() *MockActivityLogRepository {
	return &MockActivityLogRepository{}
}

func (m *MockActivityLogRepository) Append(ctx context.Context, entry *domain.LogEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, *entry)
	return nil
}

func (m *MockActivityLogRepository) ListByIdentity(ctx context.Context, identityID string, limit int) ([]domain.LogEntry, error) {
	if m.ListByIdentityFunc != nil {
		return m.ListByIdentityFunc(ctx, identityID, limit)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.LogEntry
	for _, e := range m.Entries {
		if e.IdentityID == identityID {
			out = append(out, e)
		}
	}
	return out, nil
}
