package mocks

import (
	"context"

	"github.com/pablobispo13/api-portifolio/domain"
)

// MockIdentityRepository implements domain.IdentityRepository for testing
type MockIdentityRepository struct {
	CreateFunc         func(ctx context.Context, identity *domain.Identity) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.Identity, error)
	FindByPhoneFunc    func(ctx context.Context, phone string) (*domain.Identity, error)
	FindByTokenFunc    func(ctx context.Context, token string) (*domain.Identity, error)
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Identity, error)
	UpdatePhoneFunc    func(ctx context.Context, token, phone string) (*domain.Identity, error)
	UpdateTokenFunc    func(ctx context.Context, oldToken, newToken string) (*domain.Identity, error)
	UpdatePasswordFunc func(ctx context.Context, id, passwordHash string) error
	DeleteFunc         func(ctx context.Context, id string) error
}

// NewMockIdentityRepository creates a new MockIdentityRepository with default behaviors
func NewMockIdentityRepository() *MockIdentityRepository {
	return &MockIdentityRepository{}
}

func (m *MockIdentityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, identity)
	}
	return nil
}

func (m *MockIdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.NewNotFound("identity not found")
}

func (m *MockIdentityRepository) FindByPhone(ctx context.Context, phone string) (*domain.Identity, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.NewNotFound("identity not found")
}

func (m *MockIdentityRepository) FindByToken(ctx context.Context, token string) (*domain.Identity, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, domain.NewNotFound("identity not found")
}

func (m *MockIdentityRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.NewNotFound("identity not found")
}

func (m *MockIdentityRepository) UpdatePhone(ctx context.Context, token, phone string) (*domain.Identity, error) {
	if m.UpdatePhoneFunc != nil {
		return m.UpdatePhoneFunc(ctx, token, phone)
	}
	return nil, domain.NewNotFound("identity not found")
}

func (m *MockIdentityRepository) UpdateToken(ctx context.Context, oldToken, newToken string) (*domain.Identity, error) {
	if m.UpdateTokenFunc != nil {
		return m.UpdateTokenFunc(ctx, oldToken, newToken)
	}
	return nil, domain.NewNotFound("identity not found")
}

func (m *MockIdentityRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *MockIdentityRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
