package mocks

import (
	"context"

	"github.com/pablobispo13/api-portifolio/domain"
)

// MockTwilioSettingsRepository implements domain.TwilioSettingsRepository for testing
type MockTwilioSettingsRepository struct {
	UpsertFunc         func(ctx context.Context, settings *domain.TwilioSettings) (*domain.TwilioSettings, error)
	UpdateFunc         func(ctx context.Context, identityID string, patch *domain.TwilioSettingsPatch) (*domain.TwilioSettings, error)
	FindByIdentityFunc func(ctx context.Context, identityID string) (*domain.TwilioSettings, error)
	DeleteAllForFunc   func(ctx context.Context, identityID string) error
}

// NewMockTwilioSettingsRepository creates a new MockTwilioSettingsRepository with default behaviors
func NewMockTwilioSettingsRepository() *MockTwilioSettingsRepository {
	return &MockTwilioSettingsRepository{}
}

func (m *MockTwilioSettingsRepository) Upsert(ctx context.Context, settings *domain.TwilioSettings) (*domain.TwilioSettings, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, settings)
	}
	return settings, nil
}

func (m *MockTwilioSettingsRepository) Update(ctx context.Context, identityID string, patch *domain.TwilioSettingsPatch) (*domain.TwilioSettings, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, identityID, patch)
	}
	return nil, domain.NewNotFound("twilio settings not found")
}

func (m *MockTwilioSettingsRepository) FindByIdentity(ctx context.Context, identityID string) (*domain.TwilioSettings, error) {
	if m.FindByIdentityFunc != nil {
		return m.FindByIdentityFunc(ctx, identityID)
	}
	return nil, domain.NewNotFound("twilio settings not found")
}

func (m *MockTwilioSettingsRepository) DeleteAllFor(ctx context.Context, identityID string) error {
	if m.DeleteAllForFunc != nil {
		return m.DeleteAllForFunc(ctx, identityID)
	}
	return nil
}
