package mocks

import (
	"context"

	"github.com/pablobispo13/api-portifolio/domain"
)

// MockRegistrationService implements domain.RegistrationService for handler tests
type MockRegistrationService struct {
	RegisterFunc               func(ctx context.Context, email, password, phone string) (*domain.Identity, error)
	RegisterTokenFunc          func(ctx context.Context, token, userID, phone string) (*domain.Identity, error)
	LoginFunc                  func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	ValidateTokenFunc          func(ctx context.Context, token string) (*domain.TokenValidation, error)
	ProfileFunc                func(ctx context.Context, id string) (*domain.Identity, error)
	UpdatePhoneFunc            func(ctx context.Context, token, phone string) (*domain.Identity, error)
	RegisterTwilioSettingsFunc func(ctx context.Context, ref string, settings *domain.TwilioSettings) (*domain.TwilioSettings, error)
	UpdateTwilioSettingsFunc   func(ctx context.Context, ref string, patch *domain.TwilioSettingsPatch) (*domain.TwilioSettings, error)
	DeleteIdentityFunc         func(ctx context.Context, phone string) error
	AppendLogFunc              func(ctx context.Context, identityID, logType, message, timestamp string) error
	ListLogsFunc               func(ctx context.Context, identityID string) ([]domain.LogEntry, error)
	SendTestMessageFunc        func(ctx context.Context, ref, body string) error
}

// NewMockRegistrationService creates a new MockRegistrationService with default behaviors
func NewMockRegistrationService() *MockRegistrationService {
	return &MockRegistrationService{}
}

func (m *MockRegistrationService) Register(ctx context.Context, email, password, phone string) (*domain.Identity, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, phone)
	}
	return &domain.Identity{ID: "mock-id"}, nil
}

func (m *MockRegistrationService) RegisterToken(ctx context.Context, token, userID, phone string) (*domain.Identity, error) {
	if m.RegisterTokenFunc != nil {
		return m.RegisterTokenFunc(ctx, token, userID, phone)
	}
	return &domain.Identity{ID: userID, Token: &token, PhoneNumber: &phone}, nil
}

func (m *MockRegistrationService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.NewAuth("invalid credentials")
}

func (m *MockRegistrationService) ValidateToken(ctx context.Context, token string) (*domain.TokenValidation, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return &domain.TokenValidation{Valid: false}, nil
}

func (m *MockRegistrationService) Profile(ctx context.Context, id string) (*domain.Identity, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, id)
	}
	return nil, domain.NewNotFound("identity not found")
}

func (m *MockRegistrationService) UpdatePhone(ctx context.Context, token, phone string) (*domain.Identity, error) {
	if m.UpdatePhoneFunc != nil {
		return m.UpdatePhoneFunc(ctx, token, phone)
	}
	return nil, domain.NewNotFound("identity not found")
}

func (m *MockRegistrationService) RegisterTwilioSettings(ctx context.Context, ref string, settings *domain.TwilioSettings) (*domain.TwilioSettings, error) {
	if m.RegisterTwilioSettingsFunc != nil {
		return m.RegisterTwilioSettingsFunc(ctx, ref, settings)
	}
	return settings, nil
}

func (m *MockRegistrationService) UpdateTwilioSettings(ctx context.Context, ref string, patch *domain.TwilioSettingsPatch) (*domain.TwilioSettings, error) {
	if m.UpdateTwilioSettingsFunc != nil {
		return m.UpdateTwilioSettingsFunc(ctx, ref, patch)
	}
	return nil, domain.NewNotFound("twilio settings not found")
}

func (m *MockRegistrationService) DeleteIdentity(ctx context.Context, phone string) error {
	if m.DeleteIdentityFunc != nil {
		return m.DeleteIdentityFunc(ctx, phone)
	}
	return nil
}

func (m *MockRegistrationService) AppendLog(ctx context.Context, identityID, logType, message, timestamp string) error {
	if m.AppendLogFunc != nil {
		return m.AppendLogFunc(ctx, identityID, logType, message, timestamp)
	}
	return nil
}

func (m *MockRegistrationService) ListLogs(ctx context.Context, identityID string) ([]domain.LogEntry, error) {
	if m.ListLogsFunc != nil {
		return m.ListLogsFunc(ctx, identityID)
	}
	return nil, nil
}

func (m *MockRegistrationService) SendTestMessage(ctx context.Context, ref, body string) error {
	if m.SendTestMessageFunc != nil {
		return m.SendTestMessageFunc(ctx, ref, body)
	}
	return nil
}
