package mocks

import (
	"github.com/pablobispo13/api-portifolio/domain"
)

// MockMessagingService implements domain.MessagingService for testing
type MockMessagingService struct {
	SendFunc func(settings *domain.TwilioSettings, body string) error

	SentBodies []string
}

// NewMockMessagingService creates a new MockMessagingService with default behaviors
func NewMockMessagingService() *MockMessagingService {
	return &MockMessagingService{}
}

func (m *MockMessagingService) Send(settings *domain.TwilioSettings, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(settings, body)
	}
	m.SentBodies = append(m.SentBodies, body)
	return nil
}
