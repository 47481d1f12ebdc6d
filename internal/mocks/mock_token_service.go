package mocks

import (
	"time"

	"github.com/pablobispo13/api-portifolio/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(identityID string) (string, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Issue(identityID string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(identityID)
	}
	return "token_for_" + identityID, nil
}

func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	if len(token) > len("token_for_") && token[:len("token_for_")] == "token_for_" {
		now := time.Now()
		return &domain.TokenClaims{
			IdentityID: token[len("token_for_"):],
			IssuedAt:   now.Unix(),
			ExpiresAt:  now.Add(time.Hour).Unix(),
		}, nil
	}
	return nil, domain.NewAuth("invalid token")
}
