package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/pablobispo13/api-portifolio/domain"
)

func TestJWTServiceIssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", "test-issuer")

	token, err := svc.Issue("identity-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.IdentityID != "identity-123" {
		t.Errorf("expected identity identity-123, got %s", claims.IdentityID)
	}

	lifetime := claims.ExpiresAt - claims.IssuedAt
	if lifetime != int64(SessionTTL.Seconds()) {
		t.Errorf("expected one hour lifetime, got %d seconds", lifetime)
	}
}

func TestJWTServiceVerifyFailures(t *testing.T) {
	svc := NewJWTService("test-secret", "test-issuer")

	good, err := svc.Issue("identity-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(good, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	otherSvc := NewJWTService("different-secret", "test-issuer")
	wrongKey, err := otherSvc.Issue("identity-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not.a.jwt"},
		{"tampered signature", tampered},
		{"signed with wrong key", wrongKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			if err == nil {
				t.Fatal("expected verification to fail")
			}
			if !domain.IsAuth(err) {
				t.Errorf("expected an AuthError, got %T: %v", err, err)
			}
			if claims != nil {
				t.Error("expected nil claims on failure")
			}
		})
	}
}

func TestJWTServiceExpiredToken(t *testing.T) {
	svc := &JWTServiceImpl{
		secretKey: []byte("test-secret"),
		issuer:    "test-issuer",
		ttl:       -time.Minute,
	}

	token, err := svc.Issue("identity-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	} else if !domain.IsAuth(err) {
		t.Errorf("expected an AuthError, got %T: %v", err, err)
	}
}
