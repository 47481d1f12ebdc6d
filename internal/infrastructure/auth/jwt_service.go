package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pablobispo13/api-portifolio/domain"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = time.Hour

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewJWTService creates a new JWT service signing HS256 tokens with a one hour expiry
func NewJWTService(secretKey string, issuer string) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       SessionTTL,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(identityID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": identityID,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.ttl).Unix(),
		"jti":     j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Verify implements domain.TokenService. Every failure mode (bad signature,
// malformed token, expiry in the past) comes back as an AuthError; it never
// panics and never returns a raw library error.
func (j *JWTServiceImpl) Verify(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.NewAuth("unexpected signing method")
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, domain.NewAuth("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.NewAuth("malformed token")
	}

	identityID, ok := claims["user_id"].(string)
	if !ok || identityID == "" {
		return nil, domain.NewAuth("malformed token")
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.NewAuth("malformed token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.NewAuth("malformed token")
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.NewAuth("token has expired")
	}

	return &domain.TokenClaims{
		IdentityID: identityID,
		IssuedAt:   int64(iat),
		ExpiresAt:  int64(exp),
	}, nil
}
