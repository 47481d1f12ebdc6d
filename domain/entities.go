package domain

import "time"

// Identity represents a registered principal (user or bot) in the system.
// Email, phone number and bot token are optional but globally unique when set.
type Identity struct {
	ID           string
	Email        *string
	PhoneNumber  *string
	Token        *string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the identity authenticates with email/password.
func (i *Identity) HasPassword() bool {
	return i.PasswordHash != nil && *i.PasswordHash != ""
}

// TwilioSettings holds the messaging-provider credentials owned by one identity
type TwilioSettings struct {
	IdentityID string
	AccountSID string
	AuthToken  string
	FromNumber string
	ToNumber   string
}

// TwilioSettingsPatch carries a partial settings update; nil fields are left unchanged
type TwilioSettingsPatch struct {
	AccountSID *string
	AuthToken  *string
	FromNumber *string
	ToNumber   *string
}

// LogEntry is one append-only activity record for an identity
type LogEntry struct {
	ID         uint
	Timestamp  time.Time
	LogType    string
	Message    string
	IdentityID string
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	Identity    *Identity
	AccessToken string
	ExpiresIn   int64
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	IdentityID string `json:"user_id"`
	IssuedAt   int64  `json:"iat"`
	ExpiresAt  int64  `json:"exp"`
}

// TokenValidation is the outcome of a token validation request.
// Valid is false both for bad tokens and for tokens whose identity no longer exists.
type TokenValidation struct {
	Valid      bool
	IdentityID string
}
