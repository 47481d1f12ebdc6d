package domain

import "context"

// IdentityRepository defines identity data access operations
type IdentityRepository interface {
	Create(ctx context.Context, identity *Identity) error
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	FindByPhone(ctx context.Context, phone string) (*Identity, error)
	FindByToken(ctx context.Context, token string) (*Identity, error)
	FindByID(ctx context.Context, id string) (*Identity, error)
	UpdatePhone(ctx context.Context, token, phone string) (*Identity, error)
	UpdateToken(ctx context.Context, oldToken, newToken string) (*Identity, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// Delete removes the identity and its Twilio settings in one transaction.
	Delete(ctx context.Context, id string) error
}

// TwilioSettingsRepository defines credential settings data access operations.
// At most one settings row exists per identity.
type TwilioSettingsRepository interface {
	Upsert(ctx context.Context, settings *TwilioSettings) (*TwilioSettings, error)
	Update(ctx context.Context, identityID string, patch *TwilioSettingsPatch) (*TwilioSettings, error)
	FindByIdentity(ctx context.Context, identityID string) (*TwilioSettings, error)
	// DeleteAllFor is idempotent; deleting for an identity with no settings is not an error.
	DeleteAllFor(ctx context.Context, identityID string) error
}

// ActivityLogRepository defines append-only activity log operations
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *LogEntry) error
	ListByIdentity(ctx context.Context, identityID string, limit int) ([]LogEntry, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Issue(identityID string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// MessagingService sends a message through the provider identified by the
// given credential settings
type MessagingService interface {
	Send(settings *TwilioSettings, body string) error
}

// RegistrationService defines the identity lifecycle business logic
type RegistrationService interface {
	Register(ctx context.Context, email, password, phone string) (*Identity, error)
	RegisterToken(ctx context.Context, token, userID, phone string) (*Identity, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ValidateToken(ctx context.Context, token string) (*TokenValidation, error)
	Profile(ctx context.Context, id string) (*Identity, error)
	UpdatePhone(ctx context.Context, token, phone string) (*Identity, error)
	RegisterTwilioSettings(ctx context.Context, ref string, settings *TwilioSettings) (*TwilioSettings, error)
	UpdateTwilioSettings(ctx context.Context, ref string, patch *TwilioSettingsPatch) (*TwilioSettings, error)
	DeleteIdentity(ctx context.Context, phone string) error
	AppendLog(ctx context.Context, identityID, logType, message, timestamp string) error
	ListLogs(ctx context.Context, identityID string) ([]LogEntry, error)
	SendTestMessage(ctx context.Context, ref, body string) error
}
