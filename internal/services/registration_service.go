package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pablobispo13/api-portifolio/domain"
)

// sessionExpirySeconds mirrors the one hour token lifetime of the issuer.
const sessionExpirySeconds = 3600

// genericLoginFailure is returned for unknown email and wrong password alike,
// so login responses never reveal whether an account exists.
const genericLoginFailure = "invalid credentials"

// timestampLayouts are the accepted formats for caller-supplied log timestamps
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// RegistrationServiceImpl implements domain.RegistrationService
type RegistrationServiceImpl struct {
	identityRepo domain.IdentityRepository
	settingsRepo domain.TwilioSettingsRepository
	logRepo      domain.ActivityLogRepository
	passwordSvc  domain.PasswordService
	tokenSvc     domain.TokenService
	messenger    domain.MessagingService
	logger       *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	identityRepo domain.IdentityRepository,
	settingsRepo domain.TwilioSettingsRepository,
	logRepo domain.ActivityLogRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	messenger domain.MessagingService,
	logger *zap.Logger,
) domain.RegistrationService {
	return &RegistrationServiceImpl{
		identityRepo: identityRepo,
		settingsRepo: settingsRepo,
		logRepo:      logRepo,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		messenger:    messenger,
		logger:       logger,
	}
}

// Register implements domain.RegistrationService. Uniqueness is left to the
// store's constraints; there is no pre-check that could race with a
// concurrent registration.
func (s *RegistrationServiceImpl) Register(ctx context.Context, email, password, phone string) (*domain.Identity, error) {
	if email == "" {
		return nil, domain.NewValidation("email", "is required")
	}
	if password == "" {
		return nil, domain.NewValidation("password", "is required")
	}
	if phone == "" {
		return nil, domain.NewValidation("phone_number", "is required")
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, domain.NewInternal("failed to hash password", err)
	}

	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        &email,
		PhoneNumber:  &phone,
		PasswordHash: &hash,
	}
	if err := s.identityRepo.Create(ctx, identity); err != nil {
		return nil, err
	}

	s.appendActivity(ctx, identity.ID, domain.UserRegisteredEvent, "user registered with email "+email)
	return identity, nil
}

// RegisterToken implements domain.RegistrationService. The externally issued
// user id becomes the identity id, matching the bot provisioning flow.
func (s *RegistrationServiceImpl) RegisterToken(ctx context.Context, token, userID, phone string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.NewValidation("token", "is required")
	}
	if userID == "" {
		return nil, domain.NewValidation("user_id", "is required")
	}
	if phone == "" {
		return nil, domain.NewValidation("phone_number", "is required")
	}

	identity := &domain.Identity{
		ID:          userID,
		Token:       &token,
		PhoneNumber: &phone,
	}
	if err := s.identityRepo.Create(ctx, identity); err != nil {
		return nil, err
	}

	s.appendActivity(ctx, identity.ID, domain.BotRegisteredEvent, "bot registered for phone "+phone)
	return identity, nil
}

// Login implements domain.RegistrationService
func (s *RegistrationServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" {
		return nil, domain.NewValidation("email", "is required")
	}
	if password == "" {
		return nil, domain.NewValidation("password", "is required")
	}

	identity, err := s.identityRepo.FindByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAuth(genericLoginFailure)
		}
		return nil, err
	}

	if !identity.HasPassword() || !s.passwordSvc.Verify(*identity.PasswordHash, password) {
		return nil, domain.NewAuth(genericLoginFailure)
	}

	accessToken, err := s.tokenSvc.Issue(identity.ID)
	if err != nil {
		return nil, domain.NewInternal("failed to issue session token", err)
	}

	s.appendActivity(ctx, identity.ID, domain.UserLoginEvent, "user logged in")
	return &domain.AuthResult{
		Identity:    identity,
		AccessToken: accessToken,
		ExpiresIn:   sessionExpirySeconds,
	}, nil
}

// ValidateToken implements domain.RegistrationService. A cryptographically
// bad token is an AuthError; a valid token whose identity no longer exists
// validates false without an error.
func (s *RegistrationServiceImpl) ValidateToken(ctx context.Context, token string) (*domain.TokenValidation, error) {
	if token == "" {
		return nil, domain.NewValidation("token", "is required")
	}

	claims, err := s.tokenSvc.Verify(token)
	if err != nil {
		return &domain.TokenValidation{Valid: false}, err
	}

	identity, err := s.identityRepo.FindByID(ctx, claims.IdentityID)
	if err != nil {
		if domain.IsNotFound(err) {
			return &domain.TokenValidation{Valid: false}, nil
		}
		return nil, err
	}

	return &domain.TokenValidation{Valid: true, IdentityID: identity.ID}, nil
}

// Profile implements domain.RegistrationService
func (s *RegistrationServiceImpl) Profile(ctx context.Context, id string) (*domain.Identity, error) {
	return s.identityRepo.FindByID(ctx, id)
}

// UpdatePhone implements domain.RegistrationService
func (s *RegistrationServiceImpl) UpdatePhone(ctx context.Context, token, phone string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.NewValidation("token", "is required")
	}
	if phone == "" {
		return nil, domain.NewValidation("phone_number", "is required")
	}

	identity, err := s.identityRepo.UpdatePhone(ctx, token, phone)
	if err != nil {
		return nil, err
	}

	s.appendActivity(ctx, identity.ID, domain.PhoneUpdatedEvent, "phone number updated to "+phone)
	return identity, nil
}

// RegisterTwilioSettings implements domain.RegistrationService. Upsert
// semantics: first call provisions the identity, later calls fully replace
// the credential set.
func (s *RegistrationServiceImpl) RegisterTwilioSettings(ctx context.Context, ref string, settings *domain.TwilioSettings) (*domain.TwilioSettings, error) {
	if settings.AccountSID == "" || settings.AuthToken == "" || settings.FromNumber == "" || settings.ToNumber == "" {
		return nil, domain.NewValidation("", "accountSid, authToken, fromNumber and toNumber are required")
	}

	identity, err := s.resolveIdentity(ctx, ref)
	if err != nil {
		return nil, err
	}

	settings.IdentityID = identity.ID
	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		return nil, err
	}

	s.appendActivity(ctx, identity.ID, domain.TwilioSettingsRegisteredEvent, "twilio settings registered")
	return saved, nil
}

// UpdateTwilioSettings implements domain.RegistrationService. Requires an
// already provisioned identity; there is no implicit create.
func (s *RegistrationServiceImpl) UpdateTwilioSettings(ctx context.Context, ref string, patch *domain.TwilioSettingsPatch) (*domain.TwilioSettings, error) {
	identity, err := s.resolveIdentity(ctx, ref)
	if err != nil {
		return nil, err
	}

	updated, err := s.settingsRepo.Update(ctx, identity.ID, patch)
	if err != nil {
		return nil, err
	}

	s.appendActivity(ctx, identity.ID, domain.TwilioSettingsUpdatedEvent, "twilio settings updated")
	return updated, nil
}

// DeleteIdentity implements domain.RegistrationService. The repository
// removes settings and identity in one transaction; the activity log keeps
// its entries for the deleted identity.
func (s *RegistrationServiceImpl) DeleteIdentity(ctx context.Context, phone string) error {
	if phone == "" {
		return domain.NewValidation("phone_number", "is required")
	}

	identity, err := s.identityRepo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}

	if err := s.identityRepo.Delete(ctx, identity.ID); err != nil {
		return err
	}

	s.appendActivity(ctx, identity.ID, domain.UserDeletedEvent, "identity deleted by phone "+phone)
	return nil
}

// AppendLog implements domain.RegistrationService. Validation happens before
// any store call; an unparsable timestamp writes nothing.
func (s *RegistrationServiceImpl) AppendLog(ctx context.Context, identityID, logType, message, timestamp string) error {
	if identityID == "" {
		return domain.NewValidation("user_id", "is required")
	}
	if logType == "" {
		return domain.NewValidation("logType", "is required")
	}
	if message == "" {
		return domain.NewValidation("message", "is required")
	}

	ts, err := parseTimestamp(timestamp)
	if err != nil {
		return domain.NewValidation("timestamp", fmt.Sprintf("%q is not a parsable timestamp", timestamp))
	}

	return s.logRepo.Append(ctx, &domain.LogEntry{
		Timestamp:  ts,
		LogType:    logType,
		Message:    message,
		IdentityID: identityID,
	})
}

// ListLogs implements domain.RegistrationService
func (s *RegistrationServiceImpl) ListLogs(ctx context.Context, identityID string) ([]domain.LogEntry, error) {
	if identityID == "" {
		return nil, domain.NewValidation("user_id", "is required")
	}
	return s.logRepo.ListByIdentity(ctx, identityID, 100)
}

// SendTestMessage implements domain.RegistrationService. Requires a
// provisioned identity; provider failures surface as InternalError.
func (s *RegistrationServiceImpl) SendTestMessage(ctx context.Context, ref, body string) error {
	if body == "" {
		return domain.NewValidation("message", "is required")
	}

	identity, err := s.resolveIdentity(ctx, ref)
	if err != nil {
		return err
	}

	settings, err := s.settingsRepo.FindByIdentity(ctx, identity.ID)
	if err != nil {
		return err
	}

	if err := s.messenger.Send(settings, body); err != nil {
		return domain.NewInternal("message delivery failed", err)
	}

	s.appendActivity(ctx, identity.ID, domain.TestMessageEvent, "test message sent")
	return nil
}

// resolveIdentity accepts either a bot registration token or an identity id
func (s *RegistrationServiceImpl) resolveIdentity(ctx context.Context, ref string) (*domain.Identity, error) {
	if ref == "" {
		return nil, domain.NewValidation("token", "is required")
	}

	identity, err := s.identityRepo.FindByToken(ctx, ref)
	if err == nil {
		return identity, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}
	return s.identityRepo.FindByID(ctx, ref)
}

// appendActivity records a lifecycle event. Best effort: a failing log write
// must not fail the operation it describes.
func (s *RegistrationServiceImpl) appendActivity(ctx context.Context, identityID string, event domain.ActivityEventType, message string) {
	entry := domain.NewActivityEntry(identityID, event, message)
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("activity log append failed",
			zap.String("identity_id", identityID),
			zap.String("event", string(event)),
			zap.Error(err))
	}
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format %q", value)
}
