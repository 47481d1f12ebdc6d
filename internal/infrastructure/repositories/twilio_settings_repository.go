package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/pablobispo13/api-portifolio/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TwilioSettingsRepositoryImpl implements domain.TwilioSettingsRepository using GORM
type TwilioSettingsRepositoryImpl struct {
	db *gorm.DB
}

// DBTwilioSettings represents the database model for TwilioSettings. The
// identity id is the primary key, which is what enforces the 1:1 ownership.
type DBTwilioSettings struct {
	IdentityID string `gorm:"primaryKey;size:64"`
	AccountSID string `gorm:"column:account_sid;size:64"`
	AuthToken  string `gorm:"size:128"`
	FromNumber string `gorm:"size:32"`
	ToNumber   string `gorm:"size:32"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBTwilioSettings) TableName() string {
	return "twilio_settings"
}

// NewTwilioSettingsRepository creates a new settings repository
func NewTwilioSettingsRepository(db *gorm.DB) domain.TwilioSettingsRepository {
	return &TwilioSettingsRepositoryImpl{db: db}
}

// Upsert implements domain.TwilioSettingsRepository. Creates the row on first
// registration, fully replaces all four credential fields thereafter.
func (r *TwilioSettingsRepositoryImpl) Upsert(ctx context.Context, settings *domain.TwilioSettings) (*domain.TwilioSettings, error) {
	dbSettings := &DBTwilioSettings{
		IdentityID: settings.IdentityID,
		AccountSID: settings.AccountSID,
		AuthToken:  settings.AuthToken,
		FromNumber: settings.FromNumber,
		ToNumber:   settings.ToNumber,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"account_sid", "auth_token", "from_number", "to_number", "updated_at"}),
	}).Create(dbSettings).Error
	if err != nil {
		return nil, domain.NewInternal("settings upsert failed", err)
	}

	return r.FindByIdentity(ctx, settings.IdentityID)
}

// Update implements domain.TwilioSettingsRepository. Fails with NotFoundError
// when no settings row exists; there is no implicit create.
func (r *TwilioSettingsRepositoryImpl) Update(ctx context.Context, identityID string, patch *domain.TwilioSettingsPatch) (*domain.TwilioSettings, error) {
	fields := map[string]any{"updated_at": time.Now()}
	if patch.AccountSID != nil {
		fields["account_sid"] = *patch.AccountSID
	}
	if patch.AuthToken != nil {
		fields["auth_token"] = *patch.AuthToken
	}
	if patch.FromNumber != nil {
		fields["from_number"] = *patch.FromNumber
	}
	if patch.ToNumber != nil {
		fields["to_number"] = *patch.ToNumber
	}

	res := r.db.WithContext(ctx).Model(&DBTwilioSettings{}).Where("identity_id = ?", identityID).Updates(fields)
	if res.Error != nil {
		return nil, domain.NewInternal("settings update failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFound("twilio settings not found")
	}

	return r.FindByIdentity(ctx, identityID)
}

// FindByIdentity implements domain.TwilioSettingsRepository
func (r *TwilioSettingsRepositoryImpl) FindByIdentity(ctx context.Context, identityID string) (*domain.TwilioSettings, error) {
	var dbSettings DBTwilioSettings
	err := r.db.WithContext(ctx).Where("identity_id = ?", identityID).First(&dbSettings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("twilio settings not found")
		}
		return nil, domain.NewInternal("settings lookup failed", err)
	}

	return &domain.TwilioSettings{
		IdentityID: dbSettings.IdentityID,
		AccountSID: dbSettings.AccountSID,
		AuthToken:  dbSettings.AuthToken,
		FromNumber: dbSettings.FromNumber,
		ToNumber:   dbSettings.ToNumber,
	}, nil
}

// DeleteAllFor implements domain.TwilioSettingsRepository. Idempotent: zero
// or one row removed, never an error when nothing matches.
func (r *TwilioSettingsRepositoryImpl) DeleteAllFor(ctx context.Context, identityID string) error {
	if err := r.db.WithContext(ctx).Where("identity_id = ?", identityID).Delete(&DBTwilioSettings{}).Error; err != nil {
		return domain.NewInternal("settings delete failed", err)
	}
	return nil
}
