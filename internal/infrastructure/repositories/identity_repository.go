package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/pablobispo13/api-portifolio/domain"
	"gorm.io/gorm"
)

// IdentityRepositoryImpl implements domain.IdentityRepository using GORM
type IdentityRepositoryImpl struct {
	db *gorm.DB
}

// DBIdentity represents the database model for Identity (with GORM tags).
// Email, phone and token are nullable so absent values never collide in the
// unique indexes.
type DBIdentity struct {
	ID           string    `gorm:"primaryKey;size:64"`
	Email        *string   `gorm:"uniqueIndex;size:255"`
	PhoneNumber  *string   `gorm:"uniqueIndex;size:32"`
	Token        *string   `gorm:"uniqueIndex;size:128"`
	PasswordHash *string   `gorm:"column:password"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBIdentity) TableName() string {
	return "identities"
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) domain.IdentityRepository {
	return &IdentityRepositoryImpl{db: db}
}

// Create implements domain.IdentityRepository. Uniqueness of email, phone and
// token is guaranteed by the database indexes; a duplicate surfaces as a
// ConflictError even under concurrent creates.
func (r *IdentityRepositoryImpl) Create(ctx context.Context, identity *domain.Identity) error {
	dbIdentity := r.domainToDB(identity)
	if err := r.db.WithContext(ctx).Create(dbIdentity).Error; err != nil {
		return translateError(err, "identity")
	}
	identity.CreatedAt = dbIdentity.CreatedAt
	identity.UpdatedAt = dbIdentity.UpdatedAt
	return nil
}

// FindByEmail implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByPhone implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.Identity, error) {
	return r.findOne(ctx, "phone_number = ?", phone)
}

// FindByToken implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.Identity, error) {
	return r.findOne(ctx, "token = ?", token)
}

// FindByID implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *IdentityRepositoryImpl) findOne(ctx context.Context, query string, arg any) (*domain.Identity, error) {
	var dbIdentity DBIdentity
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbIdentity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("identity not found")
		}
		return nil, domain.NewInternal("identity lookup failed", err)
	}
	return r.dbToDomain(&dbIdentity), nil
}

// UpdatePhone implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) UpdatePhone(ctx context.Context, token, phone string) (*domain.Identity, error) {
	return r.updateByToken(ctx, token, map[string]any{"phone_number": phone})
}

// UpdateToken implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) UpdateToken(ctx context.Context, oldToken, newToken string) (*domain.Identity, error) {
	return r.updateByToken(ctx, oldToken, map[string]any{"token": newToken})
}

func (r *IdentityRepositoryImpl) updateByToken(ctx context.Context, token string, fields map[string]any) (*domain.Identity, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&DBIdentity{}).Where("token = ?", token).Updates(fields)
	if res.Error != nil {
		return nil, translateError(res.Error, "identity")
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFound("identity not found")
	}

	// Re-read by the value the key holds after the update.
	current := token
	if v, ok := fields["token"].(string); ok {
		current = v
	}
	return r.FindByToken(ctx, current)
}

// UpdatePassword implements domain.IdentityRepository
func (r *IdentityRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&DBIdentity{}).Where("id = ?", id).
		Updates(map[string]any{"password": passwordHash, "updated_at": time.Now()})
	if res.Error != nil {
		return domain.NewInternal("password update failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFound("identity not found")
	}
	return nil
}

// Delete implements domain.IdentityRepository. The Twilio settings row and
// the identity row go in one transaction so no dangling settings survive.
func (r *IdentityRepositoryImpl) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identity_id = ?", id).Delete(&DBTwilioSettings{}).Error; err != nil {
			return domain.NewInternal("settings cleanup failed", err)
		}

		res := tx.Where("id = ?", id).Delete(&DBIdentity{})
		if res.Error != nil {
			return domain.NewInternal("identity delete failed", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.NewNotFound("identity not found")
		}
		return nil
	})
	return err
}

// domainToDB converts a domain identity to its database model
func (r *IdentityRepositoryImpl) domainToDB(identity *domain.Identity) *DBIdentity {
	return &DBIdentity{
		ID:           identity.ID,
		Email:        identity.Email,
		PhoneNumber:  identity.PhoneNumber,
		Token:        identity.Token,
		PasswordHash: identity.PasswordHash,
	}
}

// dbToDomain converts a database identity to its domain model
func (r *IdentityRepositoryImpl) dbToDomain(dbIdentity *DBIdentity) *domain.Identity {
	return &domain.Identity{
		ID:           dbIdentity.ID,
		Email:        dbIdentity.Email,
		PhoneNumber:  dbIdentity.PhoneNumber,
		Token:        dbIdentity.Token,
		PasswordHash: dbIdentity.PasswordHash,
		CreatedAt:    dbIdentity.CreatedAt,
		UpdatedAt:    dbIdentity.UpdatedAt,
	}
}

// translateError maps GORM errors onto the domain error kinds
func translateError(err error, what string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.NewConflict(what + " with a matching unique field already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewNotFound(what + " not found")
	default:
		return domain.NewInternal(what+" store failure", err)
	}
}
