package repositories

import (
	"context"
	"time"

	"github.com/pablobispo13/api-portifolio/domain"
	"gorm.io/gorm"
)

// ActivityLogRepositoryImpl implements domain.ActivityLogRepository using GORM
type ActivityLogRepositoryImpl struct {
	db *gorm.DB
}

// DBLogEntry represents the database model for LogEntry. The identity id is
// deliberately not a foreign key: log entries outlive their identity.
type DBLogEntry struct {
	ID         uint      `gorm:"primaryKey"`
	Timestamp  time.Time `gorm:"index"`
	LogType    string    `gorm:"size:64;index"`
	Message    string    `gorm:"type:text"`
	IdentityID string    `gorm:"size:64;index"`
	CreatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBLogEntry) TableName() string {
	return "log_entries"
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) domain.ActivityLogRepository {
	return &ActivityLogRepositoryImpl{db: db}
}

// Append implements domain.ActivityLogRepository. Pure insert; prior entries
// are never touched.
func (r *ActivityLogRepositoryImpl) Append(ctx context.Context, entry *domain.LogEntry) error {
	dbEntry := &DBLogEntry{
		Timestamp:  entry.Timestamp,
		LogType:    entry.LogType,
		Message:    entry.Message,
		IdentityID: entry.IdentityID,
	}
	if err := r.db.WithContext(ctx).Create(dbEntry).Error; err != nil {
		return domain.NewInternal("log append failed", err)
	}
	entry.ID = dbEntry.ID
	return nil
}

// ListByIdentity implements domain.ActivityLogRepository, newest first
func (r *ActivityLogRepositoryImpl) ListByIdentity(ctx context.Context, identityID string, limit int) ([]domain.LogEntry, error) {
	var dbEntries []DBLogEntry
	q := r.db.WithContext(ctx).Where("identity_id = ?", identityID).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&dbEntries).Error; err != nil {
		return nil, domain.NewInternal("log listing failed", err)
	}

	entries := make([]domain.LogEntry, 0, len(dbEntries))
	for _, e := range dbEntries {
		entries = append(entries, domain.LogEntry{
			ID:         e.ID,
			Timestamp:  e.Timestamp,
			LogType:    e.LogType,
			Message:    e.Message,
			IdentityID: e.IdentityID,
		})
	}
	return entries, nil
}
