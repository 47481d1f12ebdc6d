package repositories

import (
	"context"
	"testing"

	"github.com/pablobispo13/api-portifolio/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBIdentity{}, &DBTwilioSettings{}, &DBLogEntry{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func strptr(s string) *string { return &s }

func TestIdentityRepositoryCreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	identity := &domain.Identity{
		ID:           "user-1",
		Email:        strptr("a@b.com"),
		PhoneNumber:  strptr("+15551234"),
		Token:        strptr("bot-token-1"),
		PasswordHash: strptr("$2a$10$digest"),
	}
	if err := repo.Create(ctx, identity); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tests := []struct {
		name string
		find func() (*domain.Identity, error)
	}{
		{"by email", func() (*domain.Identity, error) { return repo.FindByEmail(ctx, "a@b.com") }},
		{"by phone", func() (*domain.Identity, error) { return repo.FindByPhone(ctx, "+15551234") }},
		{"by token", func() (*domain.Identity, error) { return repo.FindByToken(ctx, "bot-token-1") }},
		{"by id", func() (*domain.Identity, error) { return repo.FindByID(ctx, "user-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := tt.find()
			if err != nil {
				t.Fatalf("find failed: %v", err)
			}
			if found.ID != "user-1" {
				t.Errorf("expected id user-1, got %s", found.ID)
			}
			if found.Email == nil || *found.Email != "a@b.com" {
				t.Errorf("unexpected email %v", found.Email)
			}
		})
	}
}

func TestIdentityRepositoryFindAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByPhone(ctx, "+10000000"); !domain.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if _, err := repo.FindByToken(ctx, "no-such-token"); !domain.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestIdentityRepositoryUniqueConstraints(t *testing.T) {
	tests := []struct {
		name      string
		first     domain.Identity
		duplicate domain.Identity
	}{
		{
			name:      "duplicate phone",
			first:     domain.Identity{ID: "u1", PhoneNumber: strptr("+15550001"), Token: strptr("t1")},
			duplicate: domain.Identity{ID: "u2", PhoneNumber: strptr("+15550001"), Token: strptr("t2")},
		},
		{
			name:      "duplicate token",
			first:     domain.Identity{ID: "u1", PhoneNumber: strptr("+15550001"), Token: strptr("t1")},
			duplicate: domain.Identity{ID: "u2", PhoneNumber: strptr("+15550002"), Token: strptr("t1")},
		},
		{
			name:      "duplicate email",
			first:     domain.Identity{ID: "u1", Email: strptr("dup@b.com"), PhoneNumber: strptr("+15550001")},
			duplicate: domain.Identity{ID: "u2", Email: strptr("dup@b.com"), PhoneNumber: strptr("+15550002")},
		},
		{
			name:      "duplicate id",
			first:     domain.Identity{ID: "u1", PhoneNumber: strptr("+15550001")},
			duplicate: domain.Identity{ID: "u1", PhoneNumber: strptr("+15550002")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewIdentityRepository(db)
			ctx := context.Background()

			if err := repo.Create(ctx, &tt.first); err != nil {
				t.Fatalf("first create failed: %v", err)
			}
			err := repo.Create(ctx, &tt.duplicate)
			if !domain.IsConflict(err) {
				t.Fatalf("expected ConflictError, got %v", err)
			}

			// The losing create must not leave a second row behind.
			var count int64
			db.Model(&DBIdentity{}).Count(&count)
			if count != 1 {
				t.Errorf("expected 1 row after conflict, got %d", count)
			}
		})
	}
}

func TestIdentityRepositoryNullableFieldsDoNotCollide(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	// Two token-only bots without email must both insert.
	if err := repo.Create(ctx, &domain.Identity{ID: "b1", Token: strptr("t1"), PhoneNumber: strptr("+1")}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, &domain.Identity{ID: "b2", Token: strptr("t2"), PhoneNumber: strptr("+2")}); err != nil {
		t.Fatalf("second create with null email failed: %v", err)
	}
}

func TestIdentityRepositoryUpdatePhone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	seed := &domain.Identity{ID: "b1", Token: strptr("bot-token"), PhoneNumber: strptr("+15550001")}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdatePhone(ctx, "bot-token", "+15559999")
	if err != nil {
		t.Fatalf("update phone failed: %v", err)
	}
	if updated.PhoneNumber == nil || *updated.PhoneNumber != "+15559999" {
		t.Errorf("expected phone +15559999, got %v", updated.PhoneNumber)
	}

	if _, err := repo.UpdatePhone(ctx, "unknown-token", "+15550000"); !domain.IsNotFound(err) {
		t.Errorf("expected NotFoundError for unmatched token, got %v", err)
	}

	// Moving to a phone another identity owns must conflict.
	other := &domain.Identity{ID: "b2", Token: strptr("other-token"), PhoneNumber: strptr("+15550002")}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.UpdatePhone(ctx, "other-token", "+15559999"); !domain.IsConflict(err) {
		t.Errorf("expected ConflictError for taken phone, got %v", err)
	}
}

func TestIdentityRepositoryUpdateToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	seed := &domain.Identity{ID: "b1", Token: strptr("old-token"), PhoneNumber: strptr("+15550001")}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateToken(ctx, "old-token", "new-token")
	if err != nil {
		t.Fatalf("update token failed: %v", err)
	}
	if updated.Token == nil || *updated.Token != "new-token" {
		t.Errorf("expected token new-token, got %v", updated.Token)
	}

	if _, err := repo.FindByToken(ctx, "old-token"); !domain.IsNotFound(err) {
		t.Errorf("old token should no longer resolve, got %v", err)
	}
}

func TestIdentityRepositoryUpdatePassword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	seed := &domain.Identity{ID: "u1", Email: strptr("a@b.com"), PasswordHash: strptr("old-hash")}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.UpdatePassword(ctx, "u1", "new-hash"); err != nil {
		t.Fatalf("update password failed: %v", err)
	}
	found, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.PasswordHash == nil || *found.PasswordHash != "new-hash" {
		t.Errorf("expected rotated hash, got %v", found.PasswordHash)
	}

	if err := repo.UpdatePassword(ctx, "missing", "x"); !domain.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestIdentityRepositoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	settingsRepo := NewTwilioSettingsRepository(db)
	logRepo := NewActivityLogRepository(db)
	ctx := context.Background()

	seed := &domain.Identity{ID: "b1", Token: strptr("bot-token"), PhoneNumber: strptr("+15550001")}
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := settingsRepo.Upsert(ctx, &domain.TwilioSettings{
		IdentityID: "b1", AccountSID: "AC1", AuthToken: "secret", FromNumber: "+1", ToNumber: "+2",
	}); err != nil {
		t.Fatalf("settings upsert failed: %v", err)
	}
	if err := logRepo.Append(ctx, domain.NewActivityEntry("b1", domain.BotRegisteredEvent, "registered")); err != nil {
		t.Fatalf("log append failed: %v", err)
	}

	if err := repo.Delete(ctx, "b1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, "b1"); !domain.IsNotFound(err) {
		t.Errorf("identity should be gone, got %v", err)
	}
	if _, err := settingsRepo.FindByIdentity(ctx, "b1"); !domain.IsNotFound(err) {
		t.Errorf("settings should be gone, got %v", err)
	}

	// Log entries are retained history, not cascade-deleted.
	entries, err := logRepo.ListByIdentity(ctx, "b1", 0)
	if err != nil {
		t.Fatalf("log listing failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 retained log entry, got %d", len(entries))
	}

	if err := repo.Delete(ctx, "b1"); !domain.IsNotFound(err) {
		t.Errorf("second delete should be NotFoundError, got %v", err)
	}
}
