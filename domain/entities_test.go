package domain

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func TestIdentityHasPassword(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		expected bool
	}{
		{
			name:     "email identity with password hash",
			identity: Identity{ID: "u1", Email: strptr("a@b.com"), PasswordHash: strptr("$2a$10$abcdef")},
			expected: true,
		},
		{
			name:     "bot identity without password",
			identity: Identity{ID: "bot1", Token: strptr("tok-123")},
			expected: false,
		},
		{
			name:     "empty password hash",
			identity: Identity{ID: "u2", PasswordHash: strptr("")},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.HasPassword(); got != tt.expected {
				t.Errorf("HasPassword() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestNewActivityEntry(t *testing.T) {
	before := time.Now().UTC()
	entry := NewActivityEntry("user-42", UserDeletedEvent, "identity deleted by phone +15551234")
	after := time.Now().UTC()

	if entry.IdentityID != "user-42" {
		t.Errorf("expected identity user-42, got %s", entry.IdentityID)
	}
	if entry.LogType != string(UserDeletedEvent) {
		t.Errorf("expected log type %s, got %s", UserDeletedEvent, entry.LogType)
	}
	if entry.Message != "identity deleted by phone +15551234" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if entry.Timestamp.Before(before) || entry.Timestamp.After(after) {
		t.Errorf("timestamp %v outside expected window [%v, %v]", entry.Timestamp, before, after)
	}
}
