package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "validation error with field",
			err:         NewValidation("phone_number", "is required"),
			expectedMsg: "validation error on field phone_number: is required",
		},
		{
			name:        "validation error without field",
			err:         &ValidationError{Message: "timestamp is not parsable"},
			expectedMsg: "validation error: timestamp is not parsable",
		},
		{
			name:        "conflict error",
			err:         NewConflict("token already registered"),
			expectedMsg: "conflict: token already registered",
		},
		{
			name:        "not found error",
			err:         NewNotFound("identity not found"),
			expectedMsg: "not found: identity not found",
		},
		{
			name:        "auth error",
			err:         NewAuth("invalid credentials"),
			expectedMsg: "unauthorized: invalid credentials",
		},
		{
			name:        "internal error without cause",
			err:         &InternalError{Message: "store failure"},
			expectedMsg: "internal error: store failure",
		},
		{
			name:        "internal error with cause",
			err:         NewInternal("store failure", errors.New("connection reset")),
			expectedMsg: "internal error: store failure: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected error message %q, got %q", tt.expectedMsg, tt.err.Error())
			}
		})
	}
}

func TestErrorKindChecks(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		check   func(error) bool
		matches bool
	}{
		{"validation matches IsValidation", NewValidation("email", "is required"), IsValidation, true},
		{"conflict matches IsConflict", NewConflict("duplicate phone"), IsConflict, true},
		{"not found matches IsNotFound", NewNotFound("no such identity"), IsNotFound, true},
		{"auth matches IsAuth", NewAuth("bad password"), IsAuth, true},
		{"internal matches IsInternal", NewInternal("db down", nil), IsInternal, true},
		{"conflict does not match IsNotFound", NewConflict("duplicate phone"), IsNotFound, false},
		{"auth does not match IsValidation", NewAuth("bad password"), IsValidation, false},
		{"plain error matches no kind", errors.New("plain"), IsConflict, false},
		{"nil matches no kind", nil, IsAuth, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.matches {
				t.Errorf("expected check to return %v, got %v", tt.matches, got)
			}
		})
	}
}

func TestErrorKindChecksWrapped(t *testing.T) {
	// Kind checks must see through fmt.Errorf wrapping at the service boundary.
	wrapped := fmt.Errorf("register: %w", NewConflict("duplicate token"))
	if !IsConflict(wrapped) {
		t.Error("expected wrapped conflict to match IsConflict")
	}
	if IsNotFound(wrapped) {
		t.Error("expected wrapped conflict not to match IsNotFound")
	}
}

func TestInternalErrorUnwrap(t *testing.T) {
	cause := errors.New("unique constraint failed")
	err := NewInternal("insert failed", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}
