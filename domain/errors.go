package domain

import (
	"errors"
	"fmt"
)

// ValidationError represents missing or malformed caller input
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a unique-constraint violation (duplicate email, phone or token)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

// NotFoundError represents a missing identity or credential record
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Message)
}

// AuthError represents bad credentials or an invalid/expired session token
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Message)
}

// InternalError represents a store or signer failure unrelated to caller input
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("internal error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("internal error: %s", e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// NewValidation builds a ValidationError for a specific field
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflict builds a ConflictError
func NewConflict(message string) error {
	return &ConflictError{Message: message}
}

// NewNotFound builds a NotFoundError
func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// NewAuth builds an AuthError
func NewAuth(message string) error {
	return &AuthError{Message: message}
}

// NewInternal builds an InternalError wrapping the underlying cause
func NewInternal(message string, err error) error {
	return &InternalError{Message: message, Err: err}
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsAuth checks if an error is an AuthError
func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var target *InternalError
	return errors.As(err, &target)
}
