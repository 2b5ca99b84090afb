package model

import (
	"errors"
	"fmt"
	"time"
)

// Common errors used across the application
var (
	// Registry errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")

	// Word game input rejects. Each maps to a distinct message; the row is
	// not advanced on any of them.
	ErrWrongLength    = errors.New("guess has the wrong length")
	ErrInvalidWord    = errors.New("word is not in the accepted list")
	ErrDuplicateGuess = errors.New("word was already guessed")

	// Game lifecycle errors
	ErrGameNotActive = errors.New("no game in progress")
	ErrGameOver      = errors.New("game is already over")
	ErrRevealing     = errors.New("reveal in progress")
	ErrInvalidInput  = errors.New("invalid input")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")
)

// ValidationError reports bad user input on a named field. It is recovered
// locally and rendered as a field-level message, never fatal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// LockedError reports an active login lockout window and carries the time
// remaining until the window expires.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	minutes := int(e.Remaining.Minutes())
	if e.Remaining > 0 && e.Remaining%time.Minute != 0 {
		minutes++ // round up, matching the "try again in N minutes" message
	}
	return fmt.Sprintf("account locked, try again in %d minutes", minutes)
}

// StorageError wraps a persistence failure. It is caught at the persistence
// boundary and converted to a fallback value; it never reaches the UI layer.
type StorageError struct {
	Key string
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
