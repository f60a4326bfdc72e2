package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidReference is returned when a scripture reference fails canonical validation.
	ErrInvalidReference = errors.New("invalid scripture reference")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrStorageFailure is returned when the catalog store cannot complete a fetch, save or delete.
	ErrStorageFailure = errors.New("storage failure")
)

// ValidationError represents a validation error with a field name.
// Kind is the sentinel it unwraps to (ErrInvalidInput when nil).
type ValidationError struct {
	Field   string
	Message string
	Kind    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Kind == nil {
		return ErrInvalidInput
	}
	return e.Kind
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// storageError marks err as a storage failure while keeping it inspectable.
func storageError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", msg, ErrStorageFailure, err)
}
