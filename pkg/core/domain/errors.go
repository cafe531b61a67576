package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid id")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldErrors maps a payload field key to the message describing its failure
type FieldErrors map[string]string

// ValidationResult is the outcome of checking a write payload
type ValidationResult struct {
	IsValid     bool        `json:"is_valid"`
	Errors      []string    `json:"errors"`
	FieldErrors FieldErrors `json:"fields"`
}

// ValidationError carries a failed ValidationResult through the service layer
type ValidationError struct {
	Message string
	Result  ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%d errors)", e.Message, len(e.Result.Errors))
}

// StoreError wraps a persistence failure so it can be told apart from an empty result.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }
