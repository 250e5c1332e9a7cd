// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP responses by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCollection indicates a selection was attempted on an empty collection.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// EmptyCollectionError reports that a collection had nothing to select from.
// It matches both ErrEmptyCollection and ErrNotFound, so callers that only
// distinguish "found" from "not found" treat it as the latter.
type EmptyCollectionError struct {
	Collection string
}

// Error implements the error interface.
func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("no %s found", e.Collection)
}

// Is reports whether target is one of the sentinels this error represents.
func (e *EmptyCollectionError) Is(target error) bool {
	return target == ErrEmptyCollection || target == ErrNotFound
}

// NewEmptyCollectionError creates an empty collection error for the named collection.
func NewEmptyCollectionError(collection string) error {
	return &EmptyCollectionError{Collection: collection}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error.
// Empty collection errors are reported as not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsEmptyCollection checks if an error is an empty collection error.
func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyCollection)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
