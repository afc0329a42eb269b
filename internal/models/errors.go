package models

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotFoundError reports a referenced author, article, proposal or delegatee
// that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// ValidationError wraps malformed input. Err is usually validation.Errors.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ConflictError reports a request that contradicts the current state,
// such as a second ballot on the same proposal.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// ExternalDependencyError wraps a failure of the content store or the
// on-chain registry.
type ExternalDependencyError struct {
	Dependency string
	Err        error
}

func (e *ExternalDependencyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Dependency, e.Err)
}

func (e *ExternalDependencyError) Unwrap() error { return e.Err }

func notFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, reason string) error {
	return &ValidationError{Err: validation.Errors{field: errors.New(reason)}}
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsExternal(err error) bool {
	var e *ExternalDependencyError
	return errors.As(err, &e)
}
