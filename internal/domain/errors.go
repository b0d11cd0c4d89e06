// Package domain holds the quotation catalogue's entities, the review state machine and the
// error taxonomy shared by every layer.
//
// Domain errors describe business failures only. Adapters translate them to transport
// responses (HTTP status codes, log levels, metrics labels).
package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness clash, e.g. an author name that already exists.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the caller may not perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")

	// ErrInvalidState indicates an action against an entity in the wrong lifecycle state.
	ErrInvalidState = errors.New("invalid state")
)

// Entity names used in error messages.
const (
	EntityQuotation = "quotation"
	EntityAuthor    = "author"
	EntitySource    = "source"
)

// NotFoundError reports a missing entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a not found error for the given entity.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a uniqueness or concurrency clash.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a conflict error.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError reports malformed input. Field and Message describe the first problem;
// Fields carries every problem found, keyed by field name.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 1 {
		keys := slices.Sorted(maps.Keys(e.Fields))
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}

		return "validation failed: " + strings.Join(parts, "; ")
	}

	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Details returns the per-field messages, including the primary field.
func (e *ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Fields)+1)
	maps.Copy(out, e.Fields)
	if e.Field != "" {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}

	return out
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ForbiddenError reports an operation the caller is not allowed to perform.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func (e *ForbiddenError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("operation %q forbidden", e.Operation)
	}

	return fmt.Sprintf("operation %q forbidden: %s", e.Operation, e.Reason)
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// NewForbiddenError creates a forbidden error.
func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// UnavailableError reports a dependency that could not serve the request.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("service %q unavailable", e.Service)
	}

	return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// NewUnavailableError creates an unavailable error.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// InvalidStateError reports an action attempted against an entity whose current status does
// not allow it. Current is embedded in the message for caller diagnostics.
type InvalidStateError struct {
	Entity  string
	ID      string
	Action  string
	Current Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s %q: status is %s, expected %s",
		e.Action, e.Entity, e.ID, e.Current, StatusPending)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// NewInvalidStateError creates an invalid state error.
func NewInvalidStateError(entity, id, action string, current Status) error {
	return &InvalidStateError{Entity: entity, ID: id, Action: action, Current: current}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

// IsInvalidState checks if an error is an invalid state error.
func IsInvalidState(err error) bool { return errors.Is(err, ErrInvalidState) }
