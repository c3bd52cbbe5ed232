package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a malformed config or request body.
// Always reported to the caller with a field-level message, never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a state conflict the caller must resolve
// explicitly: duplicate version names, deleting a version that still holds
// data without force, or a full version tracker.
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ProtectedError represents an operation against a protected resource that
// can never succeed, with or without force.
type ProtectedError struct {
	Entity string
}

func (e *ProtectedError) Error() string {
	return fmt.Sprintf("%s is protected and cannot be deleted", e.Entity)
}

// UpstreamUnavailableError represents a primary document-service call that
// failed for a reason other than "not found". It triggers the relational
// fallback path and is only surfaced when the fallback also fails.
type UpstreamUnavailableError struct {
	Upstream string
	Err      error
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Upstream, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Upstream)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProjectNotFound     = &NotFoundError{Entity: "project"}
	ErrConfigNotFound      = &NotFoundError{Entity: "takeoff config"}
	ErrVersionNotFound     = &NotFoundError{Entity: "version"}
	ErrLibraryItemNotFound = &NotFoundError{Entity: "library item"}
	ErrSpreadsheetNotFound = &NotFoundError{Entity: "takeoff spreadsheet"}
	ErrSetupTabNotFound    = &NotFoundError{Entity: "setup tab"}
)

// Conflict Errors
var (
	ErrVersionHasData  = &ConflictError{Entity: "version", Message: "version has data, use force=true to delete anyway"}
	ErrLastVersion     = &ConflictError{Entity: "version", Message: "cannot delete the last remaining version tab"}
	ErrVersionExists   = &ConflictError{Entity: "version", Message: "a version with this name already exists"}
	ErrTrackerCapacity = &ConflictError{Entity: "version tracker", Message: "version tracker is full"}
)

// ErrProtectedTab guards the Setup and Library tabs from deletion
var ErrProtectedTab = &ProtectedError{Entity: "tab"}

// IsNotFound reports whether err is any NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsProtected reports whether err is a ProtectedError
func IsProtected(err error) bool {
	var pe *ProtectedError
	return errors.As(err, &pe)
}

// IsUpstreamUnavailable reports whether err is an UpstreamUnavailableError
func IsUpstreamUnavailable(err error) bool {
	var ue *UpstreamUnavailableError
	return errors.As(err, &ue)
}
