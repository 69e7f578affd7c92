package errors

import (
	"errors"
	"fmt"
)

// InvalidTimeZoneError represents an unresolvable IANA time zone string.
// It never aborts a projection pass; the affected person degrades to "off".
type InvalidTimeZoneError struct {
	Zone string
}

func (e *InvalidTimeZoneError) Error() string {
	return fmt.Sprintf("invalid time zone %q", e.Zone)
}

// Is enables errors.Is() comparison for InvalidTimeZoneError
func (e *InvalidTimeZoneError) Is(target error) bool {
	t, ok := target.(*InvalidTimeZoneError)
	if !ok {
		return false
	}
	return t.Zone == "" || e.Zone == t.Zone
}

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

// ValidationError represents a validation error
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

// PersistenceError wraps a failed settings read or write. The failure is
// surfaced to the user through the notification sink as a soft failure;
// in-memory state is not rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrPersonNotFound   = &NotFoundError{Entity: "person"}
	ErrOverrideNotFound = &NotFoundError{Entity: "user override"}
	ErrSettingNotFound  = &NotFoundError{Entity: "setting"}
	ErrBoardNotFound    = &NotFoundError{Entity: "board"}
)

// Recoverable Payload Errors
var (
	ErrMalformedPreferences      = errors.New("persisted preferences are malformed")
	ErrMalformedDirectoryPayload = errors.New("directory payload item is malformed")
)

// Business Logic Errors
var (
	ErrInvalidSortCriteria     = errors.New("invalid sort criteria")
	ErrInvalidSortDirection    = errors.New("invalid sort direction")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrDirectoryNotConfigured  = errors.New("no directory provider is configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidTimeZone checks if an error is an InvalidTimeZoneError
func IsInvalidTimeZone(err error) bool {
	var tzErr *InvalidTimeZoneError
	return errors.As(err, &tzErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var pErr *PersistenceError
	return errors.As(err, &pErr)
}

// NewInvalidTimeZoneError creates a new InvalidTimeZoneError for a zone string
func NewInvalidTimeZoneError(zone string) error {
	return &InvalidTimeZoneError{Zone: zone}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPersistenceError wraps an error from the persistence collaborator
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
