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

// UploadError represents a failure while persisting uploaded file content
type UploadError struct {
	FileName string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to store file %s: %v", e.FileName, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrPersonNotFound   = &NotFoundError{Entity: "person"}
	ErrProjectNotFound  = &NotFoundError{Entity: "project"}
	ErrHardwareNotFound = &NotFoundError{Entity: "hardware"}
	ErrTaskNotFound     = &NotFoundError{Entity: "task"}
)

// Invalid Input Errors. The messages are part of the API contract and are
// returned verbatim in the 400 response body.
var (
	ErrInvalidProjectStatus  = errors.New("Invalid project status")
	ErrInvalidPersonRole     = errors.New("Invalid person role")
	ErrInvalidTaskStatus     = errors.New("Invalid task status")
	ErrTeamMemberIDsNotArray = errors.New("teamMemberIds must be an array")
	ErrNoFilesProvided       = errors.New("No files provided")
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

// IsUpload checks if an error is an UploadError
func IsUpload(err error) bool {
	var uploadErr *UploadError
	return errors.As(err, &uploadErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUploadError wraps an I/O failure for a single file in a batch
func NewUploadError(fileName string, err error) error {
	return &UploadError{FileName: fileName, Err: err}
}
