package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

const (
	// External capabilities
	ErrCodeDetectionFailed      ErrorCode = "DETECTION_FAILED"
	ErrCodeClassificationFailed ErrorCode = "CLASSIFICATION_FAILED"
	ErrCodeExternalTimeout      ErrorCode = "EXTERNAL_TIMEOUT"

	// Session state
	ErrCodeSessionStoreUnavailable ErrorCode = "SESSION_STORE_UNAVAILABLE"
	ErrCodeSessionExpired          ErrorCode = "SESSION_EXPIRED"
	ErrCodeStaleChoice             ErrorCode = "STALE_CHOICE"

	// Slot search & aggregation
	ErrCodeNoCandidates ErrorCode = "NO_CANDIDATES"
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"

	// Validation
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Internal
	ErrCodeTemplateMissing ErrorCode = "TEMPLATE_MISSING"
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
)

// AppError is a structured error carrying a stable code for logging and
// branch decisions in the router.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Common error constructors

func DetectionFailed(cause error) *AppError {
	return Wrap(ErrCodeDetectionFailed, "Language detection failed", cause)
}

func ClassificationFailed(cause error) *AppError {
	return Wrap(ErrCodeClassificationFailed, "Intent classification failed", cause)
}

func ExternalTimeout(capability string, cause error) *AppError {
	return Wrap(ErrCodeExternalTimeout, fmt.Sprintf("Timeout calling %s", capability), cause)
}

func SessionStoreUnavailable(cause error) *AppError {
	return Wrap(ErrCodeSessionStoreUnavailable, "Session store unavailable", cause)
}

func SessionExpired() *AppError {
	return New(ErrCodeSessionExpired, "Session absent or expired")
}

func StaleChoice(choiceID string) *AppError {
	return New(ErrCodeStaleChoice, fmt.Sprintf("Choice %q is not valid for the current session state", choiceID))
}

func NoCandidates() *AppError {
	return New(ErrCodeNoCandidates, "No candidate slots available")
}

func Database(cause error) *AppError {
	return Wrap(ErrCodeDatabase, "Database error", cause)
}

func ValidationError(message string) *AppError {
	return New(ErrCodeValidation, message)
}

func InvalidInput(field string, reason string) *AppError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("Invalid %s: %s", field, reason))
}

func TemplateMissing(key, language string) *AppError {
	return New(ErrCodeTemplateMissing, fmt.Sprintf("No template for %q in %q or the default language", key, language))
}

func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetCode returns the error code if the error is an AppError, otherwise returns ErrCodeInternal
func GetCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}
