package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("Error returns formatted string", func(t *testing.T) {
		err := New(ErrCodeSessionExpired, "Session absent or expired")
		assert.Equal(t, "SESSION_EXPIRED: Session absent or expired", err.Error())
	})

	t.Run("Error with cause includes cause", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := Wrap(ErrCodeDatabase, "Database error", cause)
		assert.Contains(t, err.Error(), "DATABASE_ERROR")
		assert.Contains(t, err.Error(), "Database error")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("WithCause adds cause to error", func(t *testing.T) {
		cause := errors.New("original error")
		err := New(ErrCodeInternal, "Something went wrong").WithCause(cause)
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("WithDetails adds details to error", func(t *testing.T) {
		details := map[string]string{"choiceId": "see_more"}
		err := New(ErrCodeStaleChoice, "Stale choice").WithDetails(details)
		assert.Equal(t, details, err.Details)
	})
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedCode ErrorCode
	}{
		{"DetectionFailed", func() *AppError { return DetectionFailed(cause) }, ErrCodeDetectionFailed},
		{"ClassificationFailed", func() *AppError { return ClassificationFailed(cause) }, ErrCodeClassificationFailed},
		{"ExternalTimeout", func() *AppError { return ExternalTimeout("classifier", cause) }, ErrCodeExternalTimeout},
		{"SessionStoreUnavailable", func() *AppError { return SessionStoreUnavailable(cause) }, ErrCodeSessionStoreUnavailable},
		{"SessionExpired", func() *AppError { return SessionExpired() }, ErrCodeSessionExpired},
		{"StaleChoice", func() *AppError { return StaleChoice("confirm") }, ErrCodeStaleChoice},
		{"NoCandidates", func() *AppError { return NoCandidates() }, ErrCodeNoCandidates},
		{"Database", func() *AppError { return Database(cause) }, ErrCodeDatabase},
		{"ValidationError", func() *AppError { return ValidationError("test") }, ErrCodeValidation},
		{"InvalidInput", func() *AppError { return InvalidInput("salonId", "required") }, ErrCodeInvalidInput},
		{"TemplateMissing", func() *AppError { return TemplateMissing("greeting", "fr") }, ErrCodeTemplateMissing},
		{"Internal", func() *AppError { return Internal("test") }, ErrCodeInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.constructor()
			assert.Equal(t, tc.expectedCode, err.Code)
			assert.NotEmpty(t, err.Message)
		})
	}
}

func TestGetCode(t *testing.T) {
	t.Run("returns code for AppError", func(t *testing.T) {
		assert.Equal(t, ErrCodeNoCandidates, GetCode(NoCandidates()))
	})

	t.Run("returns internal for plain error", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternal, GetCode(errors.New("plain")))
	})

	t.Run("unwraps nested AppError", func(t *testing.T) {
		wrapped := Wrap(ErrCodeDatabase, "outer", SessionExpired())
		assert.Equal(t, ErrCodeDatabase, GetCode(wrapped))
		assert.True(t, IsAppError(wrapped))
	})
}
