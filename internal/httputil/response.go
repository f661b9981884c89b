package httputil

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/salonflow/dialog-server-go/internal/errors"
)

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string              `json:"error"`
	Code    apperrors.ErrorCode `json:"code"`
	Details any                 `json:"details,omitempty"`
}

// WriteError writes an AppError as an HTTP response with appropriate status code
func WriteError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal("An unexpected error occurred")
	}

	response := ErrorResponse{
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	}

	WriteJSON(w, statusFromCode(appErr.Code), response)
}

// statusFromCode maps ErrorCode to HTTP status code
func statusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation,
		apperrors.ErrCodeInvalidInput:
		return http.StatusBadRequest

	case apperrors.ErrCodeSessionExpired,
		apperrors.ErrCodeStaleChoice:
		return http.StatusGone

	case apperrors.ErrCodeNoCandidates:
		return http.StatusNotFound

	case apperrors.ErrCodeDetectionFailed,
		apperrors.ErrCodeClassificationFailed:
		return http.StatusBadGateway

	case apperrors.ErrCodeExternalTimeout:
		return http.StatusGatewayTimeout

	case apperrors.ErrCodeSessionStoreUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
