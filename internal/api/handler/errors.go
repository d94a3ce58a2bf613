package handler

import (
	"net/http"

	"github.com/pmorrell/blockfall/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeForbidden          = apierr.CodeForbidden
	CodePlayerNotFound     = apierr.CodePlayerNotFound
	CodeProfileNotFound    = apierr.CodeProfileNotFound
	CodeSessionNotFound    = apierr.CodeSessionNotFound
	CodeSessionFinished    = apierr.CodeSessionFinished
	CodeSummaryNotFound    = apierr.CodeSummaryNotFound
	CodeUsernameExists     = apierr.CodeUsernameExists
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewForbiddenError creates an error for acting on another player's session
func NewForbiddenError() error {
	return apierr.NewForbiddenError()
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
