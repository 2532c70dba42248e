package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateKey is returned when a primary or unique key already exists.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrConstraintViolation is returned when a value is outside its allowed range.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrReferentialViolation is returned when a mark references a missing student or subject.
	ErrReferentialViolation = errors.New("referential violation")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthenticated is returned when no valid session is present.
	ErrUnauthenticated = errors.New("login required")
	// ErrForbidden is returned when the session role may not perform the action.
	ErrForbidden = errors.New("access denied")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

type kind struct {
	err    error
	name   string
	status int
	code   string
}

var kinds = []kind{
	{ErrDuplicateKey, "DuplicateKey", http.StatusConflict, "DUPLICATE_KEY"},
	{ErrConstraintViolation, "ConstraintViolation", http.StatusUnprocessableEntity, "CONSTRAINT_VIOLATION"},
	{ErrReferentialViolation, "ReferentialViolation", http.StatusUnprocessableEntity, "REFERENTIAL_VIOLATION"},
	{ErrNotFound, "NotFound", http.StatusNotFound, "NOT_FOUND"},
	{ErrInvalidCredentials, "InvalidCredentials", http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrUnauthenticated, "Unauthenticated", http.StatusUnauthorized, "UNAUTHENTICATED"},
	{ErrForbidden, "Forbidden", http.StatusForbidden, "FORBIDDEN"},
}

// KindOf returns the name of the error kind wrapped by err, or "Internal".
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}

// Is reports whether err wraps target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return NewHTTPError(k.status, err.Error(), k.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
