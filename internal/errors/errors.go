package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrContentNotFound is returned when a content item is not found.
	ErrContentNotFound = errors.New("content not found")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("a user with this username or email already exists")
	// ErrInvalidCredentials is returned when login credentials are wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotOwner is returned when a user mutates a resource they do not own.
	ErrNotOwner = errors.New("you cannot modify another user's resource")
	// ErrUnsupportedMediaType is returned when an upload is not an allowed
	// image or video type.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrInvalidRating is returned when a rating value is outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
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

// MapErrorToHTTP maps domain errors to HTTP errors.
// Ownership denials intentionally map to 401, not 403, matching the
// historical API contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrContentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONTENT_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_OWNER")
	case errors.Is(err, ErrUnsupportedMediaType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNSUPPORTED_MEDIA_TYPE")
	case errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATING")
	default:
		// Store failures surface with their message, once, no retry.
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
