package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/playhub/portal/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountLocked      = "ACCOUNT_LOCKED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeNoGameInProgress   = "NO_GAME_IN_PROGRESS"
	CodeGameOver           = "GAME_OVER"
	CodeRevealInProgress   = "REVEAL_IN_PROGRESS"
	CodeWrongLength        = "GUESS_WRONG_LENGTH"
	CodeWordNotAllowed     = "WORD_NOT_ALLOWED"
	CodeDuplicateGuess     = "DUPLICATE_GUESS"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeDictionaryMissing  = "DICTIONARY_NOT_LOADED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Field validation and lockout carry structured detail.
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, ve.Message, ve.Field}}
	}
	var le *model.LockedError
	if errors.As(err, &le) {
		return &httpError{http.StatusLocked, APIError{Code: CodeAccountLocked, Message: le.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeUserNotFound, Message: "User not found"}}
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{Code: CodeInvalidCredentials, Message: "Invalid username or password"}}
	case errors.Is(err, model.ErrNoSession):
		return &httpError{http.StatusUnauthorized, APIError{Code: CodeUnauthorized, Message: "Invalid or expired session"}}

	case errors.Is(err, model.ErrWrongLength):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeWrongLength, Message: "Guess must be five letters"}}
	case errors.Is(err, model.ErrInvalidWord):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeWordNotAllowed, Message: "Word is not in the accepted list"}}
	case errors.Is(err, model.ErrDuplicateGuess):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeDuplicateGuess, Message: "Word was already guessed"}}

	case errors.Is(err, model.ErrGameNotActive):
		return &httpError{http.StatusConflict, APIError{Code: CodeNoGameInProgress, Message: "No game in progress"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameOver, Message: "Game is already over"}}
	case errors.Is(err, model.ErrRevealing):
		return &httpError{http.StatusConflict, APIError{Code: CodeRevealInProgress, Message: "Reveal in progress"}}

	case errors.Is(err, model.ErrInvalidInput):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidInput, Message: "Invalid input"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeDictionaryMissing, Message: "Word list unavailable"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{Code: CodeUnauthorized, Message: "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
