package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mribera/penjat3d/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidLetter   = "INVALID_LETTER"
	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodeGridNotFound    = "GRID_NOT_FOUND"
	CodeNotPlaying      = "NOT_PLAYING"
	CodeContentFailed   = "CONTENT_FAILED"
	CodeInternalError   = "INTERNAL_ERROR"
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

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrGridNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGridNotFound, "Tile grid not found"}}
	case errors.Is(err, model.ErrSessionNotPlaying):
		return &httpError{http.StatusConflict, APIError{CodeNotPlaying, "Session is not accepting guesses"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter is not in the game alphabet"}}
	case errors.Is(err, model.ErrContentFailed), errors.Is(err, model.ErrEmptyWord):
		return &httpError{http.StatusBadGateway, APIError{CodeContentFailed, "Content generation failed"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
