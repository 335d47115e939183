package errors

import "net/http"

// HTTPError is an error that carries the status code to send to the client.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// StatusCode returns the HTTP status of err, or 400 when err is not an HTTPError.
func StatusCode(err error) int {
	if e, ok := err.(*HTTPError); ok && e.Code != 0 {
		return e.Code
	}
	return http.StatusBadRequest
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
)
