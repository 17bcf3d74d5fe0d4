package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("operation rejected")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedResponse is returned when a 2xx body is not a successful
	// envelope.
	ErrUnexpectedResponse = errors.New("unexpected server response")

	errEmptyAddress = errors.New("empty server address")
)
