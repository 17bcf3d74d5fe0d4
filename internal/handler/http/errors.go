// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport itself. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// the route's request model.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzipBody is returned when a request declares gzip encoding
	// but its body is not a gzip stream.
	ErrInvalidGzipBody = errors.New("invalid gzip request body")

	// ErrInvalidAuthorizationHeader is logged when the "Authorization" header
	// is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
