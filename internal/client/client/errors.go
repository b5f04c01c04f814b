package client

import "errors"

// Failure classes for API calls. Callers match with errors.Is:
//
//   - ErrUnauthorized: the server rejected the session (401). The session
//     must be cleared and the user sent back to login.
//   - ErrUnavailable: network fault or 5xx. Transient; the session is left
//     untouched and the user may retry.
//   - ErrNotFound: the resource does not exist (404).
//   - ErrValidation: the server rejected the request content (other 4xx).
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("invalid request")
)
