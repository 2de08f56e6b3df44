package backend

import "errors"

var (
	// ErrNoSession means the token is missing, expired, or rejected.
	ErrNoSession = errors.New("no authenticated session")
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("row not found")
	// ErrRejected means the data API refused the request (validation).
	ErrRejected = errors.New("request rejected by data API")
	// ErrUnavailable means the data API could not be reached.
	ErrUnavailable = errors.New("data API unavailable")
)
