package adapter

import "errors"

var (
	// ErrRemoteUnavailable covers every failure where the backend never
	// judged the payload: timeouts, refused connections, DNS failures and
	// 5xx responses. The entry that hit it keeps its retry budget.
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrUnauthorized is returned for 401 and 403 responses: the device
	// token is missing, expired or not allowed to write for this site.
	ErrUnauthorized = errors.New("device unauthorized")

	// ErrNotFound is returned for 404 responses, typically an attachment
	// submitted under a record id the backend does not know.
	ErrNotFound = errors.New("remote resource not found")

	// ErrConflict is returned for 409 responses.
	ErrConflict = errors.New("remote conflict")

	// ErrValidation is returned for 400 and 422 responses: the backend
	// understood the payload and rejected its content.
	ErrValidation = errors.New("payload rejected by remote validation")
)
