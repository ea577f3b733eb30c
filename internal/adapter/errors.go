package adapter

import "errors"

// Sentinel errors returned by the backend adapter. Non-2xx responses are
// mapped onto them by mapHTTPError, so callers can match with [errors.Is]
// without knowing the transport.
var (
	// ErrBackendRejected means the backend refused the request as invalid
	// (400, 409 or 422).
	ErrBackendRejected = errors.New("backend rejected request")
	// ErrBackendNotFound is returned for 404 on operations that do not model
	// absence as a valid result.
	ErrBackendNotFound = errors.New("backend resource not found")
	// ErrBackendUnauthorized means the gateway's channel is not allowed to
	// call the backend (401 or 403).
	ErrBackendUnauthorized = errors.New("backend refused channel")
	// ErrBackendUnavailable covers transport failures and 502/503/504.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrBackendFailure covers every other non-2xx status.
	ErrBackendFailure = errors.New("backend failure")
	// ErrMalformedResponse means a 2xx body could not be decoded.
	ErrMalformedResponse = errors.New("malformed backend response")
)

// ErrNoMonitorProvided is returned by [NewHTTPBackendAdapter] when no
// service config monitor is given.
var ErrNoMonitorProvided = errors.New("no service config monitor provided")
