package gateway

import (
	"context"
	"errors"
	"net/http"
)

// Kind classifies how a dispatch ended.
type Kind int

const (
	// Success carries the backend value as payload.
	Success Kind = iota
	// ClientError means a required input was missing. The backend was not called.
	ClientError
	// NotFound means a lookup produced no result.
	NotFound
	// ServerError means the backend call failed.
	ServerError
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case ClientError:
		return "client_error"
	case NotFound:
		return "not_found"
	case ServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// Outcome is the transport-independent result of one dispatch.
type Outcome struct {
	Kind Kind

	// Payload is set only for Success and is the backend value, unmodified.
	Payload any

	// Err is set only for ServerError.
	Err error
}

// Timeout reports whether a ServerError was caused by the call running out
// of time or being cancelled.
func (o Outcome) Timeout() bool {
	return o.Kind == ServerError &&
		(errors.Is(o.Err, context.DeadlineExceeded) || errors.Is(o.Err, context.Canceled))
}

// Status maps the outcome onto an HTTP status code.
func (o Outcome) Status() int {
	switch o.Kind {
	case Success:
		return http.StatusOK
	case ClientError:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		if o.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusInternalServerError
	}
}

func success(payload any) Outcome {
	return Outcome{Kind: Success, Payload: payload}
}

func clientError() Outcome {
	return Outcome{Kind: ClientError}
}

func notFound() Outcome {
	return Outcome{Kind: NotFound}
}

func serverError(err error) Outcome {
	return Outcome{Kind: ServerError, Err: err}
}
