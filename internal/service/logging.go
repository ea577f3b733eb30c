package service

import (
	"context"
	"time"

	"github.com/MKhiriev/bbp-gateway/internal/logger"
)

// callResult describes how a backend call ended, for logging only.
type callResult int

const (
	callSucceeded callResult = iota
	callAbsent
	callFailed
)

func (r callResult) String() string {
	switch r {
	case callAbsent:
		return "absent"
	case callFailed:
		return "failed"
	default:
		return "ok"
	}
}

func resultOf(err error, absent bool) callResult {
	switch {
	case err != nil:
		return callFailed
	case absent:
		return callAbsent
	default:
		return callSucceeded
	}
}

// logBackendCall writes one debug line per backend call, with the cause
// attached on failure. Failures are reported at error level by the caller
// that decides the outcome.
func logBackendCall(ctx context.Context, fallback *logger.Logger, operation string, start time.Time, err error, absent bool) {
	result := resultOf(err, absent)

	logger.FromContextOr(ctx, fallback).Debug().
		Err(err).
		Str("backend_operation", operation).
		Stringer("result", result).
		Dur("duration", time.Since(start)).
		Msg("backend call finished")
}
