// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gateway handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies for non-success outcomes. Backend error details are never
// exposed to callers; they only reach the logs.
package app

const (
	// MsgInvalidDataProvided is returned when the request body is not valid
	// JSON or does not match the expected shape.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgRequestTooLarge is returned when the request body exceeds the
	// accepted size.
	MsgRequestTooLarge = "request body is too large"

	// MsgInternalServerError is returned when the backend call fails.
	MsgInternalServerError = "internal server error"

	// MsgBackendTimeout is returned when the backend did not answer before
	// the request deadline.
	MsgBackendTimeout = "backend did not respond in time"
)
