// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while decoding inbound requests. Callers can match
// against them with [errors.Is].
var (
	// ErrMalformedBody is returned when the request body is not valid JSON
	// for the expected request type.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is returned when the request body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)
