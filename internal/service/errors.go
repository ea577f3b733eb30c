package service

import "errors"

var (
	// ErrNoBackendProvided is returned by NewServices when it is given a nil
	// backend.
	ErrNoBackendProvided = errors.New("no backend provided")
)
