package gateway

import "errors"

// ErrNoServicesProvided is returned by [New] when services are nil or
// incomplete.
var ErrNoServicesProvided = errors.New("no backend services provided")
