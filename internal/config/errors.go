package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing HTTP address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidServiceConfigs indicates invalid backend settings
	// (for example, missing backend URL or zero request timeout).
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
)

// ErrReloadNotSupported is returned by [Monitor.Reload] when the monitor was
// created without a loader.
var ErrReloadNotSupported = errors.New("config reload is not supported")

// ErrInvalidAddress is returned by [NetAddress.Set] for a malformed
// host:port value.
var ErrInvalidAddress = errors.New("invalid network address")
