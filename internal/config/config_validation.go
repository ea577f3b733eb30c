// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return cfg.Service.validate()
}

func (cfg *ServiceConfig) validate() error {
	if cfg.BackendURL == "" {
		return fmt.Errorf("%w: empty backend url", ErrInvalidServiceConfigs)
	}

	u, err := url.Parse(cfg.BackendURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServiceConfigs, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: backend url must include scheme and host", ErrInvalidServiceConfigs)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: backend request timeout must be positive", ErrInvalidServiceConfigs)
	}

	return nil
}
