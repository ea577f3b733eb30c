// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ServiceConfigLoader produces a fresh [ServiceConfig], e.g. by re-reading
// the environment and the JSON file.
type ServiceConfigLoader func() (*ServiceConfig, error)

// Monitor holds the current backend settings and lets them be swapped at
// runtime. Reads are lock-free; every caller gets a consistent snapshot.
type Monitor struct {
	current atomic.Pointer[ServiceConfig]
	load    ServiceConfigLoader

	// setMu serializes Set so listeners see values in store order.
	setMu sync.Mutex

	mu        sync.Mutex
	listeners []func(ServiceConfig)
}

// NewMonitor creates a Monitor seeded with initial. load is used by
// [Monitor.Reload]; it may be nil when reloading is not needed.
func NewMonitor(initial ServiceConfig, load ServiceConfigLoader) *Monitor {
	m := &Monitor{load: load}
	m.current.Store(&initial)
	return m
}

// CurrentValue returns a snapshot of the current service settings.
func (m *Monitor) CurrentValue() ServiceConfig {
	return *m.current.Load()
}

// OnChange registers fn to be called with the new settings after every
// successful [Monitor.Set] or [Monitor.Reload].
func (m *Monitor) OnChange(fn func(ServiceConfig)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, fn)
}

// Set validates cfg, stores it and notifies listeners. Concurrent calls are
// applied one at a time, so the last notification carries the stored value.
// Listeners must not call Set.
func (m *Monitor) Set(cfg ServiceConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	m.setMu.Lock()
	defer m.setMu.Unlock()

	m.mu.Lock()
	m.current.Store(&cfg)
	listeners := make([]func(ServiceConfig), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(cfg)
	}

	return nil
}

// Reload calls the loader and applies its result with [Monitor.Set].
// The current value is kept when loading or validation fails.
func (m *Monitor) Reload() error {
	if m.load == nil {
		return ErrReloadNotSupported
	}

	cfg, err := m.load()
	if err != nil {
		return fmt.Errorf("error reloading service config: %w", err)
	}

	return m.Set(*cfg)
}
