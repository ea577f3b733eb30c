// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Option holds either a value of type T or nothing.
//
// It is used at the gateway boundary to tell "input was not provided" apart
// from a zero value, and by lookup-style backend operations to report that
// no such resource exists without treating it as a failure.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v into a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionalString returns None for an empty string and Some(s) otherwise.
// Identifiers are opaque, so a whitespace-only s is present and kept as is.
func OptionalString(s string) Option[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// MustGet returns the wrapped value and panics when it is absent.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("models: MustGet called on empty Option")
	}
	return o.value
}

// MarshalJSON encodes None as null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null into None and anything else into Some.
func (o *Option[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
