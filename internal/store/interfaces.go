// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local persistence: a small SQLite
// database holding key/value state that must survive restarts, such as the
// signed-in identity.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStateRepository is a string key/value store.
type LocalStateRepository interface {
	// Get returns the value stored under key, or [ErrLocalStateNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Put inserts or replaces the value stored under key.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
