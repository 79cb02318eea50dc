// Package storage provides the flat key-value persistence surface
// described by SPEC_FULL.md §8: set/get/delete/flush over JSON-valued
// keys, linearisable per key. Keys are namespaced by the caller
// ("user:<token>", "map:<token>"); this package knows nothing about that
// convention, only about bytes in and bytes out.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when key does not exist. Callers treat
// it as NotFound per SPEC_FULL.md §9: recovered locally as "start new
// board", never propagated as a hard failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is the persistence contract every backend implements.
type Store interface {
	// Set persists value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Flush removes every key, for every token. GET /reset?wipe does not
	// use it; it deletes only that token's keys.
	Flush(ctx context.Context) error
}
