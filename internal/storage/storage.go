// Package storage implements the key-value record store backing the
// ledger repository. Every collection is a single JSON blob under a
// fixed key, overwritten as a whole on save.
package storage

import "errors"

// ErrNotFound is returned when no blob exists under the requested key.
var ErrNotFound = errors.New("no value stored for this key")

// Store is a key-value blob store.
//
// Writes are unconditional overwrites. There is no compare-and-swap;
// callers that need read-modify-write atomicity have to serialize
// themselves, see ledger.Repository.
type Store interface {
	// Get returns the blob stored under key or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set overwrites the blob stored under key.
	Set(key string, value []byte) error

	// Has reports whether a blob exists under key.
	Has(key string) (bool, error)
}
