// Package storage provides the key-value medium the commerce store persists
// its state to. Values are opaque byte slices; callers own the encoding.
package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a flat key-value store with last-writer-wins semantics.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
