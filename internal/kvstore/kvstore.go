// Package kvstore provides a durable string key-value store behind a small
// interface, with in-memory, file-backed, and Redis implementations.
package kvstore

import "context"

// Store is a durable key-value store. Get reports whether the key exists; a
// missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
