package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by a KV when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KV is the synchronous key/value substrate cart state is persisted to.
// Implementations are allowed to fail; the Adapter is the only component
// that talks to a KV directly and it absorbs every failure.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}
