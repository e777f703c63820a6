package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
)

const opTimeout = time.Second

// Adapter is the defensive wrapper every cart component persists through.
// It never fails to its caller: an unavailable substrate reads as absent
// and drops writes, a corrupted value is purged on first read, and write
// failures are logged and swallowed. In-memory state stays authoritative
// regardless of persistence outcome.
type Adapter struct {
	kv     KV
	logger *zap.Logger
}

// NewAdapter wraps a KV. A nil kv is valid and yields a purely in-memory
// session (the no-substrate execution context).
func NewAdapter(kv KV, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		kv:     kv,
		logger: logger,
	}
}

// Read returns the stored value for key, or ok=false when the key is
// absent, the substrate is unavailable, or the value is not well-formed
// JSON. A malformed value is proactively erased so the corruption does
// not recur on every subsequent read.
func (a *Adapter) Read(key string) (string, bool) {
	if a.kv == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	value, err := a.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			a.logger.Warn("storage read failed, treating as absent",
				zap.String("key", key), zap.Error(err))
		}
		return "", false
	}

	if !json.Valid([]byte(value)) {
		a.logger.Warn("corrupted persisted value, purging key",
			zap.String("key", key))
		a.Erase(key)
		return "", false
	}

	return value, true
}

// Write persists value under key, best effort. The value is validated as
// well-formed JSON before the substrate is touched; validation failures
// and substrate failures are both logged and swallowed.
func (a *Adapter) Write(key, value string) {
	if a.kv == nil {
		return
	}

	if !json.Valid([]byte(value)) {
		a.logger.Warn("refusing to persist malformed payload",
			zap.String("key", key))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := a.kv.Set(ctx, key, value); err != nil {
		a.logger.Warn("storage write failed, in-memory state remains authoritative",
			zap.String("key", key), zap.Error(err))
	}
}

// Erase removes key, best effort.
func (a *Adapter) Erase(key string) {
	if a.kv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := a.kv.Del(ctx, key); err != nil {
		a.logger.Warn("storage erase failed",
			zap.String("key", key), zap.Error(err))
	}
}
