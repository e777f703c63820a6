package session

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/modenord/lookcart/internal/cart"
	"github.com/modenord/lookcart/internal/catalog"
	"github.com/modenord/lookcart/internal/storage"
	"github.com/modenord/lookcart/internal/styling"
)

// Entry bundles the per-session state: one cart store and one styling
// session bound to it.
type Entry struct {
	Cart    *cart.Store
	Styling *styling.Session
}

// Registry hands out session state, creating and hydrating a session's
// cart exactly once. Concurrent first requests for the same session
// collapse onto a single hydration via singleflight, so a corrupted
// persisted cart is read and repaired once rather than raced over.
type Registry struct {
	mu       sync.RWMutex
	adapter  *storage.Adapter
	catalog  catalog.Catalog
	logger   *zap.Logger
	sfg      singleflight.Group
	sessions map[string]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry(adapter *storage.Adapter, cat catalog.Catalog, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		adapter:  adapter,
		catalog:  cat,
		logger:   logger,
		sessions: make(map[string]*Entry),
	}
}

// Session returns the entry for a session id, creating it on first use.
func (r *Registry) Session(id string) *Entry {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return entry
	}

	v, _, _ := r.sfg.Do(id, func() (interface{}, error) {
		r.mu.RLock()
		entry, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			return entry, nil
		}

		store := cart.NewStore(r.adapter, r.logger, cartKey(id))
		entry = &Entry{
			Cart:    store,
			Styling: styling.NewSession(r.catalog, store, r.logger),
		}

		r.mu.Lock()
		r.sessions[id] = entry
		r.mu.Unlock()
		return entry, nil
	})

	return v.(*Entry)
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
