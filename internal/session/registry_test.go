package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/catalog"
	"github.com/modenord/lookcart/internal/storage"
)

func setupRegistry(t *testing.T) *Registry {
	t.Helper()
	adapter := storage.NewAdapter(storage.NewMemoryStore(), zap.NewNop())
	return NewRegistry(adapter, catalog.NewStatic(nil, nil), zap.NewNop())
}

func TestRegistry_SameSessionSameEntry(t *testing.T) {
	registry := setupRegistry(t)

	first := registry.Session("s1")
	second := registry.Session("s1")

	assert.Same(t, first, second)
	assert.Same(t, first.Cart, second.Cart)
}

func TestRegistry_DistinctSessionsAreIsolated(t *testing.T) {
	registry := setupRegistry(t)

	a := registry.Session("s1")
	b := registry.Session("s2")

	require.NotSame(t, a, b)
	assert.NotSame(t, a.Cart, b.Cart)
}

func TestRegistry_ConcurrentFirstTouch(t *testing.T) {
	registry := setupRegistry(t)

	const workers = 16
	entries := make([]*Entry, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entries[i] = registry.Session("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, entries[0], entries[i])
	}
}

func TestRegistry_EntryIsHydrated(t *testing.T) {
	registry := setupRegistry(t)

	entry := registry.Session("s1")
	assert.True(t, entry.Cart.Hydrated())
}
