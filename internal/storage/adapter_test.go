package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingKV simulates a hostile substrate: every operation fails.
type failingKV struct {
	err error
}

func (f *failingKV) Get(context.Context, string) (string, error) { return "", f.err }
func (f *failingKV) Set(context.Context, string, string) error   { return f.err }
func (f *failingKV) Del(context.Context, string) error           { return f.err }

func setupAdapter(t *testing.T) (*Adapter, *MemoryStore) {
	t.Helper()
	kv := NewMemoryStore()
	return NewAdapter(kv, zap.NewNop()), kv
}

func TestAdapter_ReadMissingKey(t *testing.T) {
	adapter, _ := setupAdapter(t)

	value, ok := adapter.Read("absent")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestAdapter_WriteThenRead(t *testing.T) {
	adapter, _ := setupAdapter(t)

	adapter.Write("cart:1", `{"items":[]}`)

	value, ok := adapter.Read("cart:1")
	require.True(t, ok)
	assert.Equal(t, `{"items":[]}`, value)
}

func TestAdapter_ReadCorruptedValuePurgesKey(t *testing.T) {
	adapter, kv := setupAdapter(t)
	require.NoError(t, kv.Set(context.Background(), "cart:1", "{corrupt"))

	value, ok := adapter.Read("cart:1")
	assert.False(t, ok)
	assert.Empty(t, value)

	// The corruption must not recur on subsequent reads.
	_, err := kv.Get(context.Background(), "cart:1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestAdapter_WriteRejectsMalformedPayload(t *testing.T) {
	adapter, kv := setupAdapter(t)

	adapter.Write("cart:1", "not json")

	_, err := kv.Get(context.Background(), "cart:1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestAdapter_NilSubstrate(t *testing.T) {
	adapter := NewAdapter(nil, zap.NewNop())

	// None of these may panic or error; reads resolve to absent.
	adapter.Write("cart:1", `{"items":[]}`)
	adapter.Erase("cart:1")

	value, ok := adapter.Read("cart:1")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestAdapter_SubstrateFailuresAreSwallowed(t *testing.T) {
	adapter := NewAdapter(&failingKV{err: errors.New("storage exploded")}, zap.NewNop())

	adapter.Write("cart:1", `{"items":[]}`)
	adapter.Erase("cart:1")

	value, ok := adapter.Read("cart:1")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestAdapter_EraseRemovesValue(t *testing.T) {
	adapter, _ := setupAdapter(t)
	adapter.Write("cart:1", `{"items":[]}`)

	adapter.Erase("cart:1")

	_, ok := adapter.Read("cart:1")
	assert.False(t, ok)
}
