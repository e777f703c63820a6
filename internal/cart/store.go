package cart

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/domain"
	"github.com/modenord/lookcart/internal/storage"
)

// MaxQuantity is the per-line-item quantity ceiling.
const MaxQuantity = 10

// Store is the authoritative line-item collection for one session. At most
// one item exists per (product id, size) pair; insertion order is the only
// meaningful order. Every mutation is persisted best effort through the
// adapter, and the in-memory collection stays authoritative whether or not
// the write lands.
type Store struct {
	mu       sync.RWMutex
	adapter  *storage.Adapter
	logger   *zap.Logger
	key      string
	items    []domain.CartItem
	hydrated bool
}

// NewStore creates a store and rehydrates it from the adapter. A corrupted
// or missing persisted cart always resolves to a valid empty cart; the
// constructor never fails.
func NewStore(adapter *storage.Adapter, logger *zap.Logger, key string) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		adapter: adapter,
		logger:  logger,
		key:     key,
	}
	s.hydrate()
	return s
}

// hydrate loads and validates previously persisted items. Items are
// decoded individually so one malformed entry does not take down the rest
// of the collection. Hydration is marked complete on every path.
func (s *Store) hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.hydrated = true }()

	raw, ok := s.adapter.Read(s.key)
	if !ok {
		return
	}

	var envelope struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		s.logger.Warn("persisted cart has unexpected shape, starting empty",
			zap.String("key", s.key), zap.Error(err))
		s.adapter.Erase(s.key)
		return
	}

	items := make([]domain.CartItem, 0, len(envelope.Items))
	for _, entry := range envelope.Items {
		var item domain.CartItem
		if err := json.Unmarshal(entry, &item); err != nil {
			s.logger.Debug("dropping undecodable persisted cart item", zap.Error(err))
			continue
		}
		if item.ID == "" || item.Product.ID == "" || item.Quantity <= 0 {
			s.logger.Debug("dropping malformed persisted cart item",
				zap.String("item_id", item.ID))
			continue
		}
		items = append(items, item)
	}
	s.items = items
}

// Hydrated reports whether the initial load-and-validate pass has run.
// The store is fully functional before that; consumers use this only to
// suppress premature empty-cart rendering.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// AddItem merges into an existing line item with the same (product id,
// size) pair, or appends a new one with quantity 1. Incrementing past
// MaxQuantity is a silent no-op, not an error. Returns the resulting item.
func (s *Store) AddItem(product domain.Product, size string) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID && s.items[i].SelectedSize == size {
			if s.items[i].Quantity < MaxQuantity {
				s.items[i].Quantity++
			}
			s.persistLocked()
			return s.items[i]
		}
	}

	item := domain.CartItem{
		ID:           uuid.New().String(),
		Product:      product,
		Quantity:     1,
		SelectedSize: size,
		AddedAt:      time.Now(),
	}
	s.items = append(s.items, item)
	s.persistLocked()
	return item
}

// RemoveItem deletes the matching line item; no-op when absent.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// UpdateQuantity sets the item's quantity. A quantity of zero or below
// removes the item entirely; anything above MaxQuantity is clamped to it.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persistLocked()
			return
		}
	}
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked()
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total is the sum of price x quantity over all items, in minor
// currency units.
func (s *Store) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, item := range s.items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, not the count of distinct lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) removeLocked(id string) {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) persistLocked() {
	payload, err := json.Marshal(domain.PersistedCart{Items: s.items})
	if err != nil {
		s.logger.Warn("marshal cart failed, skipping persist", zap.Error(err))
		return
	}
	s.adapter.Write(s.key, string(payload))
}
