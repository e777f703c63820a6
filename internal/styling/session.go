package styling

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/cart"
	"github.com/modenord/lookcart/internal/catalog"
	"github.com/modenord/lookcart/internal/domain"
)

// ErrInvalidCategory is returned when an override targets a category
// outside the closed set.
var ErrInvalidCategory = errors.New("unknown slot category")

// Session holds the look currently open for customization and the
// per-category product overrides chosen so far. Overrides survive
// re-opening the same or a different look; they are cleared only by Reset
// or by an attempted checkout, which ends the customization session
// whether or not it succeeded.
type Session struct {
	mu          sync.Mutex
	catalog     catalog.Catalog
	cart        *cart.Store
	logger      *zap.Logger
	currentLook *domain.StyleLook
	overrides   map[domain.Category]string
}

// NewSession creates an idle customization session bound to one cart.
func NewSession(cat catalog.Catalog, store *cart.Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		catalog:   cat,
		cart:      store,
		logger:    logger,
		overrides: make(map[domain.Category]string),
	}
}

// SetCurrentLook opens a look for customization, replacing any previous
// one. Existing overrides are deliberately kept.
func (s *Session) SetCurrentLook(look domain.StyleLook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentLook = &look
}

// CurrentLook returns the look open for customization, if any.
func (s *Session) CurrentLook() (domain.StyleLook, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentLook == nil {
		return domain.StyleLook{}, false
	}
	return *s.currentLook, true
}

// CustomizeProduct sets or overwrites the override for a category.
func (s *Session) CustomizeProduct(category domain.Category, productID string) error {
	if !category.Valid() {
		return ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[category] = productID
	return nil
}

// Reset clears all overrides and returns the session to idle.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Overrides returns a copy of the current category overrides.
func (s *Session) Overrides() map[domain.Category]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides := make(map[domain.Category]string, len(s.overrides))
	for category, id := range s.overrides {
		overrides[category] = id
	}
	return overrides
}

// EffectiveProductID resolves the product filling a slot: the category
// override when one is set, the slot's default otherwise.
func (s *Session) EffectiveProductID(slot domain.LookSlot) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveProductIDLocked(slot)
}

// ResolveProducts resolves every slot of a look to its effective product,
// skipping slots whose product the catalog cannot supply. The result feeds
// bundle pricing and size recommendation.
func (s *Session) ResolveProducts(look domain.StyleLook) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]domain.Product, 0, len(look.Products))
	for _, slot := range look.Products {
		id := s.effectiveProductIDLocked(slot)
		product, ok := s.catalog.ProductByID(id)
		if !ok {
			continue
		}
		products = append(products, product)
	}
	return products
}

func (s *Session) effectiveProductIDLocked(slot domain.LookSlot) string {
	if id, ok := s.overrides[slot.Category]; ok {
		return id
	}
	return slot.ProductID
}

func (s *Session) resetLocked() {
	s.currentLook = nil
	s.overrides = make(map[domain.Category]string)
}
