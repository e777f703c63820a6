package styling

import (
	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/domain"
)

// SlotStatus classifies the outcome of one slot during checkout.
type SlotStatus string

const (
	SlotAdded           SlotStatus = "added"
	SlotProductNotFound SlotStatus = "product_not_found"
	SlotNoSizeSelected  SlotStatus = "no_size_selected"
	SlotSizeOutOfStock  SlotStatus = "size_out_of_stock"
)

// SlotOutcome records what happened to one slot of the look.
type SlotOutcome struct {
	Category  domain.Category `json:"category"`
	ProductID string          `json:"product_id"`
	Status    SlotStatus      `json:"status"`
}

// CheckoutResult is the aggregate outcome of adding a look to the cart.
// Success means at least one slot landed; Count is the number of slots
// that did. Slots carries the per-slot breakdown for error messaging.
type CheckoutResult struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Slots   []SlotOutcome `json:"slots"`
}

// AddCompleteLookToCart adds an entire look to the cart as one logical
// operation. Each slot resolves through the override rule, then through
// the catalog, then against the caller's size selections; a slot whose
// product is missing, whose size was not supplied, or whose size is not in
// stock is skipped without failing the rest. The customization session
// ends unconditionally, partial and failed attempts included.
func (s *Session) AddCompleteLookToCart(look domain.StyleLook, sizeSelections map[string]string) CheckoutResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := CheckoutResult{
		Slots: make([]SlotOutcome, 0, len(look.Products)),
	}

	for _, slot := range look.Products {
		id := s.effectiveProductIDLocked(slot)
		outcome := SlotOutcome{Category: slot.Category, ProductID: id}

		product, ok := s.catalog.ProductByID(id)
		if !ok {
			outcome.Status = SlotProductNotFound
			result.Slots = append(result.Slots, outcome)
			continue
		}

		size, ok := sizeSelections[id]
		if !ok || size == "" {
			outcome.Status = SlotNoSizeSelected
			result.Slots = append(result.Slots, outcome)
			continue
		}

		if !product.SizeInStock(size) {
			outcome.Status = SlotSizeOutOfStock
			result.Slots = append(result.Slots, outcome)
			continue
		}

		s.cart.AddItem(product, size)
		outcome.Status = SlotAdded
		result.Slots = append(result.Slots, outcome)
		result.Count++
	}

	// The session ends here no matter what happened above.
	s.resetLocked()

	result.Success = result.Count > 0
	if !result.Success {
		s.logger.Debug("no slot of the look could be added",
			zap.String("look_id", look.ID))
	}
	return result
}
