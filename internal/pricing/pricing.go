package pricing

import (
	"math"

	"github.com/modenord/lookcart/internal/domain"
)

// Result is the derived price breakdown for a bundle, in minor currency
// units. It is computed fresh on every request and never stored.
// Total = Subtotal - Discount and Savings = Discount always hold.
type Result struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`
	Savings  int64 `json:"savings"`
}

// PriceBundle prices a look against the products actually being purchased:
// the required slots plus whichever optional slots the caller kept.
// Individual products' original-vs-sale prices do not participate; those
// are display-only outside bundles.
func PriceBundle(look domain.StyleLook, products []domain.Product) Result {
	var subtotal int64
	for _, p := range products {
		subtotal += p.Price
	}

	var discount int64
	if look.BundleDiscount != nil {
		discount = int64(math.Round(float64(subtotal) * *look.BundleDiscount / 100))
	}

	total := subtotal - discount
	return Result{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Savings:  subtotal - total,
	}
}
