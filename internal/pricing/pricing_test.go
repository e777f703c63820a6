package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modenord/lookcart/internal/domain"
)

func products(prices ...int64) []domain.Product {
	out := make([]domain.Product, len(prices))
	for i, p := range prices {
		out[i] = domain.Product{ID: "p", Price: p}
	}
	return out
}

func discountPct(pct float64) *float64 { return &pct }

func TestPriceBundle_TenPercentDiscount(t *testing.T) {
	look := domain.StyleLook{
		TotalPrice:     30700,
		BundleDiscount: discountPct(10),
	}

	result := PriceBundle(look, products(18900, 7900, 3900))

	assert.Equal(t, Result{
		Subtotal: 30700,
		Discount: 3070,
		Total:    27630,
		Savings:  3070,
	}, result)
}

func TestPriceBundle_NoDiscount(t *testing.T) {
	look := domain.StyleLook{TotalPrice: 12800}

	result := PriceBundle(look, products(4900, 7900))

	assert.Equal(t, Result{
		Subtotal: 12800,
		Discount: 0,
		Total:    12800,
		Savings:  0,
	}, result)
}

func TestPriceBundle_RoundsDiscount(t *testing.T) {
	look := domain.StyleLook{BundleDiscount: discountPct(15)}

	// 15% of 9999 = 1499.85, rounds to 1500.
	result := PriceBundle(look, products(9999))

	assert.Equal(t, int64(1500), result.Discount)
	assert.Equal(t, int64(8499), result.Total)
}

func TestPriceBundle_EmptyProducts(t *testing.T) {
	look := domain.StyleLook{BundleDiscount: discountPct(20)}

	result := PriceBundle(look, nil)

	assert.Equal(t, Result{}, result)
}

func TestPriceBundle_OriginalPricesDoNotParticipate(t *testing.T) {
	original := int64(22900)
	look := domain.StyleLook{BundleDiscount: discountPct(10)}
	bundle := []domain.Product{{ID: "p1", Price: 18900, OriginalPrice: &original}}

	result := PriceBundle(look, bundle)

	// No double counting against original_price: savings == discount.
	assert.Equal(t, int64(18900), result.Subtotal)
	assert.Equal(t, result.Discount, result.Savings)
}

func TestPriceBundle_InvariantsHold(t *testing.T) {
	cases := []struct {
		name   string
		prices []int64
		pct    *float64
	}{
		{"no discount", []int64{100, 250, 399}, nil},
		{"odd subtotal", []int64{333, 667}, discountPct(7.5)},
		{"full discount", []int64{5000}, discountPct(100)},
		{"single item", []int64{1}, discountPct(33)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			look := domain.StyleLook{BundleDiscount: tc.pct}
			result := PriceBundle(look, products(tc.prices...))

			assert.Equal(t, result.Subtotal-result.Discount, result.Total)
			assert.Equal(t, result.Subtotal-result.Total, result.Savings)
			assert.Equal(t, result.Discount, result.Savings)
		})
	}
}

func TestPriceBundle_Deterministic(t *testing.T) {
	look := domain.StyleLook{BundleDiscount: discountPct(12.5)}
	bundle := products(18900, 4900, 7900, 12900)

	first := PriceBundle(look, bundle)
	second := PriceBundle(look, bundle)

	assert.Equal(t, first, second)
}
