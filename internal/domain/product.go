package domain

// ProductSize is one purchasable size of a product. A size is selectable
// only while InStock is true; Quantity is advisory display data.
type ProductSize struct {
	Label    string `json:"label"`
	InStock  bool   `json:"in_stock"`
	Quantity int    `json:"quantity,omitempty"`
}

// Product is an immutable catalog value. Prices are integer minor currency
// units. The cart embeds a full snapshot of it so previously added items
// render without a catalog round trip.
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Price         int64         `json:"price"`
	OriginalPrice *int64        `json:"original_price,omitempty"`
	Sizes         []ProductSize `json:"sizes"`
	Images        []string      `json:"images,omitempty"`
	Category      Category      `json:"category"`
	InStock       bool          `json:"in_stock"`
	Tags          []string      `json:"tags,omitempty"`
	SKU           string        `json:"sku,omitempty"`
}

// HasSize reports whether label is one of the product's size labels,
// in stock or not.
func (p Product) HasSize(label string) bool {
	for _, s := range p.Sizes {
		if s.Label == label {
			return true
		}
	}
	return false
}

// SizeInStock reports whether label exists on the product and is in stock.
func (p Product) SizeInStock(label string) bool {
	for _, s := range p.Sizes {
		if s.Label == label {
			return s.InStock
		}
	}
	return false
}
