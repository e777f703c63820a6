package domain

// LookSlot is one category position within a look, filled by a default
// product or a customized substitute.
type LookSlot struct {
	ProductID  string   `json:"product_id"`
	Category   Category `json:"category"`
	IsOptional bool     `json:"is_optional"`
}

// StyleLook is a curated bundle of products sold together, optionally at a
// percentage discount off their summed price. Read-only catalog data.
type StyleLook struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Image          string     `json:"image,omitempty"`
	Products       []LookSlot `json:"products"`
	TotalPrice     int64      `json:"total_price"`
	BundleDiscount *float64   `json:"bundle_discount,omitempty"`
}
