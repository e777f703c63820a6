package domain

import "time"

// CartItem is a single cart line. Identity for merging is the pair
// (Product.ID, SelectedSize); ID is an opaque handle for removal and
// quantity updates.
type CartItem struct {
	ID           string    `json:"id"`
	Product      Product   `json:"product"`
	Quantity     int       `json:"quantity"`
	SelectedSize string    `json:"selected_size"`
	AddedAt      time.Time `json:"added_at"`
}

// PersistedCart is the envelope written to the persistence substrate.
type PersistedCart struct {
	Items []CartItem `json:"items"`
}
