package domain

// Category identifies one slot position within a look. The set is closed;
// overlay overrides are rejected for anything outside it.
type Category string

const (
	CategoryOuterwear   Category = "outerwear"
	CategoryTop         Category = "top"
	CategoryBottom      Category = "bottom"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryOuterwear,
	CategoryTop,
	CategoryBottom,
	CategoryShoes,
	CategoryAccessories,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryOuterwear, CategoryTop, CategoryBottom, CategoryShoes, CategoryAccessories:
		return true
	}
	return false
}

// String representation (for logging)
func (c Category) String() string {
	return string(c)
}
