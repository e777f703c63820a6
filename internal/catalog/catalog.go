package catalog

import "github.com/modenord/lookcart/internal/domain"

// Catalog is the read-only resolution surface the cart core consumes.
// Implementations are synchronous and side-effect free.
type Catalog interface {
	// ProductByID resolves a product id to its full entity.
	ProductByID(id string) (domain.Product, bool)

	// LookByID resolves a look id to its full entity.
	LookByID(id string) (domain.StyleLook, bool)

	// LooksForProducts returns every look containing at least one of the
	// given product ids, in catalog order.
	LooksForProducts(ids []string) []domain.StyleLook

	// CompleteLooksForProduct returns the looks featuring the given
	// product, used to drive "Complete the Look" placements.
	CompleteLooksForProduct(id string) []domain.StyleLook
}
