package sizing

import "github.com/modenord/lookcart/internal/domain"

// Recommend suggests one default, currently in-stock size per product to
// pre-populate a size picker. The first in-stock size in catalog order
// wins. Products with no in-stock size are absent from the result; the
// checkout transaction then skips them as unresolvable. Advisory only,
// callers may override any entry.
func Recommend(products []domain.Product) map[string]string {
	recommendations := make(map[string]string, len(products))
	for _, p := range products {
		for _, s := range p.Sizes {
			if s.InStock {
				recommendations[p.ID] = s.Label
				break
			}
		}
	}
	return recommendations
}
