package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/modenord/lookcart/internal/domain"
)

// Static is an in-memory Catalog seeded from fixed data. Looks keep their
// seed order; lookups are by product id.
type Static struct {
	products map[string]domain.Product
	looks    []domain.StyleLook
}

// NewStatic builds a catalog from already-resolved entities.
func NewStatic(products []domain.Product, looks []domain.StyleLook) *Static {
	index := make(map[string]domain.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return &Static{
		products: index,
		looks:    looks,
	}
}

func (c *Static) ProductByID(id string) (domain.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

func (c *Static) LookByID(id string) (domain.StyleLook, bool) {
	for _, look := range c.looks {
		if look.ID == id {
			return look, true
		}
	}
	return domain.StyleLook{}, false
}

func (c *Static) LooksForProducts(ids []string) []domain.StyleLook {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var matches []domain.StyleLook
	for _, look := range c.looks {
		for _, slot := range look.Products {
			if _, ok := wanted[slot.ProductID]; ok {
				matches = append(matches, look)
				break
			}
		}
	}
	return matches
}

func (c *Static) CompleteLooksForProduct(id string) []domain.StyleLook {
	return c.LooksForProducts([]string{id})
}

type seedSize struct {
	Label    string `yaml:"label"`
	InStock  bool   `yaml:"in_stock"`
	Quantity int    `yaml:"quantity"`
}

type seedProduct struct {
	ID            string     `yaml:"id"`
	Name          string     `yaml:"name"`
	Price         int64      `yaml:"price"`
	OriginalPrice *int64     `yaml:"original_price"`
	Sizes         []seedSize `yaml:"sizes"`
	Images        []string   `yaml:"images"`
	Category      string     `yaml:"category"`
	InStock       bool       `yaml:"in_stock"`
	Tags          []string   `yaml:"tags"`
	SKU           string     `yaml:"sku"`
}

type seedSlot struct {
	ProductID  string `yaml:"product_id"`
	Category   string `yaml:"category"`
	IsOptional bool   `yaml:"is_optional"`
}

type seedLook struct {
	ID             string     `yaml:"id"`
	Name           string     `yaml:"name"`
	Description    string     `yaml:"description"`
	Image          string     `yaml:"image"`
	Products       []seedSlot `yaml:"products"`
	TotalPrice     int64      `yaml:"total_price"`
	BundleDiscount *float64   `yaml:"bundle_discount"`
}

type seedFile struct {
	Products []seedProduct `yaml:"products"`
	Looks    []seedLook    `yaml:"looks"`
}

// LoadStatic reads a YAML seed file and builds a catalog from it. Seed
// data is validated up front; a bad seed is a deployment error, not a
// runtime condition, so this is the one place in the repo that fails loud.
func LoadStatic(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}

	products := make([]domain.Product, 0, len(seed.Products))
	seen := make(map[string]struct{}, len(seed.Products))
	for _, sp := range seed.Products {
		p, err := sp.toDomain()
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", sp.ID, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
		products = append(products, p)
	}

	looks := make([]domain.StyleLook, 0, len(seed.Looks))
	for _, sl := range seed.Looks {
		look, err := sl.toDomain()
		if err != nil {
			return nil, fmt.Errorf("look %q: %w", sl.ID, err)
		}
		looks = append(looks, look)
	}

	return NewStatic(products, looks), nil
}

func (sp seedProduct) toDomain() (domain.Product, error) {
	if sp.ID == "" {
		return domain.Product{}, fmt.Errorf("missing id")
	}
	if sp.Price < 0 {
		return domain.Product{}, fmt.Errorf("negative price %d", sp.Price)
	}
	category := domain.Category(sp.Category)
	if !category.Valid() {
		return domain.Product{}, fmt.Errorf("unknown category %q", sp.Category)
	}

	sizes := make([]domain.ProductSize, 0, len(sp.Sizes))
	for _, ss := range sp.Sizes {
		sizes = append(sizes, domain.ProductSize{
			Label:    ss.Label,
			InStock:  ss.InStock,
			Quantity: ss.Quantity,
		})
	}

	return domain.Product{
		ID:            sp.ID,
		Name:          sp.Name,
		Price:         sp.Price,
		OriginalPrice: sp.OriginalPrice,
		Sizes:         sizes,
		Images:        sp.Images,
		Category:      category,
		InStock:       sp.InStock,
		Tags:          sp.Tags,
		SKU:           sp.SKU,
	}, nil
}

func (sl seedLook) toDomain() (domain.StyleLook, error) {
	if sl.ID == "" {
		return domain.StyleLook{}, fmt.Errorf("missing id")
	}

	slots := make([]domain.LookSlot, 0, len(sl.Products))
	for _, ss := range sl.Products {
		category := domain.Category(ss.Category)
		if !category.Valid() {
			return domain.StyleLook{}, fmt.Errorf("slot %q: unknown category %q", ss.ProductID, ss.Category)
		}
		slots = append(slots, domain.LookSlot{
			ProductID:  ss.ProductID,
			Category:   category,
			IsOptional: ss.IsOptional,
		})
	}

	return domain.StyleLook{
		ID:             sl.ID,
		Name:           sl.Name,
		Description:    sl.Description,
		Image:          sl.Image,
		Products:       slots,
		TotalPrice:     sl.TotalPrice,
		BundleDiscount: sl.BundleDiscount,
	}, nil
}
