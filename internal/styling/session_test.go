package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/cart"
	"github.com/modenord/lookcart/internal/catalog"
	"github.com/modenord/lookcart/internal/domain"
	"github.com/modenord/lookcart/internal/storage"
)

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "prod-coat", Name: "Coat", Price: 18900, Category: domain.CategoryOuterwear, InStock: true,
			Sizes: []domain.ProductSize{{Label: "S", InStock: true}, {Label: "M", InStock: true}},
		},
		{
			ID: "prod-top", Name: "Top", Price: 4900, Category: domain.CategoryTop, InStock: true,
			Sizes: []domain.ProductSize{{Label: "S", InStock: true}, {Label: "M", InStock: false}},
		},
		{
			ID: "prod-denim", Name: "Denim", Price: 7900, Category: domain.CategoryBottom, InStock: true,
			Sizes: []domain.ProductSize{{Label: "28", InStock: true}},
		},
		{
			ID: "prod-boots", Name: "Boots", Price: 12900, Category: domain.CategoryShoes, InStock: true,
			Sizes: []domain.ProductSize{{Label: "38", InStock: true}, {Label: "39", InStock: false}},
		},
		{
			ID: "prod-alt-top", Name: "Alt Top", Price: 5900, Category: domain.CategoryTop, InStock: true,
			Sizes: []domain.ProductSize{{Label: "S", InStock: true}},
		},
	}
}

func fixtureLook() domain.StyleLook {
	pct := 10.0
	return domain.StyleLook{
		ID:             "look-1",
		Name:           "City Layers",
		TotalPrice:     44600,
		BundleDiscount: &pct,
		Products: []domain.LookSlot{
			{ProductID: "prod-coat", Category: domain.CategoryOuterwear},
			{ProductID: "prod-top", Category: domain.CategoryTop},
			{ProductID: "prod-denim", Category: domain.CategoryBottom},
			{ProductID: "prod-boots", Category: domain.CategoryShoes},
		},
	}
}

func setupSession(t *testing.T) (*Session, *cart.Store) {
	t.Helper()
	cat := catalog.NewStatic(fixtureProducts(), []domain.StyleLook{fixtureLook()})
	adapter := storage.NewAdapter(storage.NewMemoryStore(), zap.NewNop())
	store := cart.NewStore(adapter, zap.NewNop(), "cart:styling-test")
	return NewSession(cat, store, zap.NewNop()), store
}

func TestSession_OverridePrecedence(t *testing.T) {
	session, _ := setupSession(t)
	session.SetCurrentLook(fixtureLook())

	require.NoError(t, session.CustomizeProduct(domain.CategoryTop, "prod-alt-top"))

	slot := domain.LookSlot{ProductID: "prod-top", Category: domain.CategoryTop}
	assert.Equal(t, "prod-alt-top", session.EffectiveProductID(slot))

	// Any look's top slot resolves to the override until reset.
	otherSlot := domain.LookSlot{ProductID: "prod-whatever", Category: domain.CategoryTop}
	assert.Equal(t, "prod-alt-top", session.EffectiveProductID(otherSlot))

	session.Reset()
	assert.Equal(t, "prod-top", session.EffectiveProductID(slot))
}

func TestSession_SetCurrentLookKeepsOverrides(t *testing.T) {
	session, _ := setupSession(t)
	require.NoError(t, session.CustomizeProduct(domain.CategoryTop, "prod-alt-top"))

	session.SetCurrentLook(fixtureLook())
	session.SetCurrentLook(domain.StyleLook{ID: "look-2"})

	overrides := session.Overrides()
	assert.Equal(t, "prod-alt-top", overrides[domain.CategoryTop])
}

func TestSession_CustomizeRejectsUnknownCategory(t *testing.T) {
	session, _ := setupSession(t)

	err := session.CustomizeProduct(domain.Category("hats"), "prod-alt-top")
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Empty(t, session.Overrides())
}

func TestSession_CustomizeOverwritesCategory(t *testing.T) {
	session, _ := setupSession(t)

	require.NoError(t, session.CustomizeProduct(domain.CategoryTop, "prod-top"))
	require.NoError(t, session.CustomizeProduct(domain.CategoryTop, "prod-alt-top"))

	overrides := session.Overrides()
	require.Len(t, overrides, 1)
	assert.Equal(t, "prod-alt-top", overrides[domain.CategoryTop])
}

func TestSession_CurrentLookLifecycle(t *testing.T) {
	session, _ := setupSession(t)

	_, open := session.CurrentLook()
	assert.False(t, open)

	session.SetCurrentLook(fixtureLook())
	look, open := session.CurrentLook()
	require.True(t, open)
	assert.Equal(t, "look-1", look.ID)

	session.Reset()
	_, open = session.CurrentLook()
	assert.False(t, open)
}

func TestSession_ResolveProducts(t *testing.T) {
	session, _ := setupSession(t)
	require.NoError(t, session.CustomizeProduct(domain.CategoryTop, "prod-alt-top"))

	products := session.ResolveProducts(fixtureLook())

	require.Len(t, products, 4)
	assert.Equal(t, "prod-coat", products[0].ID)
	assert.Equal(t, "prod-alt-top", products[1].ID)
}

func TestSession_ResolveProductsSkipsUnknown(t *testing.T) {
	session, _ := setupSession(t)
	look := fixtureLook()
	look.Products = append(look.Products, domain.LookSlot{
		ProductID: "prod-ghost", Category: domain.CategoryAccessories,
	})

	products := session.ResolveProducts(look)
	assert.Len(t, products, 4)
}
