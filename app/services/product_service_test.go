package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
)

func TestProductCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	created, err := svc.Create(ProductInput{
		Name:        "Beans",
		Description: "Dark roast",
		Price:       decimal.RequireFromString("18.50"),
		Slug:        "beans",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beans", got.Name)

	// Partial update: only price is submitted, the rest stays.
	updated, err := svc.Update(created.ID, submittedKeys("price"),
		ProductInput{Price: decimal.RequireFromString("17.00")})
	require.NoError(t, err)
	assert.Equal(t, "Beans", updated.Name)
	assert.Equal(t, "Dark roast", updated.Description)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("17.00")))

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	seedProduct(t, db, "Espresso Beans", "18.50")
	seedProduct(t, db, "Ceramic Mug", "11.99")
	seedProduct(t, db, "Hand Grinder", "65.00")

	byName, _, err := svc.List(repositories.ProductFilter{Name: "Beans"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Espresso Beans", byName[0].Name)

	min := decimal.RequireFromString("15.00")
	max := decimal.RequireFromString("50.00")
	byPrice, _, err := svc.List(repositories.ProductFilter{PriceMin: &min, PriceMax: &max}, 1, 10)
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, "Espresso Beans", byPrice[0].Name)
}

func TestProductDeleteKeepsOrderPositions(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db)
	orders := NewOrderService(db)

	user := seedUser(t, db, "buyer@example.com", false)
	beans := seedProduct(t, db, "Beans", "10.00")

	order, err := orders.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 2},
	}})
	require.NoError(t, err)

	require.NoError(t, products.Delete(beans.ID))

	var positions int64
	require.NoError(t, db.Model(&models.OrderPosition{}).Where("order_id = ?", order.ID).Count(&positions).Error)
	assert.EqualValues(t, 1, positions)
}
