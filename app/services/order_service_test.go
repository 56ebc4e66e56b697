package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
)

func TestOrderCreateComputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	user := seedUser(t, db, "buyer@example.com", false)
	beans := seedProduct(t, db, "Beans", "19.99")
	mug := seedProduct(t, db, "Mug", "9.99")

	order, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 2},
		{ProductID: mug.ID, Quantity: 2},
	}})
	require.NoError(t, err)

	// 2×19.99 + 2×9.99 = 59.96
	assert.True(t, order.TotalCost.Equal(decimal.RequireFromString("59.96")), "got %s", order.TotalCost)
	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Equal(t, user.ID, order.UserID)
	assert.Len(t, order.Positions, 2)
}

func TestOrderCreateRejectsEmptyPositions(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, "buyer@example.com", false)

	_, err := svc.Create(identityOf(user), OrderCreateInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no items specified", verr.Fields["positions"])
}

func TestOrderCreateRejectsUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, "buyer@example.com", false)

	_, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: 999, Quantity: 1},
	}})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields["positions"], "999")

	// Nothing persisted.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderCreateRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, "buyer@example.com", false)
	beans := seedProduct(t, db, "Beans", "10.00")

	for _, qty := range []int{0, -3} {
		_, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
			{ProductID: beans.ID, Quantity: qty},
		}})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "quantity %d", qty)
		assert.Contains(t, verr.Fields["positions"], "at least 1")
	}

	// Nothing persisted.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderUpdateRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	user := seedUser(t, db, "buyer@example.com", false)
	beans := seedProduct(t, db, "Beans", "10.00")

	order, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 2},
	}})
	require.NoError(t, err)

	_, err = svc.Update(identityOf(user), order.ID, ActionPartialUpdate,
		submittedKeys("positions"),
		OrderUpdateInput{Positions: []PositionInput{{ProductID: beans.ID, Quantity: -3}}})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields["positions"], "at least 1")

	// The rejected merge must leave the order untouched.
	current, err := svc.Get(identityOf(user), order.ID)
	require.NoError(t, err)
	assert.True(t, current.TotalCost.Equal(decimal.RequireFromString("20.00")), "got %s", current.TotalCost)
	require.Len(t, current.Positions, 1)
	assert.Equal(t, 2, current.Positions[0].Quantity)
}

func TestOrderUpdateMergesPositions(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	user := seedUser(t, db, "buyer@example.com", false)
	beans := seedProduct(t, db, "Beans", "10.00")
	mug := seedProduct(t, db, "Mug", "5.00")
	kettle := seedProduct(t, db, "Kettle", "40.00")

	order, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 1},
		{ProductID: mug.ID, Quantity: 3},
	}})
	require.NoError(t, err)

	// Overwrite beans qty, add kettle; mug is untouched.
	updated, err := svc.Update(identityOf(user), order.ID, ActionPartialUpdate,
		submittedKeys("positions"),
		OrderUpdateInput{Positions: []PositionInput{
			{ProductID: beans.ID, Quantity: 5},
			{ProductID: kettle.ID, Quantity: 1},
		}})
	require.NoError(t, err)

	quantities := map[uint]int{}
	for _, pos := range updated.Positions {
		quantities[pos.ProductID] = pos.Quantity
	}
	assert.Equal(t, map[uint]int{beans.ID: 5, mug.ID: 3, kettle.ID: 1}, quantities)

	// 5×10 + 3×5 + 1×40 = 105
	assert.True(t, updated.TotalCost.Equal(decimal.RequireFromString("105")), "got %s", updated.TotalCost)
}

func TestOrderUpdateMergeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	user := seedUser(t, db, "buyer@example.com", false)
	beans := seedProduct(t, db, "Beans", "10.00")

	order, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 1},
	}})
	require.NoError(t, err)

	patch := OrderUpdateInput{Positions: []PositionInput{{ProductID: beans.ID, Quantity: 4}}}
	first, err := svc.Update(identityOf(user), order.ID, ActionPartialUpdate, submittedKeys("positions"), patch)
	require.NoError(t, err)
	second, err := svc.Update(identityOf(user), order.ID, ActionPartialUpdate, submittedKeys("positions"), patch)
	require.NoError(t, err)

	assert.Len(t, second.Positions, 1)
	assert.Equal(t, first.Positions[0].Quantity, second.Positions[0].Quantity)
	assert.True(t, first.TotalCost.Equal(second.TotalCost))
}

func TestOrderUpdateStatusRestrictedToStaff(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	user := seedUser(t, db, "buyer@example.com", false)
	staff := seedUser(t, db, "staff@example.com", true)
	beans := seedProduct(t, db, "Beans", "10.00")

	order, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 1},
	}})
	require.NoError(t, err)

	done := models.OrderStatusDone
	_, err = svc.Update(identityOf(user), order.ID, ActionPartialUpdate,
		submittedKeys("status"), OrderUpdateInput{Status: &done})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "allowed fields for update: positions", verr.Fields["error"])

	// The order is unchanged.
	reloaded, err := svc.Get(identityOf(user), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, reloaded.Status)

	// Staff may set it.
	updated, err := svc.Update(identityOf(staff), order.ID, ActionPartialUpdate,
		submittedKeys("status"), OrderUpdateInput{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDone, updated.Status)
}

func TestOrderListFiltersByProductAndDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	user := seedUser(t, db, "buyer@example.com", false)
	beans := seedProduct(t, db, "Beans", "10.00")
	mug := seedProduct(t, db, "Mug", "5.00")

	withBeans, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 1},
	}})
	require.NoError(t, err)
	_, err = svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: mug.ID, Quantity: 1},
	}})
	require.NoError(t, err)

	orders, _, err := svc.List(identityOf(user), repositories.OrderFilter{ProductID: beans.ID}, 0, 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, withBeans.ID, orders[0].ID)

	future := time.Now().Add(time.Hour)
	orders, _, err = svc.List(identityOf(user), repositories.OrderFilter{CreatedAfter: &future}, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)

	orders, _, err = svc.List(identityOf(user), repositories.OrderFilter{CreatedBefore: &future}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	owner := seedUser(t, db, "owner@example.com", false)
	other := seedUser(t, db, "other@example.com", false)
	staff := seedUser(t, db, "staff@example.com", true)
	beans := seedProduct(t, db, "Beans", "10.00")

	order, err := svc.Create(identityOf(owner), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 1},
	}})
	require.NoError(t, err)

	// Non-owner sees nothing, not a 403.
	_, err = svc.Get(identityOf(other), order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(identityOf(other), order.ID, ActionPartialUpdate,
		submittedKeys("positions"),
		OrderUpdateInput{Positions: []PositionInput{{ProductID: beans.ID, Quantity: 2}}})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(identityOf(other), order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Staff see and touch everything.
	_, err = svc.Get(identityOf(staff), order.ID)
	assert.NoError(t, err)

	// Listing: owner sees own, other sees none, staff see all.
	ownOrders, _, err := svc.List(identityOf(owner), repositories.OrderFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, ownOrders, 1)

	otherOrders, _, err := svc.List(identityOf(other), repositories.OrderFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, otherOrders)

	staffOrders, _, err := svc.List(identityOf(staff), repositories.OrderFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, staffOrders, 1)
}

func TestOrderDeleteRemovesPositions(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	user := seedUser(t, db, "buyer@example.com", false)
	beans := seedProduct(t, db, "Beans", "10.00")

	order, err := svc.Create(identityOf(user), OrderCreateInput{Positions: []PositionInput{
		{ProductID: beans.ID, Quantity: 2},
	}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(identityOf(user), order.ID))

	var positions int64
	require.NoError(t, db.Model(&models.OrderPosition{}).Where("order_id = ?", order.ID).Count(&positions).Error)
	assert.Zero(t, positions)
}
