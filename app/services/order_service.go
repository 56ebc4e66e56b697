package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/auth"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"gorm.io/gorm"
)

// EventOrderCreated is fired with the materialized *models.Order after an
// order create commits.
const EventOrderCreated = "order.created"

// OrderService orchestrates order writes: validate → create/merge → price →
// persist, all inside one transaction so readers never observe an order with
// some positions applied or a stale total.
type OrderService struct {
	db       *gorm.DB
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:       db,
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Create validates and persists a new order for the acting identity.
// The owner is always the acting identity and total_cost is always computed
// server-side; neither is accepted from the payload.
func (s *OrderService) Create(identity auth.Identity, in OrderCreateInput) (*models.Order, error) {
	if len(in.Positions) == 0 {
		return nil, fieldError("positions", "no items specified")
	}
	if err := validateQuantities(in.Positions); err != nil {
		return nil, err
	}

	var created models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		positions, err := s.resolvePositions(tx, in.Positions)
		if err != nil {
			return err
		}

		order := models.Order{
			UserID:    identity.ID,
			Status:    models.OrderStatusNew,
			TotalCost: ComputeTotal(positions),
		}
		if err := s.orders.Create(tx, &order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for i := range positions {
			positions[i].OrderID = order.ID
		}
		if err := s.orders.CreatePositions(tx, positions); err != nil {
			return fmt.Errorf("create positions: %w", err)
		}

		created, err = s.orders.FindByID(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	metrics.OrderTotalCost.Observe(created.TotalCost.InexactFloat64())
	event.FireAsync(EventOrderCreated, &created)

	return &created, nil
}

// Update applies an update or partial_update to an existing order.
// submitted is the set of top-level keys the client actually sent; it drives
// the field-restriction check. Non-staff may only touch positions; staff may
// also set status. total_cost is recomputed over the full persisted position
// set after the merge, whatever was submitted.
func (s *OrderService) Update(identity auth.Identity, orderID uint, action Action, submitted map[string]struct{}, in OrderUpdateInput) (*models.Order, error) {
	_ = action // update and partial_update share field rules and merge semantics

	var updated models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orders.FindByID(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if !identity.IsStaff && order.UserID != identity.ID {
			// Non-owners cannot see the order either, so reveal nothing.
			return ErrNotFound
		}

		allowed := []string{"positions"}
		if identity.IsStaff {
			allowed = append(allowed, "status")
		}
		if bad := restrictedKeys(submitted, []string{"positions", "status"}, allowed); len(bad) > 0 {
			return allowedFieldsError(allowed)
		}

		if len(in.Positions) > 0 {
			if err := validateQuantities(in.Positions); err != nil {
				return err
			}
			if _, err := s.resolveProducts(tx, positionProductIDs(in.Positions)); err != nil {
				return err
			}
			if err := mergeOrderPositions(tx, s.orders, order.ID, in.Positions); err != nil {
				return fmt.Errorf("merge positions: %w", err)
			}
		}

		if in.Status != nil && identity.IsStaff {
			order.Status = *in.Status
		}

		positions, err := s.orders.Positions(tx, order.ID)
		if err != nil {
			return err
		}
		order.TotalCost = ComputeTotal(positions)
		order.Positions = nil // avoid gorm re-saving stale associations
		if err := s.orders.Save(tx, &order); err != nil {
			return fmt.Errorf("save order: %w", err)
		}

		updated, err = s.orders.FindByID(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Get returns one order. Plain users only see their own orders; asking for
// someone else's behaves like asking for a missing one.
func (s *OrderService) Get(identity auth.Identity, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(s.db, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !identity.IsStaff && order.UserID != identity.ID {
		return nil, ErrNotFound
	}
	return &order, nil
}

// List returns a page of orders: all of them for staff, the caller's own
// otherwise.
func (s *OrderService) List(identity auth.Identity, filter repositories.OrderFilter, page, limit int) ([]models.Order, orm.Pagination, error) {
	ownerID := identity.ID
	if identity.IsStaff {
		ownerID = 0
	}
	return s.orders.All(s.db, filter, ownerID, page, limit)
}

// Delete removes an order and its positions. Owner or staff only.
func (s *OrderService) Delete(identity auth.Identity, orderID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orders.FindByID(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if !identity.IsStaff && order.UserID != identity.ID {
			return ErrNotFound
		}
		return s.orders.Delete(tx, order.ID)
	})
}

// resolvePositions turns submitted pairs into position rows with their
// products attached, ready for pricing and insertion. Duplicate product ids
// are kept as submitted (the create-path duplicate check applies to
// collections, not orders).
func (s *OrderService) resolvePositions(tx *gorm.DB, items []PositionInput) ([]models.OrderPosition, error) {
	byID, err := s.resolveProducts(tx, positionProductIDs(items))
	if err != nil {
		return nil, err
	}

	positions := make([]models.OrderPosition, 0, len(items))
	for _, item := range items {
		positions = append(positions, models.OrderPosition{
			ProductID: item.ProductID,
			Product:   byID[item.ProductID],
			Quantity:  item.Quantity,
		})
	}
	return positions, nil
}

// resolveProducts loads the referenced products and rejects the submission
// when any of them does not exist.
func (s *OrderService) resolveProducts(tx *gorm.DB, ids []uint) (map[uint]models.Product, error) {
	byID, err := s.products.FindByIDs(tx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, fieldError("positions", fmt.Sprintf("product %d does not exist", id))
		}
	}
	return byID, nil
}

func positionProductIDs(items []PositionInput) []uint {
	return collection.Map(items, func(item PositionInput) uint { return item.ProductID })
}

// validateQuantities rejects submissions carrying a non-positive quantity.
// A zero or negative line could otherwise drive total_cost below zero.
func validateQuantities(items []PositionInput) error {
	for _, item := range items {
		if item.Quantity < 1 {
			return fieldError("positions", fmt.Sprintf("quantity for product %d must be at least 1", item.ProductID))
		}
	}
	return nil
}
