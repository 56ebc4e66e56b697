package repositories

import (
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository handles database operations for Order and OrderPosition.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// OrderFilter mirrors the order list-endpoint query params. ProductID
// matches orders that carry a position for that product.
type OrderFilter struct {
	Status        string
	ProductID     uint
	TotalMin      *decimal.Decimal
	TotalMax      *decimal.Decimal
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// FindByID loads an order with its positions and their products.
func (r *OrderRepository) FindByID(db *gorm.DB, id uint) (models.Order, error) {
	var order models.Order
	err := db.Preload("Positions.Product").First(&order, id).Error
	return order, err
}

// All returns a page of orders matching filter. When userID is non-zero the
// result is scoped to that owner (staff callers pass zero to see everything).
func (r *OrderRepository) All(db *gorm.DB, filter OrderFilter, userID uint, page, limit int) ([]models.Order, orm.Pagination, error) {
	q := db.Model(&models.Order{}).Preload("Positions.Product")

	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.TotalMin != nil {
		q = q.Where("total_cost >= ?", filter.TotalMin)
	}
	if filter.TotalMax != nil {
		q = q.Where("total_cost <= ?", filter.TotalMax)
	}
	if filter.ProductID != 0 {
		q = q.Where("id IN (?)", db.Model(&models.OrderPosition{}).
			Select("order_id").Where("product_id = ?", filter.ProductID))
	}
	if filter.CreatedAfter != nil {
		q = q.Where("created_at >= ?", filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_at <= ?", filter.CreatedBefore)
	}

	var orders []models.Order
	pagination, err := orm.Paginate(q.Order("updated_at DESC, created_at DESC"), &orders, page, limit)
	return orders, pagination, err
}

// Create persists a new order row (positions are inserted separately).
func (r *OrderRepository) Create(db *gorm.DB, order *models.Order) error {
	return db.Omit(clause.Associations).Create(order).Error
}

// Save persists changes to an existing order row.
func (r *OrderRepository) Save(db *gorm.DB, order *models.Order) error {
	return db.Omit(clause.Associations).Save(order).Error
}

// Delete removes an order and, via FK cascade, its positions.
func (r *OrderRepository) Delete(db *gorm.DB, id uint) error {
	if err := db.Where("order_id = ?", id).Delete(&models.OrderPosition{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Order{}, id).Error
}

// ─── Positions ───────────────────────────────────────────────────────────────

// FindPosition returns the position row for (orderID, productID).
// gorm.ErrRecordNotFound signals the merge engine to insert instead.
func (r *OrderRepository) FindPosition(db *gorm.DB, orderID, productID uint) (models.OrderPosition, error) {
	var pos models.OrderPosition
	err := db.Where("order_id = ? AND product_id = ?", orderID, productID).First(&pos).Error
	return pos, err
}

// CreatePositions bulk-inserts position rows (order-create path).
func (r *OrderRepository) CreatePositions(db *gorm.DB, positions []models.OrderPosition) error {
	if len(positions) == 0 {
		return nil
	}
	return db.Omit(clause.Associations).Create(&positions).Error
}

// SavePosition persists a quantity overwrite on one position row.
func (r *OrderRepository) SavePosition(db *gorm.DB, pos *models.OrderPosition) error {
	return db.Omit(clause.Associations).Save(pos).Error
}

// Positions returns the full persisted position set of an order with
// products preloaded, the input for every total_cost recomputation.
func (r *OrderRepository) Positions(db *gorm.DB, orderID uint) ([]models.OrderPosition, error) {
	var positions []models.OrderPosition
	err := db.Preload("Product").Where("order_id = ?", orderID).Find(&positions).Error
	return positions, err
}
