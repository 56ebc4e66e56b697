package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. The raw strings are what lands in the status column.
const (
	OrderStatusNew        = "New"
	OrderStatusInProgress = "In_progress"
	OrderStatusDone       = "Done"
)

// OrderStatuses lists every valid status value, used by input validation.
func OrderStatuses() []string {
	return []string{OrderStatusNew, OrderStatusInProgress, OrderStatusDone}
}

// Order is a customer order together with its line-item positions.
// The user is set once at creation and never editable through the API.
// TotalCost is derived: recomputed from the full position set on every
// position-affecting write. Deleting the owning user does NOT cascade here —
// orphaned orders stay queryable, so no FK constraint on UserID.
type Order struct {
	gorm.Model
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Status    string          `gorm:"size:50;not null;default:New" json:"status"`
	TotalCost decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_cost"`
	Positions []OrderPosition `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"positions"`
}

// OrderPosition is one (product, quantity) line item of an order.
// The merge engine keeps at most one row per (order, product); this is a
// behavioural guarantee, not a DB unique constraint.
type OrderPosition struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}
