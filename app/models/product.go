package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalogue.
// Name and price edits never touch historical orders: an order's total is
// snapshotted at write time, not recomputed from the live price.
type Product struct {
	gorm.Model
	Name        string          `gorm:"size:200;not null;index" json:"name"`
	Description string          `gorm:"type:text"               json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Slug        string          `gorm:"size:200;index"          json:"slug"`
}
