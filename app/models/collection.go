package models

import "gorm.io/gorm"

// Collection is a staff-curated grouping of products.
type Collection struct {
	gorm.Model
	Name     string              `gorm:"size:200;not null" json:"name"`
	Slug     string              `gorm:"size:200;index"    json:"slug"`
	Text     string              `gorm:"type:text"         json:"text"`
	Products []CollectionProduct `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"products_list"`
}

// CollectionProduct is the (collection, product) membership row.
// It carries no attributes of its own.
type CollectionProduct struct {
	gorm.Model
	CollectionID uint    `gorm:"not null;index" json:"collection_id"`
	ProductID    uint    `gorm:"not null;index" json:"product_id"`
	Product      Product `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
}
