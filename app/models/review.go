package models

import "gorm.io/gorm"

// Rating bounds for product reviews.
const (
	RatingMin     = 1
	RatingMax     = 5
	RatingDefault = 5
)

// ProductReview is a user's review of a product. One review per
// (user, product) pair, enforced at validation time before insert.
// After creation only rating and text are mutable. Like orders, reviews
// survive deletion of their author.
type ProductReview struct {
	gorm.Model
	UserID    uint    `gorm:"not null;index" json:"user_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Text      string  `gorm:"type:text" json:"text"`
	Rating    int     `gorm:"not null;default:5" json:"rating"`
}
