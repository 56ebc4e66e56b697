package repositories

import (
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository handles database operations for ProductReview.
type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// ReviewFilter mirrors the review list-endpoint query params.
type ReviewFilter struct {
	UserID        uint
	ProductID     uint
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// FindByID looks up a review by primary key.
func (r *ReviewRepository) FindByID(db *gorm.DB, id uint) (models.ProductReview, error) {
	var review models.ProductReview
	err := db.First(&review, id).Error
	return review, err
}

// ExistsForUserProduct reports whether user already reviewed product.
// The one-review-per-product rule checks this before every insert.
func (r *ReviewRepository) ExistsForUserProduct(db *gorm.DB, userID, productID uint) (bool, error) {
	var count int64
	err := db.Model(&models.ProductReview{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

// All returns a page of reviews matching filter, newest first.
func (r *ReviewRepository) All(db *gorm.DB, filter ReviewFilter, page, limit int) ([]models.ProductReview, orm.Pagination, error) {
	q := db.Model(&models.ProductReview{})

	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.ProductID != 0 {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.CreatedAfter != nil {
		q = q.Where("created_at >= ?", filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_at <= ?", filter.CreatedBefore)
	}

	var reviews []models.ProductReview
	pagination, err := orm.Paginate(q.Order("updated_at DESC, created_at DESC"), &reviews, page, limit)
	return reviews, pagination, err
}

// Create persists a new review record.
func (r *ReviewRepository) Create(db *gorm.DB, review *models.ProductReview) error {
	return db.Omit(clause.Associations).Create(review).Error
}

// Save persists changes to an existing review.
func (r *ReviewRepository) Save(db *gorm.DB, review *models.ProductReview) error {
	return db.Omit(clause.Associations).Save(review).Error
}

// Delete removes a review by id.
func (r *ReviewRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.ProductReview{}, id).Error
}
