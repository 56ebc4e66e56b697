package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/auth"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"gorm.io/gorm"
)

// ReviewService orchestrates product-review writes. Anyone may read reviews;
// authors own their reviews and staff can moderate any of them.
type ReviewService struct {
	db       *gorm.DB
	reviews  *repositories.ReviewRepository
	products *repositories.ProductRepository
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{
		db:       db,
		reviews:  repositories.NewReviewRepository(),
		products: repositories.NewProductRepository(),
	}
}

// reviewWritableFields are the fields an author may change after creation.
// product_id is fixed for the lifetime of the review.
var reviewWritableFields = []string{"rating", "text"}

// Create validates and persists a new review authored by the acting
// identity. Each user gets at most one review per product; a missing rating
// takes the default.
func (s *ReviewService) Create(identity auth.Identity, in ReviewCreateInput) (*models.ProductReview, error) {
	var created models.ProductReview
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.products.FindByID(tx, in.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fieldError("product_id", fmt.Sprintf("product %d does not exist", in.ProductID))
			}
			return err
		}

		exists, err := s.reviews.ExistsForUserProduct(tx, identity.ID, in.ProductID)
		if err != nil {
			return err
		}
		if exists {
			return fieldError("error", "only one review per product allowed")
		}

		review := models.ProductReview{
			UserID:    identity.ID,
			ProductID: in.ProductID,
			Text:      in.Text,
			Rating:    models.RatingDefault,
		}
		if in.Rating != nil {
			review.Rating = *in.Rating
		}
		if err := s.reviews.Create(tx, &review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		created, err = s.reviews.FindByID(tx, review.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies an update or partial_update to an existing review. Only the
// author or staff may write, and only rating and text can change; touching
// anything else rejects the whole submission.
func (s *ReviewService) Update(identity auth.Identity, reviewID uint, action Action, submitted map[string]struct{}, in ReviewUpdateInput) (*models.ProductReview, error) {
	_ = action // update and partial_update share field rules

	var updated models.ProductReview
	err := s.db.Transaction(func(tx *gorm.DB) error {
		review, err := s.reviews.FindByID(tx, reviewID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if !identity.IsStaff && review.UserID != identity.ID {
			return ErrForbidden
		}

		known := []string{"product_id", "user_id", "text", "rating"}
		if bad := restrictedKeys(submitted, known, reviewWritableFields); len(bad) > 0 {
			return allowedFieldsError(reviewWritableFields)
		}

		if in.Rating != nil {
			review.Rating = *in.Rating
		}
		if in.Text != nil {
			review.Text = *in.Text
		}
		if err := s.reviews.Save(tx, &review); err != nil {
			return fmt.Errorf("save review: %w", err)
		}

		updated, err = s.reviews.FindByID(tx, review.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Get returns one review.
func (s *ReviewService) Get(reviewID uint) (*models.ProductReview, error) {
	review, err := s.reviews.FindByID(s.db, reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns a page of reviews matching filter.
func (s *ReviewService) List(filter repositories.ReviewFilter, page, limit int) ([]models.ProductReview, orm.Pagination, error) {
	return s.reviews.All(s.db, filter, page, limit)
}

// Delete removes a review. Author or staff only.
func (s *ReviewService) Delete(identity auth.Identity, reviewID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		review, err := s.reviews.FindByID(tx, reviewID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if !identity.IsStaff && review.UserID != identity.ID {
			return ErrForbidden
		}
		return s.reviews.Delete(tx, review.ID)
	})
}
