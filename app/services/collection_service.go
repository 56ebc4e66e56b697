package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"gorm.io/gorm"
)

// CollectionService orchestrates collection writes. Collections are
// staff-managed; the rbac layer enforces that before calls land here.
type CollectionService struct {
	db          *gorm.DB
	collections *repositories.CollectionRepository
	products    *repositories.ProductRepository
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{
		db:          db,
		collections: repositories.NewCollectionRepository(),
		products:    repositories.NewProductRepository(),
	}
}

// Create validates and persists a new collection with its members.
// The submitted product list must be non-empty and pairwise distinct, and
// every referenced product must exist.
func (s *CollectionService) Create(in CollectionCreateInput) (*models.Collection, error) {
	if len(in.Products) == 0 {
		return nil, fieldError("products", "no products specified")
	}
	ids := memberProductIDs(in.Products)
	if hasDuplicates(ids) {
		return nil, fieldError("products", "duplicate products in collection")
	}

	var created models.Collection
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requireProducts(tx, ids); err != nil {
			return err
		}

		collection := models.Collection{Name: in.Name, Slug: in.Slug, Text: in.Text}
		if err := s.collections.Create(tx, &collection); err != nil {
			return fmt.Errorf("create collection: %w", err)
		}

		members := make([]models.CollectionProduct, 0, len(in.Products))
		for _, item := range in.Products {
			members = append(members, models.CollectionProduct{CollectionID: collection.ID, ProductID: item.ProductID})
		}
		if err := s.collections.CreateMembers(tx, members); err != nil {
			return fmt.Errorf("create members: %w", err)
		}

		var err error
		created, err = s.collections.FindByID(tx, collection.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies an update or partial_update. The member list is a patch:
// submitted products are added if missing, existing members stay. Scalar
// fields change only when submitted.
func (s *CollectionService) Update(collectionID uint, in CollectionUpdateInput) (*models.Collection, error) {
	var updated models.Collection
	err := s.db.Transaction(func(tx *gorm.DB) error {
		collection, err := s.collections.FindByID(tx, collectionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil {
			collection.Name = *in.Name
		}
		if in.Slug != nil {
			collection.Slug = *in.Slug
		}
		if in.Text != nil {
			collection.Text = *in.Text
		}
		collection.Products = nil
		if err := s.collections.Save(tx, &collection); err != nil {
			return fmt.Errorf("save collection: %w", err)
		}

		if len(in.Products) > 0 {
			if err := s.requireProducts(tx, memberProductIDs(in.Products)); err != nil {
				return err
			}
			if err := mergeCollectionMembers(tx, s.collections, collection.ID, in.Products); err != nil {
				return fmt.Errorf("merge members: %w", err)
			}
		}

		updated, err = s.collections.FindByID(tx, collection.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Get returns one collection with its members.
func (s *CollectionService) Get(collectionID uint) (*models.Collection, error) {
	collection, err := s.collections.FindByID(s.db, collectionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

// List returns a page of collections.
func (s *CollectionService) List(page, limit int) ([]models.Collection, orm.Pagination, error) {
	return s.collections.All(s.db, page, limit)
}

// Delete removes a collection and its membership rows. Member products are
// untouched.
func (s *CollectionService) Delete(collectionID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.collections.FindByID(tx, collectionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return s.collections.Delete(tx, collectionID)
	})
}

func (s *CollectionService) requireProducts(tx *gorm.DB, ids []uint) error {
	byID, err := s.products.FindByIDs(tx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return fieldError("products", fmt.Sprintf("product %d does not exist", id))
		}
	}
	return nil
}

func memberProductIDs(items []CollectionProductInput) []uint {
	return collection.Map(items, func(item CollectionProductInput) uint { return item.ProductID })
}

func hasDuplicates(ids []uint) bool {
	return len(collection.Unique(ids)) != len(ids)
}
