package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"gorm.io/gorm"
)

const productCacheTTL = 5 * time.Minute

// ProductService orchestrates catalog reads and staff-only catalog writes.
// Single-product reads go through the cache; every write invalidates the
// touched entry.
type ProductService struct {
	db       *gorm.DB
	products *repositories.ProductRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		db:       db,
		products: repositories.NewProductRepository(),
	}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("storefront:product:%d", id)
}

// Create persists a new product.
func (s *ProductService) Create(in ProductInput) (*models.Product, error) {
	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Slug:        in.Slug,
	}
	if err := s.products.Create(s.db, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// Update applies an update or partial_update. Omitted fields keep their
// stored values; the submitted-key set tells them apart from zero values.
func (s *ProductService) Update(productID uint, submitted map[string]struct{}, in ProductInput) (*models.Product, error) {
	product, err := s.products.FindByID(s.db, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, ok := submitted["name"]; ok {
		product.Name = in.Name
	}
	if _, ok := submitted["description"]; ok {
		product.Description = in.Description
	}
	if _, ok := submitted["price"]; ok {
		product.Price = in.Price
	}
	if _, ok := submitted["slug"]; ok {
		product.Slug = in.Slug
	}

	if err := s.products.Save(s.db, &product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	cache.Forget(productCacheKey(product.ID))
	return &product, nil
}

// Get returns one product, serving from the cache when it can.
func (s *ProductService) Get(productID uint) (*models.Product, error) {
	var product models.Product
	if cache.Get(productCacheKey(productID), &product) {
		return &product, nil
	}

	product, err := s.products.FindByID(s.db, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	cache.Set(productCacheKey(productID), product, productCacheTTL)
	return &product, nil
}

// List returns a page of products matching filter.
func (s *ProductService) List(filter repositories.ProductFilter, page, limit int) ([]models.Product, orm.Pagination, error) {
	return s.products.All(s.db, filter, page, limit)
}

// Delete removes a product. Order positions and collection members keep
// their rows; historical orders must not lose line items when the catalog
// shrinks.
func (s *ProductService) Delete(productID uint) error {
	if _, err := s.products.FindByID(s.db, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.products.Delete(s.db, productID); err != nil {
		return err
	}
	cache.Forget(productCacheKey(productID))
	return nil
}
