package repositories

import (
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for Product.
// Every method takes the *gorm.DB handle explicitly so callers can pass a
// transaction; aggregate writes must see catalog reads and line-item writes
// on the same handle.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// ProductFilter mirrors the list-endpoint query params.
type ProductFilter struct {
	Name        string
	Description string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(db *gorm.DB, id uint) (models.Product, error) {
	var product models.Product
	err := db.First(&product, id).Error
	return product, err
}

// FindByIDs returns the products with the given ids, keyed by id.
// Missing ids are simply absent from the map; the caller decides whether
// that is an error.
func (r *ProductRepository) FindByIDs(db *gorm.DB, ids []uint) (map[uint]models.Product, error) {
	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}

	return collection.KeyBy(products, func(p models.Product) uint { return p.ID }), nil
}

// All returns a page of products matching filter, ordered by name then price.
func (r *ProductRepository) All(db *gorm.DB, filter ProductFilter, page, limit int) ([]models.Product, orm.Pagination, error) {
	q := db.Model(&models.Product{})

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Description != "" {
		q = q.Where("description LIKE ?", "%"+filter.Description+"%")
	}
	if filter.PriceMin != nil {
		q = q.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax != nil {
		q = q.Where("price <= ?", filter.PriceMax)
	}

	var products []models.Product
	pagination, err := orm.Paginate(q.Order("name, price"), &products, page, limit)
	return products, pagination, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(db *gorm.DB, product *models.Product) error {
	return db.Save(product).Error
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.Product{}, id).Error
}
