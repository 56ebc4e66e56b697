package repositories

import (
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRepository handles database operations for Collection and its
// membership rows.
type CollectionRepository struct{}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{}
}

// FindByID loads a collection with its member products.
func (r *CollectionRepository) FindByID(db *gorm.DB, id uint) (models.Collection, error) {
	var collection models.Collection
	err := db.Preload("Products.Product").First(&collection, id).Error
	return collection, err
}

// All returns a page of collections, newest first.
func (r *CollectionRepository) All(db *gorm.DB, page, limit int) ([]models.Collection, orm.Pagination, error) {
	q := db.Model(&models.Collection{}).Preload("Products.Product")

	var collections []models.Collection
	pagination, err := orm.Paginate(q.Order("updated_at DESC, created_at DESC"), &collections, page, limit)
	return collections, pagination, err
}

// Create persists a new collection row (members are inserted separately).
func (r *CollectionRepository) Create(db *gorm.DB, collection *models.Collection) error {
	return db.Omit(clause.Associations).Create(collection).Error
}

// Save persists changes to an existing collection row.
func (r *CollectionRepository) Save(db *gorm.DB, collection *models.Collection) error {
	return db.Omit(clause.Associations).Save(collection).Error
}

// Delete removes a collection and its membership rows.
func (r *CollectionRepository) Delete(db *gorm.DB, id uint) error {
	if err := db.Where("collection_id = ?", id).Delete(&models.CollectionProduct{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Collection{}, id).Error
}

// MemberProductIDs returns the product ids currently in the collection.
func (r *CollectionRepository) MemberProductIDs(db *gorm.DB, collectionID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.CollectionProduct{}).
		Where("collection_id = ?", collectionID).
		Pluck("product_id", &ids).Error
	return ids, err
}

// CreateMembers bulk-inserts membership rows.
func (r *CollectionRepository) CreateMembers(db *gorm.DB, members []models.CollectionProduct) error {
	if len(members) == 0 {
		return nil
	}
	return db.Omit(clause.Associations).Create(&members).Error
}
